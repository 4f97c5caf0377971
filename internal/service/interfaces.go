package service

import (
	"context"
	"io"

	"github.com/cotacoes-epc/go-quote-keeper/models"
)

type AuthService interface {
	// Register runs the invitation-gated sign-up flow: the registration code
	// must exist and be unredeemed, the email must be free, and the winning
	// registration consumes the code.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates by email and password.
	Login(ctx context.Context, email, password string) (models.User, error)

	// IsRegistrationAllowed reports whether a code is still redeemable
	// without consuming it.
	IsRegistrationAllowed(ctx context.Context, code string) (bool, error)

	// SeedRegistrationCodes inserts the starter invitation codes when the
	// ledger is empty.
	SeedRegistrationCodes(ctx context.Context) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// QuoteItemService manages one priced line-item collection on behalf of its
// owner. Two instances exist, one per collection (services, inputs).
type QuoteItemService interface {
	Create(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error)
	GetAll(ctx context.Context, userID int64) ([]models.QuoteItem, error)
	GetByID(ctx context.Context, id, userID int64) (models.QuoteItem, error)
	Update(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error)
	Delete(ctx context.Context, id, userID int64) error
}

type SpreadsheetService interface {
	Create(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	List(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error)
	GetByID(ctx context.Context, id, userID int64) (models.Spreadsheet, error)
	Update(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	Delete(ctx context.Context, id, userID int64) error

	// Download opens the file attached to the spreadsheet record.
	Download(ctx context.Context, id, userID int64) (io.ReadCloser, models.StoredFile, error)
}

type FileService interface {
	// Upload validates the extension and declared size, then streams the
	// file into the owner's storage under a randomized key.
	Upload(ctx context.Context, userID int64, originalName string, size int64, src io.Reader) (models.StoredFile, error)

	// Download opens a previously uploaded file by its key.
	Download(ctx context.Context, userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error)
}

type DashboardService interface {
	Summary(ctx context.Context, userID int64) (models.DashboardSummary, error)
	Statistics(ctx context.Context, userID int64) (models.DashboardStatistics, error)
}
