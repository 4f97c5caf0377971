// Package store implements the persistence layer of the application:
// PostgreSQL-backed repositories for users, the registration ledger, quote
// item collections, spreadsheets and dashboard aggregates, plus the
// file-system store for uploaded spreadsheet files.
package store

import (
	"context"
	"io"

	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// UserRepository manages account records.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its unique email.
	// Returns ErrNoUserWasFound when absent.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its id.
	// Returns ErrNoUserWasFound when absent.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// RegistrationRepository manages the invitation-code ledger.
type RegistrationRepository interface {
	// SeedIfEmpty inserts the starter batch of codes when the ledger holds
	// zero rows. Any existing row makes it a no-op, so it is safe to call
	// on every process start.
	SeedIfEmpty(ctx context.Context, codes []string) error

	// FindByCode returns the ledger entry for the given code string.
	// Returns ErrRegistrationCodeNotFound when the code was never issued.
	FindByCode(ctx context.Context, code string) (models.AllowedRegistration, error)

	// Redeem marks the code as consumed by userID. The transition is a
	// conditional update: it succeeds for exactly one caller per code, and
	// returns ErrRegistrationCodeUsed for everyone else
	// (ErrRegistrationCodeNotFound if the code never existed).
	Redeem(ctx context.Context, code string, userID int64) error
}

// QuoteItemRepository manages one of the two structurally identical priced
// line-item collections (services, inputs). All reads and writes are scoped
// by the owner's user id.
type QuoteItemRepository interface {
	Create(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error)
	GetAll(ctx context.Context, userID int64) ([]models.QuoteItem, error)
	GetByID(ctx context.Context, id, userID int64) (models.QuoteItem, error)
	Update(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error)
	Delete(ctx context.Context, id, userID int64) error
}

// SpreadsheetRepository manages spreadsheet metadata records.
type SpreadsheetRepository interface {
	Create(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	List(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error)
	GetByID(ctx context.Context, id, userID int64) (models.Spreadsheet, error)
	Update(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	Delete(ctx context.Context, id, userID int64) error
}

// DashboardRepository serves the per-user aggregate queries behind the
// dashboard endpoints.
type DashboardRepository interface {
	Summary(ctx context.Context, userID int64) (models.DashboardSummary, error)
	Statistics(ctx context.Context, userID int64) (models.DashboardStatistics, error)
}

// FileStorage persists uploaded spreadsheet files under a per-user
// directory.
type FileStorage interface {
	// Save streams src into the owner's directory under a randomized file
	// key derived from originalName and returns the stored-file descriptor.
	Save(userID int64, originalName string, src io.Reader) (models.StoredFile, error)

	// Open resolves fileKey inside the owner's directory and opens it for
	// reading. Returns ErrInvalidFileKey on traversal attempts and
	// ErrFileNotFound when the key does not exist for this user.
	Open(userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error)
}
