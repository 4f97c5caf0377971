package store

import (
	"context"

	"github.com/cotacoes-epc/go-quote-keeper/internal/config"
	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// Repositories bundles every persistence component of the application.
type Repositories struct {
	UserRepository         UserRepository
	RegistrationRepository RegistrationRepository
	ServiceRepository      QuoteItemRepository
	InputRepository        QuoteItemRepository
	SpreadsheetRepository  SpreadsheetRepository
	DashboardRepository    DashboardRepository
	FileStorage            FileStorage
}

// NewRepositories connects to PostgreSQL, runs pending migrations and wires
// every repository on top of the shared connection pool.
func NewRepositories(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Repositories{
		UserRepository:         NewUserRepository(db, logger),
		RegistrationRepository: NewRegistrationRepository(db, logger),
		ServiceRepository:      NewQuoteItemRepository(db, models.ServicesTable, logger),
		InputRepository:        NewQuoteItemRepository(db, models.InputsTable, logger),
		SpreadsheetRepository:  NewSpreadsheetRepository(db, logger),
		DashboardRepository:    NewDashboardRepository(db, logger),
		FileStorage:            NewDiskFileStorage(cfg.Files.UploadsDir, logger),
	}, nil
}
