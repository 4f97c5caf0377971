package service

import (
	"github.com/cotacoes-epc/go-quote-keeper/internal/config"
	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
)

type Services struct {
	AuthService        AuthService
	ServiceItemService QuoteItemService
	InputItemService   QuoteItemService
	SpreadsheetService SpreadsheetService
	FileService        FileService
	DashboardService   DashboardService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, repositories.RegistrationRepository, cfg.Auth, logger),
		ServiceItemService: NewQuoteItemService(repositories.ServiceRepository, logger),
		InputItemService:   NewQuoteItemService(repositories.InputRepository, logger),
		SpreadsheetService: NewSpreadsheetService(repositories.SpreadsheetRepository, repositories.FileStorage, logger),
		FileService:        NewFileService(repositories.FileStorage, logger),
		DashboardService:   NewDashboardService(repositories.DashboardRepository, logger),
	}
}
