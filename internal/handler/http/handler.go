package http

import (
	"time"

	"github.com/cotacoes-epc/go-quote-keeper/internal/config"
	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// tokenDuration is the lifetime of issued session cookies. It matches
	// the expiry of the JWT the cookie carries.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}
