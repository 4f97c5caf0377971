package service

import (
	"context"
	"fmt"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// dashboardService is the concrete implementation of DashboardService,
// a read-only pass-through over the dashboard repository.
type dashboardService struct {
	repository store.DashboardRepository
	logger     *logger.Logger
}

func NewDashboardService(repository store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		repository: repository,
		logger:     logger,
	}
}

func (d *dashboardService) Summary(ctx context.Context, userID int64) (models.DashboardSummary, error) {
	summary, err := d.repository.Summary(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("dashboard summary failed")
		return models.DashboardSummary{}, fmt.Errorf("dashboard summary failed: %w", err)
	}

	return summary, nil
}

func (d *dashboardService) Statistics(ctx context.Context, userID int64) (models.DashboardStatistics, error) {
	statistics, err := d.repository.Statistics(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("dashboard statistics failed")
		return models.DashboardStatistics{}, fmt.Errorf("dashboard statistics failed: %w", err)
	}

	return statistics, nil
}
