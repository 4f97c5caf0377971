package store

import (
	"context"
	"fmt"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// dashboardRepository is the PostgreSQL-backed implementation of
// [DashboardRepository]. It only reads: counts, recent rows and price
// aggregates, always scoped by the owner's user id.
type dashboardRepository struct {
	logger *logger.Logger
	db     *DB

	countServicesQuery string
	countInputsQuery   string

	recentServicesQuery string
	recentInputsQuery   string

	serviceStatsQuery string
	inputStatsQuery   string
}

// NewDashboardRepository constructs a [DashboardRepository] backed by the
// provided database connection and logger.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{
		db:     db,
		logger: logger,

		countServicesQuery: fmt.Sprintf(countQuoteItemsTemplate, models.ServicesTable),
		countInputsQuery:   fmt.Sprintf(countQuoteItemsTemplate, models.InputsTable),

		recentServicesQuery: fmt.Sprintf(recentQuoteItemsTemplate, models.ServicesTable),
		recentInputsQuery:   fmt.Sprintf(recentQuoteItemsTemplate, models.InputsTable),

		serviceStatsQuery: fmt.Sprintf(priceStatsTemplate, models.ServicesTable),
		inputStatsQuery:   fmt.Sprintf(priceStatsTemplate, models.InputsTable),
	}
}

// Summary collects row counts and the three most recent entries of every
// collection owned by userID.
func (r *dashboardRepository) Summary(ctx context.Context, userID int64) (models.DashboardSummary, error) {
	var summary models.DashboardSummary
	var err error

	if summary.ServicesCount, err = r.count(ctx, r.countServicesQuery, userID); err != nil {
		return models.DashboardSummary{}, err
	}
	if summary.InputsCount, err = r.count(ctx, r.countInputsQuery, userID); err != nil {
		return models.DashboardSummary{}, err
	}
	if summary.SpreadsheetsCount, err = r.count(ctx, countSpreadsheets, userID); err != nil {
		return models.DashboardSummary{}, err
	}

	if summary.RecentServices, err = r.recentItems(ctx, r.recentServicesQuery, userID); err != nil {
		return models.DashboardSummary{}, err
	}
	if summary.RecentInputs, err = r.recentItems(ctx, r.recentInputsQuery, userID); err != nil {
		return models.DashboardSummary{}, err
	}
	if summary.RecentSpreadsheets, err = r.recentSpreadsheets(ctx, userID); err != nil {
		return models.DashboardSummary{}, err
	}

	return summary, nil
}

// Statistics collects the sums and averages of the adopted prices of both
// line-item collections owned by userID.
func (r *dashboardRepository) Statistics(ctx context.Context, userID int64) (models.DashboardStatistics, error) {
	log := logger.FromContext(ctx)

	var stats models.DashboardStatistics

	row := r.db.QueryRowContext(ctx, r.serviceStatsQuery, userID)
	if err := row.Scan(&stats.TotalServicesValue, &stats.AverageServicePrice); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.Statistics").Msg("error: service stats failed")
		return models.DashboardStatistics{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	row = r.db.QueryRowContext(ctx, r.inputStatsQuery, userID)
	if err := row.Scan(&stats.TotalInputsValue, &stats.AverageInputPrice); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.Statistics").Msg("error: input stats failed")
		return models.DashboardStatistics{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}

func (r *dashboardRepository) count(ctx context.Context, query string, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		log.Err(err).Str("func", "*dashboardRepository.count").Msg("error: count failed")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

func (r *dashboardRepository) recentItems(ctx context.Context, query string, userID int64) ([]models.RecentEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.recentItems").Msg("error: recent query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]models.RecentEntry, 0, 3)
	for rows.Next() {
		var e models.RecentEntry
		if err = rows.Scan(&e.ID, &e.OriginalID, &e.Item, &e.AdoptedPrice, &e.CreatedAt, &e.ResponsibleName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *dashboardRepository) recentSpreadsheets(ctx context.Context, userID int64) ([]models.RecentEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, recentSpreadsheets, userID)
	if err != nil {
		log.Err(err).Str("func", "*dashboardRepository.recentSpreadsheets").Msg("error: recent query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	entries := make([]models.RecentEntry, 0, 3)
	for rows.Next() {
		var e models.RecentEntry
		if err = rows.Scan(&e.ID, &e.Name, &e.FilePath, &e.CreatedAt, &e.ResponsibleName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
