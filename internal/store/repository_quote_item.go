package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// quoteItemRepository is the PostgreSQL-backed implementation of
// [QuoteItemRepository]. One instance serves one of the two structurally
// identical collections; the table name is fixed at construction and baked
// into the prepared query strings.
type quoteItemRepository struct {
	logger *logger.Logger
	db     *DB
	table  string

	createQuery  string
	getAllQuery  string
	getByIDQuery string
	updateQuery  string
	deleteQuery  string
}

// NewQuoteItemRepository constructs a [QuoteItemRepository] bound to the
// given collection table (models.ServicesTable or models.InputsTable).
func NewQuoteItemRepository(db *DB, table string, logger *logger.Logger) QuoteItemRepository {
	logger.Debug().Str("table", table).Msg("creating quote item repository")
	return &quoteItemRepository{
		db:     db,
		table:  table,
		logger: logger,

		createQuery:  fmt.Sprintf(createQuoteItemTemplate, table),
		getAllQuery:  fmt.Sprintf(getAllQuoteItemsTemplate, table),
		getByIDQuery: fmt.Sprintf(getQuoteItemByIDTemplate, table),
		updateQuery:  fmt.Sprintf(updateQuoteItemTemplate, table),
		deleteQuery:  fmt.Sprintf(deleteQuoteItemTemplate, table),
	}
}

// Create persists a new line item and returns it with server-assigned
// fields (ID, CreatedAt).
func (r *quoteItemRepository) Create(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, r.createQuery, insertArgs(item)...)

	created, err := scanQuoteItem(row)
	if err != nil {
		log.Err(err).Str("func", "*quoteItemRepository.Create").Str("table", r.table).Msg("error: item insert failed")
		return models.QuoteItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetAll lists the caller's items, newest first.
func (r *quoteItemRepository) GetAll(ctx context.Context, userID int64) ([]models.QuoteItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, r.getAllQuery, userID)
	if err != nil {
		log.Err(err).Str("func", "*quoteItemRepository.GetAll").Str("table", r.table).Msg("error: list query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]models.QuoteItem, 0)
	for rows.Next() {
		item, scanErr := scanQuoteItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*quoteItemRepository.GetAll").Str("table", r.table).Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// GetByID retrieves one item owned by userID.
// Returns [ErrQuoteItemNotFound] when the row is absent or owned by someone
// else; the two cases are indistinguishable to the caller.
func (r *quoteItemRepository) GetByID(ctx context.Context, id, userID int64) (models.QuoteItem, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, r.getByIDQuery, id, userID)

	item, err := scanQuoteItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuoteItem{}, ErrQuoteItemNotFound
		}

		log.Err(err).Str("func", "*quoteItemRepository.GetByID").Str("table", r.table).Msg("error: lookup failed")
		return models.QuoteItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// Update rewrites every mutable column of the row identified by
// (item.ID, item.UserID) and stamps updated_at.
func (r *quoteItemRepository) Update(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error) {
	log := logger.FromContext(ctx)

	args := append([]any{item.ID, item.UserID}, fieldArgs(item)...)
	row := r.db.QueryRowContext(ctx, r.updateQuery, args...)

	updated, err := scanQuoteItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuoteItem{}, ErrQuoteItemNotFound
		}

		log.Err(err).Str("func", "*quoteItemRepository.Update").Str("table", r.table).Msg("error: update failed")
		return models.QuoteItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes the row identified by (id, userID).
func (r *quoteItemRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, r.deleteQuery, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*quoteItemRepository.Delete").Str("table", r.table).Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrQuoteItemNotFound
	}

	return nil
}

// rowScanner is the subset of sql.Row/sql.Rows used by scanQuoteItem.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuoteItem(row rowScanner) (models.QuoteItem, error) {
	var item models.QuoteItem
	err := row.Scan(
		&item.ID, &item.UserID, &item.OriginalID, &item.Item, &item.Unit,
		&item.SupplierPrice, &item.AssemblyPrice, &item.AdoptedPrice,
		&item.AdoptedAverage, &item.SanitizedAverage, &item.LowestValue, &item.ArithmeticMean, &item.Median,
		&item.Vendor1, &item.Vendor2, &item.Vendor3, &item.Vendor4, &item.Vendor5, &item.Vendor6,
		&item.Justification, &item.ElapsedMonths, &item.PreviousMonth, &item.PreviousIndex, &item.CurrentIndex,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// insertArgs lists the INSERT parameters: owner first, then every mutable
// field in column order.
func insertArgs(item models.QuoteItem) []any {
	return append([]any{item.UserID}, fieldArgs(item)...)
}

// fieldArgs lists the mutable columns in the order shared by the INSERT and
// UPDATE statements.
func fieldArgs(item models.QuoteItem) []any {
	return []any{
		item.OriginalID, item.Item, item.Unit,
		item.SupplierPrice, item.AssemblyPrice, item.AdoptedPrice,
		item.AdoptedAverage, item.SanitizedAverage, item.LowestValue, item.ArithmeticMean, item.Median,
		item.Vendor1, item.Vendor2, item.Vendor3, item.Vendor4, item.Vendor5, item.Vendor6,
		item.Justification, item.ElapsedMonths, item.PreviousMonth, item.PreviousIndex, item.CurrentIndex,
	}
}
