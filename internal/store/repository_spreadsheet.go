package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// spreadsheetRepository is the PostgreSQL-backed implementation of
// [SpreadsheetRepository].
type spreadsheetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSpreadsheetRepository constructs a [SpreadsheetRepository] backed by the
// provided database connection and logger.
func NewSpreadsheetRepository(db *DB, logger *logger.Logger) SpreadsheetRepository {
	logger.Debug().Msg("creating spreadsheet repository")
	return &spreadsheetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *spreadsheetRepository) Create(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSpreadsheet,
		s.UserID, s.Name, s.Description, s.FilePath, s.FileType, s.FileSize, s.IsShared, s.SharedAt)

	created, err := scanSpreadsheet(row)
	if err != nil {
		log.Err(err).Str("func", "*spreadsheetRepository.Create").Msg("error: spreadsheet insert failed")
		return models.Spreadsheet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// List returns the caller's spreadsheets narrowed by filter. The query is
// assembled dynamically by buildSpreadsheetListQuery.
func (r *spreadsheetRepository) List(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSpreadsheetListQuery(userID, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*spreadsheetRepository.List").Msg("error: list query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = rows.Close() }()

	sheets := make([]models.Spreadsheet, 0)
	for rows.Next() {
		sheet, scanErr := scanSpreadsheet(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*spreadsheetRepository.List").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		sheets = append(sheets, sheet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sheets, nil
}

func (r *spreadsheetRepository) GetByID(ctx context.Context, id, userID int64) (models.Spreadsheet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSpreadsheetByID, id, userID)

	sheet, err := scanSpreadsheet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Spreadsheet{}, ErrSpreadsheetNotFound
		}

		log.Err(err).Str("func", "*spreadsheetRepository.GetByID").Msg("error: lookup failed")
		return models.Spreadsheet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return sheet, nil
}

func (r *spreadsheetRepository) Update(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateSpreadsheet,
		s.ID, s.UserID, s.Name, s.Description, s.FilePath, s.FileType, s.FileSize, s.IsShared, s.SharedAt)

	updated, err := scanSpreadsheet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Spreadsheet{}, ErrSpreadsheetNotFound
		}

		log.Err(err).Str("func", "*spreadsheetRepository.Update").Msg("error: update failed")
		return models.Spreadsheet{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *spreadsheetRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteSpreadsheet, id, userID)
	if err != nil {
		log.Err(err).Str("func", "*spreadsheetRepository.Delete").Msg("error: delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrSpreadsheetNotFound
	}

	return nil
}

func scanSpreadsheet(row rowScanner) (models.Spreadsheet, error) {
	var s models.Spreadsheet
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Description, &s.FilePath, &s.FileType, &s.FileSize,
		&s.IsShared, &s.SharedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}
