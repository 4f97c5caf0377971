package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// spreadsheetService is the concrete implementation of SpreadsheetService.
// Besides owner-scoped CRUD it owns the sharing timestamp transition and the
// bridge from a metadata record to its file on disk.
type spreadsheetService struct {
	repository  store.SpreadsheetRepository
	fileStorage store.FileStorage
	logger      *logger.Logger
}

func NewSpreadsheetService(repository store.SpreadsheetRepository, fileStorage store.FileStorage, logger *logger.Logger) SpreadsheetService {
	return &spreadsheetService{
		repository:  repository,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (s *spreadsheetService) Create(ctx context.Context, spreadsheet models.Spreadsheet) (models.Spreadsheet, error) {
	log := logger.FromContext(ctx)

	if spreadsheet.Name == "" {
		log.Error().Int64("userID", spreadsheet.UserID).Msg("invalid spreadsheet data provided")
		return models.Spreadsheet{}, ErrInvalidDataProvided
	}

	if spreadsheet.IsShared {
		now := time.Now()
		spreadsheet.SharedAt = &now
	}

	created, err := s.repository.Create(ctx, spreadsheet)
	if err != nil {
		log.Err(err).Int64("userID", spreadsheet.UserID).Msg("spreadsheet creation ended with error")
		return models.Spreadsheet{}, fmt.Errorf("spreadsheet creation ended with error: %w", err)
	}

	return created, nil
}

func (s *spreadsheetService) List(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error) {
	spreadsheets, err := s.repository.List(ctx, userID, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("spreadsheet listing failed")
		return nil, fmt.Errorf("spreadsheet listing failed: %w", err)
	}

	return spreadsheets, nil
}

func (s *spreadsheetService) GetByID(ctx context.Context, id, userID int64) (models.Spreadsheet, error) {
	spreadsheet, err := s.repository.GetByID(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Int64("userID", userID).Msg("spreadsheet lookup failed")
		return models.Spreadsheet{}, fmt.Errorf("spreadsheet lookup failed: %w", err)
	}

	return spreadsheet, nil
}

// Update replaces the mutable fields of a spreadsheet record. The sharing
// timestamp is stamped when the record first turns shared, kept while it
// stays shared and cleared when sharing is revoked.
func (s *spreadsheetService) Update(ctx context.Context, spreadsheet models.Spreadsheet) (models.Spreadsheet, error) {
	log := logger.FromContext(ctx)

	if spreadsheet.Name == "" {
		log.Error().Int64("id", spreadsheet.ID).Int64("userID", spreadsheet.UserID).Msg("invalid spreadsheet data provided")
		return models.Spreadsheet{}, ErrInvalidDataProvided
	}

	existing, err := s.repository.GetByID(ctx, spreadsheet.ID, spreadsheet.UserID)
	if err != nil {
		log.Err(err).Int64("id", spreadsheet.ID).Int64("userID", spreadsheet.UserID).Msg("spreadsheet lookup failed")
		return models.Spreadsheet{}, fmt.Errorf("spreadsheet lookup failed: %w", err)
	}

	switch {
	case spreadsheet.IsShared && existing.IsShared:
		spreadsheet.SharedAt = existing.SharedAt
	case spreadsheet.IsShared:
		now := time.Now()
		spreadsheet.SharedAt = &now
	default:
		spreadsheet.SharedAt = nil
	}

	updated, err := s.repository.Update(ctx, spreadsheet)
	if err != nil {
		log.Err(err).Int64("id", spreadsheet.ID).Int64("userID", spreadsheet.UserID).Msg("spreadsheet update ended with error")
		return models.Spreadsheet{}, fmt.Errorf("spreadsheet update ended with error: %w", err)
	}

	return updated, nil
}

func (s *spreadsheetService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repository.Delete(ctx, id, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Int64("userID", userID).Msg("spreadsheet deletion failed")
		return fmt.Errorf("spreadsheet deletion failed: %w", err)
	}

	return nil
}

// Download opens the file attached to the spreadsheet record. A record
// without an attached file yields ErrNoFileAttached.
func (s *spreadsheetService) Download(ctx context.Context, id, userID int64) (io.ReadCloser, models.StoredFile, error) {
	log := logger.FromContext(ctx)

	spreadsheet, err := s.repository.GetByID(ctx, id, userID)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("userID", userID).Msg("spreadsheet lookup failed")
		return nil, models.StoredFile{}, fmt.Errorf("spreadsheet lookup failed: %w", err)
	}

	if spreadsheet.FilePath == nil || *spreadsheet.FilePath == "" {
		log.Error().Int64("id", id).Int64("userID", userID).Msg("spreadsheet has no attached file")
		return nil, models.StoredFile{}, ErrNoFileAttached
	}

	file, stored, err := s.fileStorage.Open(userID, *spreadsheet.FilePath)
	if err != nil {
		log.Err(err).Int64("id", id).Int64("userID", userID).Msg("opening spreadsheet file failed")
		return nil, models.StoredFile{}, fmt.Errorf("opening spreadsheet file failed: %w", err)
	}

	return file, stored, nil
}
