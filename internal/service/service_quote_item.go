package service

import (
	"context"
	"fmt"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// quoteItemService is the concrete implementation of QuoteItemService.
// It is a thin owner-scoped CRUD layer over a QuoteItemRepository; one
// instance serves the services collection and another the inputs collection.
type quoteItemService struct {
	repository store.QuoteItemRepository
	logger     *logger.Logger
}

func NewQuoteItemService(repository store.QuoteItemRepository, logger *logger.Logger) QuoteItemService {
	return &quoteItemService{
		repository: repository,
		logger:     logger,
	}
}

func (s *quoteItemService) Create(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error) {
	log := logger.FromContext(ctx)

	if item.Item == "" {
		log.Error().Int64("userID", item.UserID).Msg("invalid quote item data provided")
		return models.QuoteItem{}, ErrInvalidDataProvided
	}

	created, err := s.repository.Create(ctx, item)
	if err != nil {
		log.Err(err).Int64("userID", item.UserID).Msg("quote item creation ended with error")
		return models.QuoteItem{}, fmt.Errorf("quote item creation ended with error: %w", err)
	}

	return created, nil
}

func (s *quoteItemService) GetAll(ctx context.Context, userID int64) ([]models.QuoteItem, error) {
	items, err := s.repository.GetAll(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("userID", userID).Msg("quote item listing failed")
		return nil, fmt.Errorf("quote item listing failed: %w", err)
	}

	return items, nil
}

func (s *quoteItemService) GetByID(ctx context.Context, id, userID int64) (models.QuoteItem, error) {
	item, err := s.repository.GetByID(ctx, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Int64("userID", userID).Msg("quote item lookup failed")
		return models.QuoteItem{}, fmt.Errorf("quote item lookup failed: %w", err)
	}

	return item, nil
}

func (s *quoteItemService) Update(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error) {
	log := logger.FromContext(ctx)

	if item.Item == "" {
		log.Error().Int64("id", item.ID).Int64("userID", item.UserID).Msg("invalid quote item data provided")
		return models.QuoteItem{}, ErrInvalidDataProvided
	}

	updated, err := s.repository.Update(ctx, item)
	if err != nil {
		log.Err(err).Int64("id", item.ID).Int64("userID", item.UserID).Msg("quote item update ended with error")
		return models.QuoteItem{}, fmt.Errorf("quote item update ended with error: %w", err)
	}

	return updated, nil
}

func (s *quoteItemService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repository.Delete(ctx, id, userID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Int64("userID", userID).Msg("quote item deletion failed")
		return fmt.Errorf("quote item deletion failed: %w", err)
	}

	return nil
}
