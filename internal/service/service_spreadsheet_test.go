package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.SpreadsheetRepository
// ─────────────────────────────────────────────

type mockSpreadsheetRepository struct {
	createFn  func(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	listFn    func(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error)
	getByIDFn func(ctx context.Context, id, userID int64) (models.Spreadsheet, error)
	updateFn  func(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	deleteFn  func(ctx context.Context, id, userID int64) error
}

func (m *mockSpreadsheetRepository) Create(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return s, nil
}

func (m *mockSpreadsheetRepository) List(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, filter)
	}
	return []models.Spreadsheet{}, nil
}

func (m *mockSpreadsheetRepository) GetByID(ctx context.Context, id, userID int64) (models.Spreadsheet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, userID)
	}
	return models.Spreadsheet{}, store.ErrSpreadsheetNotFound
}

func (m *mockSpreadsheetRepository) Update(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return s, nil
}

func (m *mockSpreadsheetRepository) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.FileStorage
// ─────────────────────────────────────────────

type mockFileStorage struct {
	saveFn func(userID int64, originalName string, src io.Reader) (models.StoredFile, error)
	openFn func(userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error)
}

func (m *mockFileStorage) Save(userID int64, originalName string, src io.Reader) (models.StoredFile, error) {
	if m.saveFn != nil {
		return m.saveFn(userID, originalName, src)
	}
	return models.StoredFile{}, nil
}

func (m *mockFileStorage) Open(userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error) {
	if m.openFn != nil {
		return m.openFn(userID, fileKey)
	}
	return nil, models.StoredFile{}, store.ErrFileNotFound
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestSpreadsheetService_Create_StampsSharedAt(t *testing.T) {
	repository := &mockSpreadsheetRepository{
		createFn: func(_ context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
			s.ID = 7
			return s, nil
		},
	}
	svc := NewSpreadsheetService(repository, &mockFileStorage{}, logger.Nop())

	created, err := svc.Create(context.Background(), models.Spreadsheet{
		UserID:   42,
		Name:     "Orçamento 2026",
		IsShared: true,
	})

	require.NoError(t, err)
	require.NotNil(t, created.SharedAt)
	assert.WithinDuration(t, time.Now(), *created.SharedAt, time.Minute)
}

func TestSpreadsheetService_Create_PrivateHasNoSharedAt(t *testing.T) {
	svc := NewSpreadsheetService(&mockSpreadsheetRepository{}, &mockFileStorage{}, logger.Nop())

	created, err := svc.Create(context.Background(), models.Spreadsheet{UserID: 42, Name: "privada"})

	require.NoError(t, err)
	assert.Nil(t, created.SharedAt)
}

func TestSpreadsheetService_Create_RequiresName(t *testing.T) {
	createCalls := 0
	repository := &mockSpreadsheetRepository{
		createFn: func(_ context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
			createCalls++
			return s, nil
		},
	}
	svc := NewSpreadsheetService(repository, &mockFileStorage{}, logger.Nop())

	_, err := svc.Create(context.Background(), models.Spreadsheet{UserID: 42})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Zero(t, createCalls)
}

// ─────────────────────────────────────────────
// Update: shared_at transitions
// ─────────────────────────────────────────────

func TestSpreadsheetService_Update_NewlySharedGetsStamped(t *testing.T) {
	repository := &mockSpreadsheetRepository{
		getByIDFn: func(_ context.Context, id, userID int64) (models.Spreadsheet, error) {
			return models.Spreadsheet{ID: id, UserID: userID, Name: "old", IsShared: false}, nil
		},
	}
	svc := NewSpreadsheetService(repository, &mockFileStorage{}, logger.Nop())

	updated, err := svc.Update(context.Background(), models.Spreadsheet{
		ID: 7, UserID: 42, Name: "new", IsShared: true,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.SharedAt)
	assert.WithinDuration(t, time.Now(), *updated.SharedAt, time.Minute)
}

func TestSpreadsheetService_Update_StaysSharedKeepsOriginalStamp(t *testing.T) {
	firstShared := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	repository := &mockSpreadsheetRepository{
		getByIDFn: func(_ context.Context, id, userID int64) (models.Spreadsheet, error) {
			return models.Spreadsheet{
				ID: id, UserID: userID, Name: "old", IsShared: true, SharedAt: &firstShared,
			}, nil
		},
	}
	svc := NewSpreadsheetService(repository, &mockFileStorage{}, logger.Nop())

	updated, err := svc.Update(context.Background(), models.Spreadsheet{
		ID: 7, UserID: 42, Name: "renamed", IsShared: true,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.SharedAt)
	assert.Equal(t, firstShared, *updated.SharedAt)
}

func TestSpreadsheetService_Update_UnshareClearsStamp(t *testing.T) {
	firstShared := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	repository := &mockSpreadsheetRepository{
		getByIDFn: func(_ context.Context, id, userID int64) (models.Spreadsheet, error) {
			return models.Spreadsheet{
				ID: id, UserID: userID, Name: "old", IsShared: true, SharedAt: &firstShared,
			}, nil
		},
	}
	svc := NewSpreadsheetService(repository, &mockFileStorage{}, logger.Nop())

	updated, err := svc.Update(context.Background(), models.Spreadsheet{
		ID: 7, UserID: 42, Name: "old", IsShared: false,
	})

	require.NoError(t, err)
	assert.Nil(t, updated.SharedAt)
}

func TestSpreadsheetService_Update_NotFound(t *testing.T) {
	svc := NewSpreadsheetService(&mockSpreadsheetRepository{}, &mockFileStorage{}, logger.Nop())

	_, err := svc.Update(context.Background(), models.Spreadsheet{ID: 7, UserID: 42, Name: "x"})

	require.ErrorIs(t, err, store.ErrSpreadsheetNotFound)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestSpreadsheetService_List_PassesFilterThrough(t *testing.T) {
	var gotFilter models.SpreadsheetFilter
	repository := &mockSpreadsheetRepository{
		listFn: func(_ context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error) {
			assert.Equal(t, int64(42), userID)
			gotFilter = filter
			return []models.Spreadsheet{{ID: 1}}, nil
		},
	}
	svc := NewSpreadsheetService(repository, &mockFileStorage{}, logger.Nop())

	filter := models.SpreadsheetFilter{Search: "orçamento", Sort: "antigos", SharedOnly: true}
	spreadsheets, err := svc.List(context.Background(), 42, filter)

	require.NoError(t, err)
	assert.Len(t, spreadsheets, 1)
	assert.Equal(t, filter, gotFilter)
}

// ─────────────────────────────────────────────
// Download
// ─────────────────────────────────────────────

func TestSpreadsheetService_Download_Success(t *testing.T) {
	filePath := "abc_planilha.xlsx"
	repository := &mockSpreadsheetRepository{
		getByIDFn: func(_ context.Context, id, userID int64) (models.Spreadsheet, error) {
			return models.Spreadsheet{ID: id, UserID: userID, Name: "x", FilePath: &filePath}, nil
		},
	}
	fileStorage := &mockFileStorage{
		openFn: func(userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error) {
			assert.Equal(t, int64(42), userID)
			assert.Equal(t, filePath, fileKey)
			return io.NopCloser(strings.NewReader("data")), models.StoredFile{
				Key:          fileKey,
				OriginalName: "planilha.xlsx",
				Extension:    "xlsx",
				Size:         4,
			}, nil
		},
	}
	svc := NewSpreadsheetService(repository, fileStorage, logger.Nop())

	file, stored, err := svc.Download(context.Background(), 7, 42)

	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, "planilha.xlsx", stored.OriginalName)

	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestSpreadsheetService_Download_NoFileAttached(t *testing.T) {
	empty := ""
	for _, filePath := range []*string{nil, &empty} {
		repository := &mockSpreadsheetRepository{
			getByIDFn: func(_ context.Context, id, userID int64) (models.Spreadsheet, error) {
				return models.Spreadsheet{ID: id, UserID: userID, Name: "x", FilePath: filePath}, nil
			},
		}
		svc := NewSpreadsheetService(repository, &mockFileStorage{}, logger.Nop())

		_, _, err := svc.Download(context.Background(), 7, 42)

		require.ErrorIs(t, err, ErrNoFileAttached)
	}
}

func TestSpreadsheetService_Download_NotFound(t *testing.T) {
	svc := NewSpreadsheetService(&mockSpreadsheetRepository{}, &mockFileStorage{}, logger.Nop())

	_, _, err := svc.Download(context.Background(), 7, 42)

	require.ErrorIs(t, err, store.ErrSpreadsheetNotFound)
}
