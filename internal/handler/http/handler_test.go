package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cotacoes-epc/go-quote-keeper/internal/config"
	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/service"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// testUserID is the identity the stub token resolves to in routed tests.
const testUserID int64 = 42

// testToken is the only token value the stub auth service accepts.
const testToken = "valid-test-token"

// ─────────────────────────────────────────────
// Mocks over the service interfaces
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn              func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn                 func(ctx context.Context, email, password string) (models.User, error)
	isRegistrationAllowedFn func(ctx context.Context, code string) (bool, error)
	createTokenFn           func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn            func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return models.User{}, service.ErrInvalidDataProvided
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{}, service.ErrWrongCredentials
}

func (m *mockAuthService) IsRegistrationAllowed(ctx context.Context, code string) (bool, error) {
	if m.isRegistrationAllowedFn != nil {
		return m.isRegistrationAllowedFn(ctx, code)
	}
	return false, nil
}

func (m *mockAuthService) SeedRegistrationCodes(_ context.Context) error {
	return nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: testToken, UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString == testToken {
		return models.Token{SignedString: tokenString, UserID: testUserID}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

type mockQuoteItemService struct {
	createFn  func(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error)
	getAllFn  func(ctx context.Context, userID int64) ([]models.QuoteItem, error)
	getByIDFn func(ctx context.Context, id, userID int64) (models.QuoteItem, error)
	updateFn  func(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error)
	deleteFn  func(ctx context.Context, id, userID int64) error
}

func (m *mockQuoteItemService) Create(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error) {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return item, nil
}

func (m *mockQuoteItemService) GetAll(ctx context.Context, userID int64) ([]models.QuoteItem, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, userID)
	}
	return []models.QuoteItem{}, nil
}

func (m *mockQuoteItemService) GetByID(ctx context.Context, id, userID int64) (models.QuoteItem, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, userID)
	}
	return models.QuoteItem{}, nil
}

func (m *mockQuoteItemService) Update(ctx context.Context, item models.QuoteItem) (models.QuoteItem, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, item)
	}
	return item, nil
}

func (m *mockQuoteItemService) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

type mockSpreadsheetService struct {
	createFn   func(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	listFn     func(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error)
	getByIDFn  func(ctx context.Context, id, userID int64) (models.Spreadsheet, error)
	updateFn   func(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error)
	deleteFn   func(ctx context.Context, id, userID int64) error
	downloadFn func(ctx context.Context, id, userID int64) (io.ReadCloser, models.StoredFile, error)
}

func (m *mockSpreadsheetService) Create(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
	if m.createFn != nil {
		return m.createFn(ctx, s)
	}
	return s, nil
}

func (m *mockSpreadsheetService) List(ctx context.Context, userID int64, filter models.SpreadsheetFilter) ([]models.Spreadsheet, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, filter)
	}
	return []models.Spreadsheet{}, nil
}

func (m *mockSpreadsheetService) GetByID(ctx context.Context, id, userID int64) (models.Spreadsheet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id, userID)
	}
	return models.Spreadsheet{}, nil
}

func (m *mockSpreadsheetService) Update(ctx context.Context, s models.Spreadsheet) (models.Spreadsheet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, s)
	}
	return s, nil
}

func (m *mockSpreadsheetService) Delete(ctx context.Context, id, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, userID)
	}
	return nil
}

func (m *mockSpreadsheetService) Download(ctx context.Context, id, userID int64) (io.ReadCloser, models.StoredFile, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, id, userID)
	}
	return nil, models.StoredFile{}, service.ErrNoFileAttached
}

type mockFileService struct {
	uploadFn   func(ctx context.Context, userID int64, originalName string, size int64, src io.Reader) (models.StoredFile, error)
	downloadFn func(ctx context.Context, userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error)
}

func (m *mockFileService) Upload(ctx context.Context, userID int64, originalName string, size int64, src io.Reader) (models.StoredFile, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, userID, originalName, size, src)
	}
	return models.StoredFile{}, nil
}

func (m *mockFileService) Download(ctx context.Context, userID int64, fileKey string) (io.ReadCloser, models.StoredFile, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, userID, fileKey)
	}
	return nil, models.StoredFile{}, nil
}

type mockDashboardService struct {
	summaryFn    func(ctx context.Context, userID int64) (models.DashboardSummary, error)
	statisticsFn func(ctx context.Context, userID int64) (models.DashboardStatistics, error)
}

func (m *mockDashboardService) Summary(ctx context.Context, userID int64) (models.DashboardSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, userID)
	}
	return models.DashboardSummary{}, nil
}

func (m *mockDashboardService) Statistics(ctx context.Context, userID int64) (models.DashboardStatistics, error) {
	if m.statisticsFn != nil {
		return m.statisticsFn(ctx, userID)
	}
	return models.DashboardStatistics{}, nil
}

// ─────────────────────────────────────────────
// Harness
// ─────────────────────────────────────────────

// newTestServices returns a Services value with every interface filled by a
// permissive mock; tests override the fields they care about.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:        &mockAuthService{},
		ServiceItemService: &mockQuoteItemService{},
		InputItemService:   &mockQuoteItemService{},
		SpreadsheetService: &mockSpreadsheetService{},
		FileService:        &mockFileService{},
		DashboardService:   &mockDashboardService{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Auth{TokenDuration: time.Hour}, logger.Nop())
}

// serveRouted sends the request through the fully initialized router,
// middlewares included.
func serveRouted(h *Handler, r *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	h.Init().ServeHTTP(recorder, r)
	return recorder
}

// authenticate attaches the stub session cookie accepted by mockAuthService.
func authenticate(r *http.Request) *http.Request {
	r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testToken})
	return r
}
