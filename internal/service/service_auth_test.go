// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cotacoes-epc/go-quote-keeper/internal/config"
	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	findUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

// ─────────────────────────────────────────────
// Mock: store.RegistrationRepository
// ─────────────────────────────────────────────

type mockRegistrationRepository struct {
	seedIfEmptyFn func(ctx context.Context, codes []string) error
	findByCodeFn  func(ctx context.Context, code string) (models.AllowedRegistration, error)
	redeemFn      func(ctx context.Context, code string, userID int64) error
}

func (m *mockRegistrationRepository) SeedIfEmpty(ctx context.Context, codes []string) error {
	if m.seedIfEmptyFn != nil {
		return m.seedIfEmptyFn(ctx, codes)
	}
	return nil
}

func (m *mockRegistrationRepository) FindByCode(ctx context.Context, code string) (models.AllowedRegistration, error) {
	if m.findByCodeFn != nil {
		return m.findByCodeFn(ctx, code)
	}
	return models.AllowedRegistration{}, store.ErrRegistrationCodeNotFound
}

func (m *mockRegistrationRepository) Redeem(ctx context.Context, code string, userID int64) error {
	if m.redeemFn != nil {
		return m.redeemFn(ctx, code, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "quote-keeper",
		TokenAudience: "quote-keeper-ui",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(users *mockUserRepository, registrations *mockRegistrationRepository) AuthService {
	return NewAuthService(users, registrations, testAuthConfig(), logger.Nop())
}

func unusedCode(code string) models.AllowedRegistration {
	return models.AllowedRegistration{RegistrationID: 1, Code: code, IsUsed: false}
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:         "maria silva",
		Email:        "maria@example.com",
		Password:     "s3cret",
		Registration: "REG001",
	}
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	var redeemedBy int64
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, code string) (models.AllowedRegistration, error) {
			assert.Equal(t, "REG001", code)
			return unusedCode(code), nil
		},
		redeemFn: func(_ context.Context, code string, userID int64) error {
			assert.Equal(t, "REG001", code)
			redeemedBy = userID
			return nil
		},
	}
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			assert.True(t, user.IsActive)
			assert.Equal(t, "M", user.InitialLetter)
			assert.True(t, utils.VerifyPassword(user.PasswordHash, "s3cret"))
			user.UserID = 42
			return user, nil
		},
	}
	svc := newTestAuthService(users, registrations)

	registered, err := svc.Register(context.Background(), validRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), registered.UserID)
	assert.Equal(t, int64(42), redeemedBy)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	findCalls := 0
	createCalls := 0
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, code string) (models.AllowedRegistration, error) {
			findCalls++
			return unusedCode(code), nil
		},
	}
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			createCalls++
			return user, nil
		},
	}
	svc := newTestAuthService(users, registrations)

	for _, request := range []models.RegisterRequest{
		{Email: "a@b.c", Password: "x", Registration: "REG001"},
		{Name: "a", Password: "x", Registration: "REG001"},
		{Name: "a", Email: "a@b.c", Registration: "REG001"},
		{Name: "a", Email: "a@b.c", Password: "x"},
	} {
		_, err := svc.Register(context.Background(), request)
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	}

	// a rejected registration must not touch storage
	assert.Zero(t, findCalls)
	assert.Zero(t, createCalls)
}

func TestAuthService_Register_UnknownCode(t *testing.T) {
	createCalls := 0
	registrations := &mockRegistrationRepository{}
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			createCalls++
			return user, nil
		},
	}
	svc := newTestAuthService(users, registrations)

	_, err := svc.Register(context.Background(), validRegisterRequest())

	require.ErrorIs(t, err, store.ErrRegistrationCodeNotFound)
	assert.Zero(t, createCalls, "no user may be created for a rejected code")
}

func TestAuthService_Register_UsedCode(t *testing.T) {
	createCalls := 0
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, code string) (models.AllowedRegistration, error) {
			return models.AllowedRegistration{RegistrationID: 1, Code: code, IsUsed: true}, nil
		},
	}
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			createCalls++
			return user, nil
		},
	}
	svc := newTestAuthService(users, registrations)

	_, err := svc.Register(context.Background(), validRegisterRequest())

	require.ErrorIs(t, err, store.ErrRegistrationCodeUsed)
	assert.Zero(t, createCalls)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, code string) (models.AllowedRegistration, error) {
			return unusedCode(code), nil
		},
	}
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(users, registrations)

	_, err := svc.Register(context.Background(), validRegisterRequest())

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Register_EmailCheckedBeforeCode(t *testing.T) {
	// a taken email must be reported even when the code is also bad
	codeLookups := 0
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, _ string) (models.AllowedRegistration, error) {
			codeLookups++
			return models.AllowedRegistration{}, store.ErrRegistrationCodeNotFound
		},
	}
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email}, nil
		},
	}
	svc := newTestAuthService(users, registrations)

	request := validRegisterRequest()
	request.Registration = "NOPE"
	_, err := svc.Register(context.Background(), request)

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	assert.Zero(t, codeLookups)
}

func TestAuthService_Register_ConcurrentRedemption(t *testing.T) {
	// the ledger admits exactly one winner per code no matter how many
	// registrations race on it
	var redeemed atomic.Bool
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, code string) (models.AllowedRegistration, error) {
			return unusedCode(code), nil
		},
		redeemFn: func(_ context.Context, _ string, _ int64) error {
			if redeemed.CompareAndSwap(false, true) {
				return nil
			}
			return store.ErrRegistrationCodeUsed
		},
	}
	var nextID atomic.Int64
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = nextID.Add(1)
			return user, nil
		},
	}
	svc := newTestAuthService(users, registrations)

	const racers = 8
	var wins atomic.Int64
	var wg sync.WaitGroup
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.Register(context.Background(), validRegisterRequest()); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load())
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func activeUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		UserID:       42,
		Name:         "Maria",
		Email:        "maria@example.com",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := activeUser(t, "s3cret")
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "maria@example.com", email)
			return user, nil
		},
	}
	svc := newTestAuthService(users, &mockRegistrationRepository{})

	found, err := svc.Login(context.Background(), "maria@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(42), found.UserID)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	user := activeUser(t, "right")
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, email string) (models.User, error) {
			if email == "maria@example.com" {
				return user, nil
			}
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	svc := newTestAuthService(users, &mockRegistrationRepository{})

	_, unknownEmailErr := svc.Login(context.Background(), "ghost@example.com", "whatever")
	_, wrongPasswordErr := svc.Login(context.Background(), "maria@example.com", "wrong")

	// both failures map to the same error so responses do not reveal
	// which accounts exist
	require.ErrorIs(t, unknownEmailErr, ErrWrongCredentials)
	require.ErrorIs(t, wrongPasswordErr, ErrWrongCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	user := activeUser(t, "s3cret")
	user.IsActive = false
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}
	svc := newTestAuthService(users, &mockRegistrationRepository{})

	_, err := svc.Login(context.Background(), "maria@example.com", "s3cret")

	require.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthService_Login_DisabledAccountWithWrongPassword(t *testing.T) {
	user := activeUser(t, "s3cret")
	user.IsActive = false
	users := &mockUserRepository{
		findUserByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return user, nil
		},
	}
	svc := newTestAuthService(users, &mockRegistrationRepository{})

	// the password check runs first, so a wrong password never reveals that
	// the account is disabled
	_, err := svc.Login(context.Background(), "maria@example.com", "wrong")

	require.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRegistrationRepository{})

	_, err := svc.Login(context.Background(), "", "x")
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "a@b.c", "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// IsRegistrationAllowed
// ─────────────────────────────────────────────

func TestAuthService_IsRegistrationAllowed(t *testing.T) {
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, code string) (models.AllowedRegistration, error) {
			switch code {
			case "REG001":
				return unusedCode(code), nil
			case "REG002":
				return models.AllowedRegistration{Code: code, IsUsed: true}, nil
			default:
				return models.AllowedRegistration{}, store.ErrRegistrationCodeNotFound
			}
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, registrations)

	allowed, err := svc.IsRegistrationAllowed(context.Background(), "REG001")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = svc.IsRegistrationAllowed(context.Background(), "REG002")
	require.NoError(t, err)
	assert.False(t, allowed)

	// unknown and empty codes are negative answers, not errors
	allowed, err = svc.IsRegistrationAllowed(context.Background(), "NOPE")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = svc.IsRegistrationAllowed(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestAuthService_IsRegistrationAllowed_StorageError(t *testing.T) {
	storageErr := errors.New("storage down")
	registrations := &mockRegistrationRepository{
		findByCodeFn: func(_ context.Context, _ string) (models.AllowedRegistration, error) {
			return models.AllowedRegistration{}, storageErr
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, registrations)

	_, err := svc.IsRegistrationAllowed(context.Background(), "REG001")
	require.ErrorIs(t, err, storageErr)
}

// ─────────────────────────────────────────────
// SeedRegistrationCodes
// ─────────────────────────────────────────────

func TestAuthService_SeedRegistrationCodes(t *testing.T) {
	var seeded []string
	registrations := &mockRegistrationRepository{
		seedIfEmptyFn: func(_ context.Context, codes []string) error {
			seeded = codes
			return nil
		},
	}
	svc := newTestAuthService(&mockUserRepository{}, registrations)

	require.NoError(t, svc.SeedRegistrationCodes(context.Background()))
	require.Len(t, seeded, 10)
	assert.Equal(t, "REG001", seeded[0])
	assert.Equal(t, "REG010", seeded[9])
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRegistrationRepository{})
	user := models.User{UserID: 42, Name: "Maria", Email: "maria@example.com"}

	token, err := svc.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRegistrationRepository{})

	_, err := svc.ParseToken(context.Background(), "garbage")
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_ForeignIssuer(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{}, &mockRegistrationRepository{})

	foreign, err := utils.GenerateJWTToken("other-issuer", "quote-keeper-ui",
		models.User{UserID: 42}, time.Hour, "test-sign-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// initialLetter
// ─────────────────────────────────────────────

func TestInitialLetter(t *testing.T) {
	assert.Equal(t, "M", initialLetter("maria"))
	assert.Equal(t, "J", initialLetter("  joão"))
	assert.Equal(t, "Á", initialLetter("álvaro"))
	assert.Equal(t, "", initialLetter("   "))
	assert.Equal(t, "", initialLetter(""))
}
