// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cotacoes-epc/go-quote-keeper/internal/config"
	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/internal/store"
	"github.com/cotacoes-epc/go-quote-keeper/internal/utils"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// starterRegistrationCodes is the batch inserted into an empty invitation
// ledger on first start.
var starterRegistrationCodes = []string{
	"REG001", "REG002", "REG003", "REG004", "REG005",
	"REG006", "REG007", "REG008", "REG009", "REG010",
}

// authService is the concrete implementation of AuthService.
// It handles invitation-gated registration, credential verification and the
// JWT token lifecycle, using bcrypt for password hashing.
type authService struct {
	userRepository         store.UserRepository
	registrationRepository store.RegistrationRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer and tokenAudience are the "iss" and "aud" claims embedded
	// in every issued JWT. Tokens that do not carry both are rejected during
	// parsing.
	tokenIssuer   string
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, registrations store.RegistrationRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         users,
		registrationRepository: registrations,
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenAudience:          cfg.TokenAudience,
		tokenDuration:          cfg.TokenDuration,
		logger:                 logger,
	}
}

// Register creates a new user account gated by an invitation code.
//
// Checks run in order: required fields, email uniqueness, then the code; a
// rejected registration leaves no rows behind. The unique index still backs
// the email check, so a concurrent duplicate fails at CreateUser with the
// same error. Redemption itself is a conditional update: when two
// registrations race on the same code, exactly one of them wins it.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
//   - store.ErrRegistrationCodeNotFound if the code was never issued.
//   - store.ErrRegistrationCodeUsed if the code is already consumed.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" || request.Email == "" || request.Password == "" || request.Registration == "" {
		log.Error().Str("email", request.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.userRepository.FindUserByEmail(ctx, request.Email); err == nil {
		log.Error().Str("email", request.Email).Msg("email is already taken")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	registration, err := a.registrationRepository.FindByCode(ctx, request.Registration)
	if err != nil {
		log.Err(err).Str("code", request.Registration).Msg("registration code lookup failed")
		return models.User{}, fmt.Errorf("registration code lookup failed: %w", err)
	}
	if registration.IsUsed {
		log.Error().Str("code", request.Registration).Msg("registration code already used")
		return models.User{}, store.ErrRegistrationCodeUsed
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Name:             request.Name,
		Email:            request.Email,
		PasswordHash:     passwordHash,
		InitialLetter:    initialLetter(request.Name),
		RegistrationCode: request.Registration,
		IsActive:         true,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.registrationRepository.Redeem(ctx, request.Registration, registeredUser.UserID); err != nil {
		log.Err(err).
			Int64("id", registeredUser.UserID).
			Str("code", request.Registration).
			Msg("registration code redemption failed")
		return models.User{}, fmt.Errorf("registration code redemption failed: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown email and wrong password both come back as ErrWrongCredentials so
// the response does not reveal which accounts exist. A deactivated account is
// reported separately, but only after the password check passed.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, ErrWrongCredentials
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, password) {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if !foundUser.IsActive {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("account is disabled")
		return models.User{}, ErrAccountDisabled
	}

	return foundUser, nil
}

// IsRegistrationAllowed reports whether code exists and is still unredeemed.
// Any non-redeemable input, the empty string and unknown codes included, is
// not an error here, just a negative answer.
func (a *authService) IsRegistrationAllowed(ctx context.Context, code string) (bool, error) {
	log := logger.FromContext(ctx)

	if code == "" {
		return false, nil
	}

	registration, err := a.registrationRepository.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrRegistrationCodeNotFound) {
			return false, nil
		}
		log.Err(err).Str("code", code).Msg("registration code lookup failed")
		return false, fmt.Errorf("registration code lookup failed: %w", err)
	}

	return !registration.IsUsed, nil
}

// SeedRegistrationCodes inserts the starter invitation codes when the ledger
// holds no rows at all. Called once on every process start.
func (a *authService) SeedRegistrationCodes(ctx context.Context) error {
	if err := a.registrationRepository.SeedIfEmpty(ctx, starterRegistrationCodes); err != nil {
		return fmt.Errorf("seeding registration codes failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// issuer and audience claims, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, a.tokenAudience, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer or audience, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// initialLetter derives the single-character avatar label from a user's name.
func initialLetter(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	return strings.ToUpper(string([]rune(name)[0]))
}
