package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cotacoes-epc/go-quote-keeper/internal/logger"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

// registrationRepository is the PostgreSQL-backed implementation of
// [RegistrationRepository]: the single-use invitation-code ledger behind the
// registration gate.
type registrationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRegistrationRepository constructs a [RegistrationRepository] backed by
// the provided database connection and logger.
func NewRegistrationRepository(db *DB, logger *logger.Logger) RegistrationRepository {
	logger.Debug().Msg("creating registration repository")
	return &registrationRepository{
		db:     db,
		logger: logger,
	}
}

// SeedIfEmpty inserts the starter code batch when the ledger holds zero
// rows. The emptiness check and the inserts run in one transaction so two
// concurrently booting processes cannot both seed.
func (r *registrationRepository) SeedIfEmpty(ctx context.Context, codes []string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() { _ = tx.Rollback() }() // no-op after commit

	var total int64
	if err = tx.QueryRowContext(ctx, countRegistrations).Scan(&total); err != nil {
		log.Err(err).Str("func", "*registrationRepository.SeedIfEmpty").Msg("error: counting ledger rows failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if total > 0 {
		return nil
	}

	for _, code := range codes {
		if _, err = tx.ExecContext(ctx, insertRegistrationCode, code); err != nil {
			log.Err(err).Str("func", "*registrationRepository.SeedIfEmpty").Str("code", code).Msg("error: seeding code failed")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().Int("codes", len(codes)).Msg("registration ledger seeded")
	return nil
}

// FindByCode retrieves the ledger entry for the given code string.
func (r *registrationRepository) FindByCode(ctx context.Context, code string) (models.AllowedRegistration, error) {
	log := logger.FromContext(ctx)

	var reg models.AllowedRegistration
	row := r.db.QueryRowContext(ctx, findRegistrationByCode, code)

	if err := row.Scan(&reg.RegistrationID, &reg.Code, &reg.IsUsed, &reg.UsedByUserID, &reg.CreatedAt, &reg.UsedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AllowedRegistration{}, ErrRegistrationCodeNotFound
		}

		log.Err(err).Str("func", "*registrationRepository.FindByCode").Msg("error: code lookup failed")
		return models.AllowedRegistration{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return reg, nil
}

// Redeem consumes the code on behalf of userID.
//
// The UPDATE carries a "is_used = false" guard, so the unused→used
// transition happens exactly once no matter how many requests race on the
// same code: the losers observe zero affected rows and get
// [ErrRegistrationCodeUsed] ([ErrRegistrationCodeNotFound] if the code was
// never issued at all).
func (r *registrationRepository) Redeem(ctx context.Context, code string, userID int64) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, redeemRegistrationCode, code, userID)
	if err != nil {
		log.Err(err).Str("func", "*registrationRepository.Redeem").Str("code", code).Msg("error: redeem update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		if _, findErr := r.FindByCode(ctx, code); errors.Is(findErr, ErrRegistrationCodeNotFound) {
			return ErrRegistrationCodeNotFound
		}
		return ErrRegistrationCodeUsed
	}

	return nil
}
