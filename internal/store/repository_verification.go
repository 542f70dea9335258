package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/Masterminds/squirrel"
)

// verificationSessionRepository keeps one verification session per phone
// number in the "verification_sessions" table.
type verificationSessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVerificationSessionRepository(db *DB, logger *logger.Logger) VerificationSessionRepository {
	logger.Debug().Msg("creating verification session repository")
	return &verificationSessionRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertSession inserts session or overwrites the existing session of the
// same phone number, so the latest issued code always wins.
func (r *verificationSessionRepository) UpsertSession(ctx context.Context, session models.VerificationSession) error {
	log := logger.FromContext(ctx)

	if session.CreatedAt.IsZero() {
		session.CreatedAt = now()
	}

	query, args, err := r.db.sq.Insert(verificationSessionsTable).
		Columns("phone_number", "code_hash", "session_token", "created_at").
		Values(session.PhoneNumber, session.CodeHash, session.SessionToken, session.CreatedAt).
		Suffix(`ON CONFLICT (phone_number) DO UPDATE SET
			code_hash = excluded.code_hash,
			session_token = excluded.session_token,
			created_at = excluded.created_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*verificationSessionRepository.UpsertSession").
			Msg("error upserting verification session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *verificationSessionRepository) GetSession(ctx context.Context, phoneNumber string) (models.VerificationSession, error) {
	query, args, err := r.db.sq.Select("phone_number", "code_hash", "session_token", "created_at").
		From(verificationSessionsTable).
		Where(squirrel.Eq{"phone_number": phoneNumber}).
		ToSql()
	if err != nil {
		return models.VerificationSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.VerificationSession
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&session.PhoneNumber, &session.CodeHash, &session.SessionToken, &session.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.VerificationSession{}, ErrSessionNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "*verificationSessionRepository.GetSession").
			Msg("error selecting verification session")
		return models.VerificationSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *verificationSessionRepository) DeleteExpired(ctx context.Context, createdBefore time.Time) (int64, error) {
	query, args, err := r.db.sq.Delete(verificationSessionsTable).
		Where(squirrel.Lt{"created_at": createdBefore.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}

// consumeSession deletes exactly the session that was verified. Zero
// affected rows means a concurrent request consumed or replaced it.
func consumeSession(ctx context.Context, db *DB, q querier, session models.VerificationSession) error {
	query, args, err := db.sq.Delete(verificationSessionsTable).
		Where(squirrel.Eq{
			"phone_number":  session.PhoneNumber,
			"session_token": session.SessionToken,
			"code_hash":     session.CodeHash,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}
