package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/Masterminds/squirrel"
)

type socialIdentityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSocialIdentityRepository(db *DB, logger *logger.Logger) SocialIdentityRepository {
	logger.Debug().Msg("creating social identity repository")
	return &socialIdentityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *socialIdentityRepository) GetIdentity(ctx context.Context, provider, uid string) (models.SocialIdentity, error) {
	query, args, err := r.db.sq.Select("id", "user_id", "provider", "uid", "created_at").
		From(socialIdentitiesTable).
		Where(squirrel.Eq{"provider": provider, "uid": uid}).
		ToSql()
	if err != nil {
		return models.SocialIdentity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var identity models.SocialIdentity
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&identity.ID, &identity.UserID, &identity.Provider, &identity.UID, &identity.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SocialIdentity{}, ErrIdentityNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "*socialIdentityRepository.GetIdentity").
			Str("provider", provider).
			Msg("error selecting social identity")
		return models.SocialIdentity{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return identity, nil
}

// CreateUserWithIdentity inserts user and the identity linking it to the
// provider account in one transaction. If either insert fails, neither row
// is kept.
func (r *socialIdentityRepository) CreateUserWithIdentity(ctx context.Context, user models.User, identity models.SocialIdentity) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.DateJoined.IsZero() {
		user.DateJoined = now()
	}

	var created models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.insertUserQuery(user).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		created, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			return r.classify(err)
		}

		query, args, err = r.db.sq.Insert(socialIdentitiesTable).
			Columns("user_id", "provider", "uid", "created_at").
			Values(created.UserID, identity.Provider, identity.UID, created.DateJoined).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.classify(err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*socialIdentityRepository.CreateUserWithIdentity").
			Str("provider", identity.Provider).
			Msg("error creating user with social identity")
		return models.User{}, err
	}

	return created, nil
}

// ListProviders returns display metadata of all known providers.
func (r *socialIdentityRepository) ListProviders(ctx context.Context) ([]models.SocialProvider, error) {
	query, args, err := r.db.sq.Select("key", "title", "logo").
		From(socialProvidersTable).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	providers := make([]models.SocialProvider, 0, 4)
	for rows.Next() {
		var p models.SocialProvider
		if err := rows.Scan(&p.Key, &p.Title, &p.Logo); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		providers = append(providers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return providers, nil
}

func (r *socialIdentityRepository) classify(err error) error {
	target, ok := r.db.errorClassificator.UniqueViolation(err)
	if !ok {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if strings.Contains(target, "social_identities") || strings.Contains(target, "uid") {
		return ErrIdentityAlreadyExists
	}
	if sentinel := userUniqueViolation(target); sentinel != nil {
		return sentinel
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
