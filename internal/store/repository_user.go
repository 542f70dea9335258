package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the stored
// representation via a RETURNING clause.
//
// Error handling:
//   - unique violation on username/email/phone_number → the matching
//     Err*AlreadyExists sentinel.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return r.createUser(ctx, r.db, user)
}

// CreateVerifiedUser deletes the verification session identified by
// (phone number, session token) and inserts user in the same transaction.
// A session that is already gone yields [ErrSessionNotFound] and nothing is
// inserted.
func (r *userRepository) CreateVerifiedUser(ctx context.Context, user models.User, session models.VerificationSession) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := consumeSession(ctx, r.db, tx, session); err != nil {
			return err
		}

		var err error
		created, err = r.createUser(ctx, tx, user)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateVerifiedUser").Msg("error creating verified user")
		return models.User{}, err
	}

	return created, nil
}

// BindPhoneNumber deletes the verification session and sets the user's
// phone number in the same transaction.
func (r *userRepository) BindPhoneNumber(ctx context.Context, userID uuid.UUID, session models.VerificationSession) (models.User, error) {
	log := logger.FromContext(ctx)

	var updated models.User
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := consumeSession(ctx, r.db, tx, session); err != nil {
			return err
		}

		query, args, err := r.db.sq.Update(usersTable).
			Set("phone_number", session.PhoneNumber).
			Where(squirrel.Eq{"id": userID}).
			Suffix("RETURNING " + joinColumns(userColumns)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		updated, err = scanUser(tx.QueryRowContext(ctx, query, args...))
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrUserNotFound
		case err != nil:
			return r.classify(err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.BindPhoneNumber").
			Str("user_id", userID.String()).
			Msg("error binding phone number")
		return models.User{}, err
	}

	return updated, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": userID})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"username": username})
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *userRepository) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (models.User, error) {
	return r.getUser(ctx, squirrel.Eq{"phone_number": phoneNumber})
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"username": username})
}

// PhoneNumberExists reports whether an active user owns phoneNumber. A
// blocked owner still holds the unique number, so signup and bind with it
// fail on insert.
func (r *userRepository) PhoneNumberExists(ctx context.Context, phoneNumber string) (bool, error) {
	return r.exists(ctx, squirrel.Eq{"phone_number": phoneNumber, "is_active": true})
}

func (r *userRepository) createUser(ctx context.Context, q querier, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.DateJoined.IsZero() {
		user.DateJoined = now()
	}

	query, args, err := r.db.insertUserQuery(user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.createUser").Msg("error inserting user")
		return models.User{}, r.classify(err)
	}

	return created, nil
}

func (r *userRepository) getUser(ctx context.Context, where squirrel.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserQuery().Where(where).Limit(1).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.getUser").Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) exists(ctx context.Context, where squirrel.Eq) (bool, error) {
	query, args, err := r.db.sq.Select("1").From(usersTable).Where(where).Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// classify converts unique violations into sentinels.
func (r *userRepository) classify(err error) error {
	if target, ok := r.db.errorClassificator.UniqueViolation(err); ok {
		if sentinel := userUniqueViolation(target); sentinel != nil {
			return sentinel
		}
	}

	return fmt.Errorf("unexpected DB error: %w", err)
}
