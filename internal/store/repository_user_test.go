package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/thingsfree/internal/config"
	"github.com/MKhiriev/thingsfree/internal/logger"
	"github.com/MKhiriev/thingsfree/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgUniqueError(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

func userRows(users ...models.User) *sqlmock.Rows {
	rows := sqlmock.NewRows(userColumns)
	for _, u := range users {
		var email, phone any
		if u.Email != "" {
			email = u.Email
		}
		if u.PhoneNumber != "" {
			phone = u.PhoneNumber
		}
		rows.AddRow(u.UserID.String(), u.Username, u.FirstName, u.LastName, email, phone,
			u.PasswordHash, u.Avatar, u.IsActive, u.IsStaff, u.DateJoined)
	}
	return rows
}

func testUser() models.User {
	return models.User{
		UserID:       uuid.New(),
		Username:     "alice",
		PhoneNumber:  "+79604566768",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
		IsActive:     true,
		DateJoined:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func testSession() models.VerificationSession {
	return models.VerificationSession{
		PhoneNumber:  "+79604566768",
		CodeHash:     "code-hash",
		SessionToken: "session-token",
	}
}

func anyArgs(n int) []driver.Value {
	args := make([]driver.Value, n)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	return args
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(anyArgs(len(userColumns))...).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, created.UserID)
	assert.Equal(t, user.Username, created.Username)
	assert.Equal(t, user.PhoneNumber, created.PhoneNumber)
	assert.Empty(t, created.Email)
	assert.True(t, created.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"users_username_key", ErrUsernameAlreadyExists},
		{"users_email_key", ErrEmailAlreadyExists},
		{"users_phone_number_key", ErrPhoneAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("INSERT INTO users").
				WillReturnError(pgUniqueError(tt.constraint))

			_, err := repo.CreateUser(context.Background(), testUser())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), testUser())
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestCreateVerifiedUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	session := testSession()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM verification_sessions").
		WithArgs(session.CodeHash, session.PhoneNumber, session.SessionToken).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRows(user))
	mock.ExpectCommit()

	created, err := repo.CreateVerifiedUser(context.Background(), user, session)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, created.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVerifiedUser_SessionAlreadyConsumed(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM verification_sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CreateVerifiedUser(context.Background(), testUser(), testSession())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVerifiedUser_PhoneTakenRollsBack(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM verification_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgUniqueError("users_phone_number_key"))
	mock.ExpectRollback()

	_, err := repo.CreateVerifiedUser(context.Background(), testUser(), testSession())
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateVerifiedUser_BeginError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := repo.CreateVerifiedUser(context.Background(), testUser(), testSession())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestBindPhoneNumber_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	session := testSession()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM verification_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE users SET phone_number").
		WithArgs(session.PhoneNumber, user.UserID).
		WillReturnRows(userRows(user))
	mock.ExpectCommit()

	updated, err := repo.BindPhoneNumber(context.Background(), user.UserID, session)
	require.NoError(t, err)
	assert.Equal(t, session.PhoneNumber, updated.PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBindPhoneNumber_PhoneOwnedByAnotherUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM verification_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE users").
		WillReturnError(pgUniqueError("users_phone_number_key"))
	mock.ExpectRollback()

	_, err := repo.BindPhoneNumber(context.Background(), uuid.New(), testSession())
	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestBindPhoneNumber_UserMissing(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM verification_sessions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectRollback()

	_, err := repo.BindPhoneNumber(context.Background(), uuid.New(), testSession())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	user.Email = "alice@example.com"

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1 LIMIT 1").
		WithArgs("alice").
		WillReturnRows(userRows(user))

	found, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)
	assert.Equal(t, "alice@example.com", found.Email)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserByPhoneNumber_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE phone_number").
		WithArgs("+79604566768").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetUserByPhoneNumber(context.Background(), "+79604566768")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestPhoneNumberExists(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT 1 FROM users WHERE is_active = .+ AND phone_number = ").
		WithArgs(true, "+79604566768").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM users WHERE is_active = .+ AND phone_number = ").
		WithArgs(true, "+79604566769").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	exists, err := repo.PhoneNumberExists(context.Background(), "+79604566768")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.PhoneNumberExists(context.Background(), "+79604566769")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUsernameExists_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT 1 FROM users WHERE username").
		WillReturnError(errors.New("db failure"))

	_, err := repo.UsernameExists(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
