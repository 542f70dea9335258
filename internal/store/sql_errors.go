package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassificator recognises driver-specific errors.
type ErrorClassificator interface {
	// UniqueViolation reports whether err is a unique constraint violation.
	// target names what was violated: the constraint name for postgres, the
	// "table.column" list for sqlite.
	UniqueViolation(err error) (target string, ok bool)
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}

	return "", false
}

// SQLiteErrorClassifier implements [ErrorClassificator] for sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) UniqueViolation(err error) (string, bool) {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return "", false
	}

	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique &&
		sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return "", false
	}

	// "UNIQUE constraint failed: users.username"
	_, target, _ := strings.Cut(sqliteErr.Error(), "failed: ")
	return target, true
}

// userUniqueViolation maps a violated users constraint to its sentinel.
func userUniqueViolation(target string) error {
	switch {
	case strings.Contains(target, "username"):
		return ErrUsernameAlreadyExists
	case strings.Contains(target, "phone_number"):
		return ErrPhoneAlreadyExists
	case strings.Contains(target, "email"):
		return ErrEmailAlreadyExists
	default:
		return nil
	}
}
