package store

import (
	"database/sql"
	"strings"

	"github.com/MKhiriev/thingsfree/models"
	"github.com/Masterminds/squirrel"
)

const (
	usersTable                = "users"
	verificationSessionsTable = "verification_sessions"
	socialIdentitiesTable     = "social_identities"
	socialProvidersTable      = "social_providers"
	followingsTable           = "followings"
	tokenBlacklistTable       = "token_blacklist"
)

var userColumns = []string{
	"id",
	"username",
	"first_name",
	"last_name",
	"email",
	"phone_number",
	"password_hash",
	"avatar",
	"is_active",
	"is_staff",
	"date_joined",
}

// prefixed qualifies columns with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var email, phone sql.NullString

	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&email,
		&phone,
		&user.PasswordHash,
		&user.Avatar,
		&user.IsActive,
		&user.IsStaff,
		&user.DateJoined,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Email = email.String
	user.PhoneNumber = phone.String
	return user, nil
}

func (db *DB) insertUserQuery(user models.User) squirrel.InsertBuilder {
	return db.sq.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Username,
			user.FirstName,
			user.LastName,
			nullString(strings.TrimSpace(user.Email)),
			nullString(user.PhoneNumber),
			user.PasswordHash,
			user.Avatar,
			user.IsActive,
			user.IsStaff,
			user.DateJoined,
		).
		Suffix("RETURNING " + joinColumns(userColumns))
}

func (db *DB) selectUserQuery() squirrel.SelectBuilder {
	return db.sq.Select(userColumns...).From(usersTable)
}
