package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrUsernameAlreadyExists is returned when an INSERT violates the
	// unique username constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE violates
	// the unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPhoneAlreadyExists is returned when an INSERT or UPDATE violates
	// the unique phone number constraint.
	ErrPhoneAlreadyExists = errors.New("phone number already exists")

	// ErrSessionNotFound is returned when no verification session exists for
	// the phone number, or it was consumed concurrently.
	ErrSessionNotFound = errors.New("verification session was not found")

	// ErrIdentityNotFound is returned when no social identity is linked to
	// the (provider, uid) pair.
	ErrIdentityNotFound = errors.New("social identity was not found")

	// ErrIdentityAlreadyExists is returned when the (provider, uid) pair is
	// already linked, typically after losing a concurrent sign-in race.
	ErrIdentityAlreadyExists = errors.New("social identity already exists")

	// ErrFollowingAlreadyExists is returned on a duplicate (author, follower)
	// edge.
	ErrFollowingAlreadyExists = errors.New("following already exists")

	// ErrFollowingNotFound is returned when the (author, follower) edge to
	// remove does not exist.
	ErrFollowingNotFound = errors.New("following was not found")

	// ErrTokenBlacklisted is returned when a token id was already claimed by
	// the blacklist.
	ErrTokenBlacklisted = errors.New("token is blacklisted")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrBlacklistUnavailable is returned when the blacklist backend cannot
	// be reached.
	ErrBlacklistUnavailable = errors.New("token blacklist is unavailable")
)
