package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentifierAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same identifier is already stored.
	ErrIdentifierAlreadyExists = errors.New("identifier already exists")

	// ErrUserNotFound is returned when no user record matches the identifier.
	ErrUserNotFound = errors.New("no user was found")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme
	// does not select a known backend.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails for a reason other than a unique violation.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a user row fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
