package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNameAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same name already exists in the store.
	ErrNameAlreadyExists = errors.New("name already exists")

	// ErrUserNotFound is returned when a lookup by name or id matches no user.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when a query, update or delete targets a
	// record that does not exist, or that belongs to another owner.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrOwnerRequired is returned by an owner-scoped repository called
	// without an owner id. No query is issued in that case.
	ErrOwnerRequired = errors.New("owner id is required")

	// ErrOwnerNotFound is returned when a record references an owner that
	// does not exist (foreign key violation).
	ErrOwnerNotFound = errors.New("record owner does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
