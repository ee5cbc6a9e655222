package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProjectNotFound is returned when no project matches the given id.
	ErrProjectNotFound = errors.New("project was not found")

	// ErrReviewNotFound is returned when no review matches the given id.
	ErrReviewNotFound = errors.New("review was not found")

	// ErrSettingsNotFound is returned when the site settings row has never
	// been written.
	ErrSettingsNotFound = errors.New("site settings were not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the settings version supplied by the caller is not the stored one.
	ErrVersionConflict = errors.New("site settings version conflict occurred")

	// ErrMediaNotFound is returned when a media key has no stored blob.
	ErrMediaNotFound = errors.New("media was not found")

	// ErrInvalidMediaKey is returned for keys that could escape the storage
	// root or contain path separators.
	ErrInvalidMediaKey = errors.New("invalid media key")

	// ErrSessionNotFound is returned by the client session store when no
	// session was saved.
	ErrSessionNotFound = errors.New("local session not found")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrConstraintViolation is returned when the database rejects a row
	// because of a CHECK, NOT NULL or UNIQUE constraint.
	ErrConstraintViolation = errors.New("row violates a table constraint")

	// ErrEncodingColumn is returned when a JSONB column cannot be encoded or
	// decoded.
	ErrEncodingColumn = errors.New("failed to encode column")
)
