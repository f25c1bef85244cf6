package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the underlying database cannot be
	// opened, is busy or locked by another writer, or has already been closed.
	// Background operations treat it as a warning and skip the pass.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateKey is returned when an insert violates a unique constraint,
	// for example a color name or a post code that already exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenceNotFound is returned when an insert or update points at a
	// post, technician or color that does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrInspectionNotFound is returned when a query or update targets an
	// inspection that does not exist.
	ErrInspectionNotFound = errors.New("inspection was not found")

	// ErrPostNotFound is returned when a post lookup produces no row.
	ErrPostNotFound = errors.New("post was not found")

	// ErrCacheEntryNotFound is returned by cache lookups that have no stored
	// response for the requested method and URL.
	ErrCacheEntryNotFound = errors.New("cache entry was not found")

	// ErrPhotoNotFound is returned when a photo blob with the requested id
	// does not exist.
	ErrPhotoNotFound = errors.New("photo was not found")

	// ErrInvalidSyncState is returned when a write would leave a record in a
	// synchronization state the lifecycle does not allow, such as synced
	// without a remote identifier.
	ErrInvalidSyncState = errors.New("invalid sync state")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
