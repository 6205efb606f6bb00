package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDeviceAlreadyExists is returned when registering a device whose
	// identifier is already present in the database.
	ErrDeviceAlreadyExists = errors.New("device already exists")

	// ErrDeviceNotFound is returned when a query expected to match a device
	// record produces an empty result set.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrMeasurementNotSaved is returned when an INSERT of one or more
	// measurements completes without error but the number of affected rows
	// is zero, indicating that nothing was actually persisted.
	ErrMeasurementNotSaved = errors.New("measurement was not saved")

	// ErrMeasurementNotFound is returned when a query or update targets a
	// measurement (identified by record_id) that does not exist.
	ErrMeasurementNotFound = errors.New("measurement was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning column values during row
	// iteration fails.
	ErrScanningRows = errors.New("failed to scan measurement rows")
)
