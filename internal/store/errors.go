package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a record with the requested ID does
	// not exist in the local store.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrSettingNotFound is returned when a settings key has never been
	// written (or was deleted) in the requested namespace.
	ErrSettingNotFound = errors.New("setting was not found")

	// ErrDeviceNotFound is returned by the hub repository for an unknown
	// device ID.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrCodeNotFound is returned when no device registered the given
	// pairing code.
	ErrCodeNotFound = errors.New("pairing code was not found")

	// ErrAccountNotFound is returned when a collection is requested for an
	// account that was never created.
	ErrAccountNotFound = errors.New("account was not found")
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
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
