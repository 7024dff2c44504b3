package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProductNotFound is returned when a lookup, update or delete targets a
	// product id that does not exist.
	ErrProductNotFound = errors.New("product was not found")

	// ErrProductNotSaved is returned when an INSERT completes without error
	// but reports no affected rows.
	ErrProductNotSaved = errors.New("product was not saved")

	// ErrInvalidProduct is returned when the database rejects a product
	// because it violates a table constraint (negative quantity or price,
	// missing name).
	ErrInvalidProduct = errors.New("product violates table constraints")
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

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan product row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan product rows")
)
