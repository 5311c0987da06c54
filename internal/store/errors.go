package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an operator with the same login
	// already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoOperatorWasFound is returned when no operator matches a login or id.
	ErrNoOperatorWasFound = errors.New("no operator was found")

	// ErrClientNotFound is returned when no client has the given id.
	ErrClientNotFound = errors.New("client was not found")

	// ErrClientAlreadyExists is returned when a client with the same device
	// id is already stored.
	ErrClientAlreadyExists = errors.New("client already exists")

	// ErrGroupNotFound is returned when no group has the given id or name.
	ErrGroupNotFound = errors.New("group was not found")

	// ErrGroupAlreadyExists is returned when a group with the same name is
	// already stored.
	ErrGroupAlreadyExists = errors.New("group already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
