package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrConversationNotFound is returned when a conversation does not exist
	// or belongs to another user.
	ErrConversationNotFound = errors.New("conversation was not found")

	// ErrEmptyConversationPatch is returned when an update carries no field.
	ErrEmptyConversationPatch = errors.New("conversation patch is empty")

	// ErrLocalSessionNotFound is returned by the client store when no
	// session was saved.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrJournalNotFound is returned by the client store when no capture is
	// pending close-out.
	ErrJournalNotFound = errors.New("capture journal not found")
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
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingJSON is returned when a JSON column cannot be encoded or
	// decoded.
	ErrEncodingJSON = errors.New("failed to encode json column")
)
