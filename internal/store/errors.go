package store

import (
	"fmt"

	"github.com/MKhiriev/go-lms-offline/internal/app"
)

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values
// or against the wrapped [app] kind.
var (
	// ErrUserNotFound is returned when no stored account matches the given
	// login and password.
	ErrUserNotFound = fmt.Errorf("%w: user was not found", app.ErrNotFound)

	// ErrLearningModuleNotFound is returned when a module to update is not
	// stored on the device.
	ErrLearningModuleNotFound = fmt.Errorf("%w: learning module was not found", app.ErrNotFound)

	// ErrMissingOwner is returned when an entity is written without the
	// identifier of the row that owns it (user for a course, module for a
	// chapter, chapter for a page).
	ErrMissingOwner = fmt.Errorf("%w: owner id is not set", app.ErrStorage)
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied. All of them are [app.ErrStorage].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", app.ErrStorage)

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", app.ErrStorage)

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = fmt.Errorf("%w: failed to begin transaction", app.ErrStorage)

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = fmt.Errorf("%w: failed to commit transaction", app.ErrStorage)

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", app.ErrStorage)
)
