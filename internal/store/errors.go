// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRegistrationCodeNotFound is returned when a registration code is
	// absent from the ledger.
	ErrRegistrationCodeNotFound = errors.New("registration code not found")

	// ErrRegistrationCodeUsed is returned when a redemption attempt targets
	// a code that has already been consumed. Under concurrent redemption of
	// the same code exactly one caller succeeds; every other caller gets
	// this error.
	ErrRegistrationCodeUsed = errors.New("registration code already used")

	// ErrQuoteItemNotFound is returned when a services/inputs row does not
	// exist or is not owned by the requesting user.
	ErrQuoteItemNotFound = errors.New("quote item was not found")

	// ErrSpreadsheetNotFound is returned when a spreadsheet row does not
	// exist or is not owned by the requesting user.
	ErrSpreadsheetNotFound = errors.New("spreadsheet was not found")

	// ErrFileNotFound is returned when a file key does not resolve to a
	// stored file inside the caller's uploads directory.
	ErrFileNotFound = errors.New("file was not found")

	// ErrInvalidFileKey is returned when the supplied file key is empty or
	// attempts to escape the caller's uploads directory.
	ErrInvalidFileKey = errors.New("invalid file key")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
