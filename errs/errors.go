// Package errs defines the sentinel errors returned by trendcast packages.
//
// Callers match them with errors.Is; the returning site wraps them with
// fmt.Errorf("%w: ...") to attach context without breaking the sentinel.
package errs

import "errors"

// Fitting errors.
var (
	// ErrLengthMismatch indicates paired slices of different lengths were
	// passed to a function that requires them to be parallel.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrEmptySample indicates a fit was requested over zero usable
	// observations. Non-finite values are excluded before fitting, so a
	// slice of NaNs is an empty sample too.
	ErrEmptySample = errors.New("empty sample")
)

// Forecast errors.
var (
	// ErrInvalidHorizon indicates a negative forecast horizon.
	ErrInvalidHorizon = errors.New("invalid horizon")
)

// Ingestion errors.
var (
	// ErrMissingColumns indicates the input table has no recognizable
	// date and close/price header cells.
	ErrMissingColumns = errors.New("missing date/close columns")

	// ErrNoValidRows indicates every data row was dropped as unparseable
	// or non-finite.
	ErrNoValidRows = errors.New("no valid rows")

	// ErrEmptyInput indicates the reader yielded no content at all.
	ErrEmptyInput = errors.New("empty input")
)

// Compression errors.
var (
	// ErrUnknownFormat indicates a compression format that is not
	// registered with the codec registry.
	ErrUnknownFormat = errors.New("unknown compression format")
)
