// Package matrix: sentinel error set.
// All constructors and accessors MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (non-positive dimensions, ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaN signals a NaN value where costs or sentinels are required.
	// ±Inf is NOT an error here: both infinities are reserved sentinels.
	ErrNaN = errors.New("matrix: NaN encountered")
)
