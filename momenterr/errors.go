// Package momenterr defines the sentinel error kinds of spec §7.
//
// Following the teacher's convention (matrix/errors.go): every sentinel
// is package-prefixed, algorithms return these via errors.Is-compatible
// wrapping rather than panicking on caller-supplied data, and stack
// context is attached at call sites with github.com/pkg/errors so the
// sentinel identity survives wrapping.
package momenterr

import "github.com/pkg/errors"

var (
	// ErrBadInput indicates caller-supplied data violates a precondition:
	// a negative outcome count, an empty observable list, an out-of-range
	// source index, a sequence longer than the context's hasher can
	// represent, and similar.
	ErrBadInput = errors.New("moment: bad input")

	// ErrUnregisteredOperatorSequence indicates a polynomial referenced a
	// sequence whose symbol has not been interned in the symbol table.
	ErrUnregisteredOperatorSequence = errors.New("moment: unregistered operator sequence")

	// ErrMissingComponent indicates a derived table (e.g. explicit
	// symbols, probability tensor) was queried before being generated.
	ErrMissingComponent = errors.New("moment: missing component")

	// ErrNotFound indicates an index lookup in a matrix registry failed.
	ErrNotFound = errors.New("moment: not found")

	// ErrBadCast indicates the system was instantiated for one scenario
	// and queried with an index belonging to another -- a programmer
	// error, not a data error, but still surfaced rather than panicking
	// so host bindings can report it cleanly.
	ErrBadCast = errors.New("moment: bad cast")
)

// BadInput wraps ErrBadInput with a formatted message, preserving
// errors.Is(err, ErrBadInput).
func BadInput(format string, args ...any) error {
	return errors.Wrapf(ErrBadInput, format, args...)
}

// NotFound wraps ErrNotFound with a formatted message.
func NotFound(format string, args ...any) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

// MissingComponent wraps ErrMissingComponent with a formatted message.
func MissingComponent(format string, args ...any) error {
	return errors.Wrapf(ErrMissingComponent, format, args...)
}

// Unregistered wraps ErrUnregisteredOperatorSequence with a formatted message.
func Unregistered(format string, args ...any) error {
	return errors.Wrapf(ErrUnregisteredOperatorSequence, format, args...)
}

// BadCast wraps ErrBadCast with a formatted message.
func BadCast(format string, args ...any) error {
	return errors.Wrapf(ErrBadCast, format, args...)
}
