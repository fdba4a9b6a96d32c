package scaledec

import "github.com/zeebo/errs"

// Error classes returned by the package. Callers classify failures with
// the Has method, for example ErrDivisionByZero.Has(err).
var (
	// ErrParse reports a malformed decimal string or a NaN/infinite float.
	ErrParse = errs.Class("scaledec: parse")
	// ErrConfig reports an invalid Context configuration.
	ErrConfig = errs.Class("scaledec: config")
	// ErrConfigMismatch reports an operation between values bound to
	// different Contexts.
	ErrConfigMismatch = errs.Class("scaledec: context mismatch")
	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errs.Class("scaledec: division by zero")
	// ErrInvalidArgument reports an out-of-range argument, such as a
	// rounding precision outside [0, places].
	ErrInvalidArgument = errs.Class("scaledec: invalid argument")
	// ErrNegativeSquareRoot reports Sqrt of a negative value.
	ErrNegativeSquareRoot = errs.Class("scaledec: negative square root")
	// ErrInexactShift reports a negative ShiftedBy that would lose digits.
	ErrInexactShift = errs.Class("scaledec: inexact shift")
)
