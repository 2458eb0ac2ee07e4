package dec96

import "github.com/zeebo/errs"

var (
	// Error is the class of every error returned by this package.
	Error = errs.Class("dec96")

	// ErrOverflow is returned when a positive result, or an operand being
	// aligned to a larger scale, does not fit in 96 bits.
	ErrOverflow = Error.New("overflow")

	// ErrUnderflow is the negative counterpart of ErrOverflow.
	ErrUnderflow = Error.New("underflow")

	RadixError  = errs.Class("unsupported radix")
	LengthError = errs.Class("malformed buffer length")
	SyntaxError = errs.Class("invalid literal")
	ScaleError  = errs.Class("scale out of range")
)

// rangeError picks ErrOverflow or ErrUnderflow from the sign of the value that
// ran out of room.
func rangeError(s Sign) error {
	if s == Negative {
		return ErrUnderflow
	}
	return ErrOverflow
}
