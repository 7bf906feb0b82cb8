package hwbits

import (
	"errors"
	"fmt"
)

var (
	// ErrWidthOverflow is returned when a vector's declared width exceeds
	// MaxWidth and therefore cannot be represented on the wire.
	ErrWidthOverflow = errors.New("hwbits: width exceeds MaxWidth")

	// ErrMagnitudeOverflow is returned when a vector's magnitude needs more
	// bytes than the wire format's 16-bit length field can describe.
	ErrMagnitudeOverflow = errors.New("hwbits: magnitude too large for wire format")
)

// ErrTruncatedStream indicates that a binary stream ended before a complete
// vector could be decoded.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTruncatedStream struct {
	Field string
	cause error
}

func (e *ErrTruncatedStream) Error() string {
	return fmt.Sprintf("hwbits: truncated stream reading %s", e.Field)
}

func (e *ErrTruncatedStream) Unwrap() error { return e.cause }
