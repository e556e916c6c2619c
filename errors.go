package succinct

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a position, rank or child index falls
	// outside the valid domain of the structure it is applied to.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument is returned when a constructor receives input it
	// cannot build a consistent structure from.
	ErrInvalidArgument = errors.New("invalid argument")
)

// RangeError describes a rejected position or rank.
//
// It unwraps to ErrOutOfRange, so callers can use errors.Is.
type RangeError struct {
	// Op is the operation that rejected the value (e.g. "rank1").
	Op string
	// Value is the offending argument.
	Value int
	// Min and Max bound the accepted values, both inclusive.
	Min, Max int
}

func (e *RangeError) Error() string {
	if e.Max < e.Min {
		return fmt.Sprintf("%s: %d out of range (empty domain)", e.Op, e.Value)
	}
	return fmt.Sprintf("%s: %d out of range [%d, %d]", e.Op, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// CheckRange returns a *RangeError for op when v is not within [lo, hi].
func CheckRange(op string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &RangeError{Op: op, Value: v, Min: lo, Max: hi}
	}
	return nil
}

// InvalidArgument wraps ErrInvalidArgument with a formatted reason.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
