package parseduration

import (
	"errors"
	"fmt"
)

// InvalidClockError reports a colon-delimited duration whose segment count,
// segment shape, or segment range is malformed. Colon notation has a single
// uniform diagnostic; no finer-grained cause is exposed.
type InvalidClockError struct {
	Input string // original, untrimmed input
}

func (e *InvalidClockError) Error() string {
	return fmt.Sprintf(`parseduration: invalid ":" duration %q`, e.Input)
}

// UnknownUnitError reports the leftmost token whose unit spelling is not in
// the unit table, even after lowercasing.
type UnknownUnitError struct {
	Unit  string // unit text exactly as it was scanned
	Input string // original, untrimmed input
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("parseduration: unknown unit %q in %q", e.Unit, e.Input)
}

// UnparseableError reports an input that matched no notation: no token at
// all, or non-whitespace content left over after every token span was
// removed.
type UnparseableError struct {
	Input string // original, untrimmed input
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("parseduration: could not fully parse %q", e.Input)
}

// InvalidNumberError reports a numeric literal that did not parse to a finite
// value. The token grammar guarantees a finite decimal for all but literals
// beyond float64 range, so this is primarily a defensive branch.
type InvalidNumberError struct {
	Literal string // numeric text exactly as it was scanned
	Input   string // original, untrimmed input
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("parseduration: invalid number %q in %q", e.Literal, e.Input)
}

// IsInvalidClock checks if an error is an InvalidClockError using errors.As.
func IsInvalidClock(err error) bool {
	var target *InvalidClockError
	return errors.As(err, &target)
}

// IsUnknownUnit checks if an error is an UnknownUnitError using errors.As.
func IsUnknownUnit(err error) bool {
	var target *UnknownUnitError
	return errors.As(err, &target)
}

// IsUnparseable checks if an error is an UnparseableError using errors.As.
func IsUnparseable(err error) bool {
	var target *UnparseableError
	return errors.As(err, &target)
}

// IsInvalidNumber checks if an error is an InvalidNumberError using errors.As.
func IsInvalidNumber(err error) bool {
	var target *InvalidNumberError
	return errors.As(err, &target)
}
