// Package parseduration converts human-authored duration strings into an
// exact signed count of milliseconds. Three mutually exclusive notations are
// recognized: token lists ("1h 30m"), colon-delimited clock time
// ("01:30:15.250"), and bare millisecond counts ("1500").
//
// The package is pure computation: no I/O, no logging, no shared mutable
// state. Every function is safe for arbitrary concurrent use.
package parseduration

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/MainSent/parse-duration/internal/classify"
	"github.com/MainSent/parse-duration/internal/clock"
	"github.com/MainSent/parse-duration/internal/numeric"
	"github.com/MainSent/parse-duration/internal/scan"
	"github.com/MainSent/parse-duration/internal/unit"
)

// Parse converts a duration string into milliseconds.
//
// Input that trims down to nothing parses to 0 and never errors. A ":"
// anywhere selects clock notation ("H:M" or "H:M:S[.frac]") and no other
// interpretation is attempted. A strict decimal literal ("1500", "-2.5") is
// taken as a bare millisecond count. Anything else is scanned as
// <number><unit> tokens, each signed independently, summed over the unit
// table; unit matching in tokens is case-insensitive.
//
// All intermediate arithmetic is float64 and the total is rounded exactly
// once, half toward positive infinity (0.5ms rounds to 1, -0.5ms to 0).
//
// Failures are one of InvalidClockError, UnknownUnitError, UnparseableError,
// or InvalidNumberError, each embedding the original untrimmed input.
func Parse(input string) (int64, error) {
	trimmed := strings.TrimSpace(input)

	switch classify.Of(trimmed) {
	case classify.Empty:
		return 0, nil

	case classify.Clock:
		total, err := clock.Parse(trimmed)
		if err != nil {
			return 0, &InvalidClockError{Input: input}
		}
		return numeric.RoundHalfUp(total), nil

	case classify.Numeric:
		value, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
			return 0, &InvalidNumberError{Literal: trimmed, Input: input}
		}
		return numeric.RoundHalfUp(value), nil

	default:
		total, err := scan.Sum(trimmed)
		if err != nil {
			return 0, tokenError(err, input)
		}
		return numeric.RoundHalfUp(total), nil
	}
}

// tokenError maps a scanner failure onto the exported error carrying the
// original untrimmed input.
func tokenError(err error, input string) error {
	var unknown *scan.UnknownUnitError
	if errors.As(err, &unknown) {
		return &UnknownUnitError{Unit: unknown.Unit, Input: input}
	}

	var invalid *scan.InvalidNumberError
	if errors.As(err, &invalid) {
		return &InvalidNumberError{Literal: invalid.Literal, Input: input}
	}

	return &UnparseableError{Input: input}
}

// IsUnit reports whether value exactly equals one of the canonical lowercase
// unit spellings ("ms", "sec", "minutes", ...). The match is deliberately
// stricter than token scanning: no case folding and no trimming.
func IsUnit(value string) bool {
	return unit.Is(value)
}
