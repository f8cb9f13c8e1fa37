package scan

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MainSent/parse-duration/internal/unit"
)

// ErrIncomplete reports an input with no token at all, or with non-whitespace
// content left over once every matched token span is removed.
var ErrIncomplete = errors.New("input not fully covered by tokens")

// UnknownUnitError reports the leftmost token whose unit spelling, after
// lowercasing, is not in the unit table.
type UnknownUnitError struct {
	Unit string // unit text exactly as it was scanned
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", e.Unit)
}

// InvalidNumberError reports a token whose magnitude did not parse to a finite
// value. The token grammar guarantees a finite decimal for all but extreme
// inputs, so this fires only for literals beyond float64 range.
type InvalidNumberError struct {
	Literal string // numeric text exactly as it was scanned
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q", e.Literal)
}

// Token is one <number><unit> occurrence located in the input.
type Token struct {
	Value   float64 // signed magnitude, as parsed
	Literal string  // numeric text exactly as it appeared
	Unit    string  // unit text exactly as it appeared
	Start   int     // byte offset of the first matched byte
	End     int     // byte offset one past the last matched byte
}

// Scanner yields successive <number><unit> tokens from a duration string. It
// behaves like a global leftmost-match search: when no token starts at the
// current position, the scanner advances one byte and tries again, so junk
// between tokens is skipped rather than fatal. Callers decide what uncovered
// bytes mean.
type Scanner struct {
	input string
	pos   int
}

// New returns a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{input: input}
}

// Next returns the next token and true, or a zero token and false once the
// input is exhausted.
func (s *Scanner) Next() (Token, bool) {
	for s.pos < len(s.input) {
		if tok, ok := match(s.input, s.pos); ok {
			s.pos = tok.End
			return tok, true
		}
		s.pos++
	}
	return Token{}, false
}

// Reset rewinds the scanner to the start of its input.
func (s *Scanner) Reset() {
	s.pos = 0
}

// match attempts a token starting exactly at position start. The shape is an
// optional sign, one or more digits, an optional "." with one or more digits,
// optional whitespace, then one or more unit letters.
func match(input string, start int) (Token, bool) {
	i := start

	if i < len(input) && (input[i] == '+' || input[i] == '-') {
		i++
	}

	digitStart := i
	for i < len(input) && isDigit(input[i]) {
		i++
	}
	if i == digitStart {
		return Token{}, false
	}

	// The fraction is consumed only when a digit follows the dot; "1.h" scans
	// as no token rather than as "1" with a dangling dot.
	if i+1 < len(input) && input[i] == '.' && isDigit(input[i+1]) {
		i++
		for i < len(input) && isDigit(input[i]) {
			i++
		}
	}
	literalEnd := i

	for i < len(input) && isSpace(input[i]) {
		i++
	}

	unitStart := i
	for i < len(input) && isLetter(input[i]) {
		i++
	}
	if i == unitStart {
		return Token{}, false
	}

	literal := input[start:literalEnd]
	// A range failure yields ±Inf here; Sum turns that into an invalid-number
	// failure rather than silently saturating.
	value, _ := strconv.ParseFloat(literal, 64)

	return Token{
		Value:   value,
		Literal: literal,
		Unit:    input[unitStart:i],
		Start:   start,
		End:     i,
	}, true
}

// Sum scans trimmed input as a token list and returns the unrounded
// millisecond total. Unit validation happens per token during accumulation,
// so the leftmost unknown unit is the one reported even when junk precedes
// it. After the last token, every byte outside a matched span must be
// whitespace or the whole input is rejected with ErrIncomplete; an input with
// no token at all is rejected the same way.
func Sum(trimmed string) (float64, error) {
	var (
		total   float64
		count   int
		prevEnd int
		covered = true
	)

	sc := New(trimmed)
	for {
		tok, ok := sc.Next()
		if !ok {
			break
		}
		count++

		multiplier, known := unit.Lookup(tok.Unit)
		if !known {
			return 0, &UnknownUnitError{Unit: tok.Unit}
		}
		if math.IsInf(tok.Value, 0) || math.IsNaN(tok.Value) {
			return 0, &InvalidNumberError{Literal: tok.Literal}
		}
		total += tok.Value * float64(multiplier)

		if strings.TrimSpace(trimmed[prevEnd:tok.Start]) != "" {
			covered = false
		}
		prevEnd = tok.End
	}

	if count == 0 {
		return 0, ErrIncomplete
	}
	if !covered || strings.TrimSpace(trimmed[prevEnd:]) != "" {
		return 0, ErrIncomplete
	}
	return total, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
