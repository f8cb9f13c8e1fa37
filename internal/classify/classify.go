package classify

import (
	"strings"

	"github.com/MainSent/parse-duration/internal/numeric"
)

// Kind tags the notation a trimmed duration string is parsed under.
type Kind int

const (
	// Empty is a string that trimmed down to nothing; it always parses to 0.
	Empty Kind = iota

	// Clock is colon-delimited notation, "H:M" or "H:M:S[.frac]".
	Clock

	// Numeric is a bare millisecond count matching the strict decimal pattern.
	Numeric

	// Tokens is a sequence of <number><unit> tokens.
	Tokens
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Clock:
		return "clock"
	case Numeric:
		return "numeric"
	case Tokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// Of classifies an already-trimmed input. The checks run in priority order so
// exactly one kind ever applies: a colon anywhere forces Clock even when
// token-like text follows, and only a full-string decimal literal is Numeric.
func Of(trimmed string) Kind {
	switch {
	case trimmed == "":
		return Empty
	case strings.ContainsRune(trimmed, ':'):
		return Clock
	case numeric.IsDecimalLiteral(trimmed):
		return Numeric
	default:
		return Tokens
	}
}
