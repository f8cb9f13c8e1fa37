package unit

import "strings"

// Millisecond multipliers for the five scale classes.
const (
	Millisecond int64 = 1
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
)

// table maps every canonical lowercase spelling to its millisecond multiplier.
// It is populated once at package load and never mutated afterwards, so
// concurrent reads need no synchronization.
var table = map[string]int64{
	"ms":           Millisecond,
	"msec":         Millisecond,
	"msecs":        Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,

	"s":       Second,
	"sec":     Second,
	"secs":    Second,
	"second":  Second,
	"seconds": Second,

	"m":       Minute,
	"min":     Minute,
	"mins":    Minute,
	"minute":  Minute,
	"minutes": Minute,

	"h":     Hour,
	"hr":    Hour,
	"hrs":   Hour,
	"hour":  Hour,
	"hours": Hour,

	"d":    Day,
	"day":  Day,
	"days": Day,
}

// Lookup returns the millisecond multiplier for a unit spelling as it appears
// in a scanned token. Scanning is case-insensitive, so the spelling is
// lowercased before the table is consulted.
func Lookup(spelling string) (int64, bool) {
	multiplier, ok := table[strings.ToLower(spelling)]
	return multiplier, ok
}

// Is reports whether value exactly equals one of the canonical lowercase
// spellings. Unlike Lookup it performs no case folding and no trimming.
func Is(value string) bool {
	_, ok := table[value]
	return ok
}

// Canonical returns all canonical spellings in unspecified order.
func Canonical() []string {
	spellings := make([]string, 0, len(table))
	for spelling := range table {
		spellings = append(spellings, spelling)
	}
	return spellings
}
