package parseduration

import (
	"fmt"
	"strings"

	"github.com/MainSent/parse-duration/internal/unit"
)

// formatUnits lists the scale classes largest first, each with the spelling
// Format emits.
var formatUnits = []struct {
	spelling   string
	multiplier int64
}{
	{"d", unit.Day},
	{"h", unit.Hour},
	{"m", unit.Minute},
	{"s", unit.Second},
	{"ms", unit.Millisecond},
}

// Format renders a millisecond count in compact token notation, largest unit
// first: Format(5400000) returns "1h 30m". Zero renders as "0ms" and negative
// values carry a single leading minus sign.
//
// For non-negative counts, Parse(Format(ms)) == ms. Negative multi-part
// renderings are not a Parse inverse, since Parse applies signs per token.
func Format(ms int64) string {
	if ms == 0 {
		return "0ms"
	}
	if ms < 0 {
		return "-" + Format(-ms)
	}

	var parts []string
	for _, u := range formatUnits {
		if n := ms / u.multiplier; n > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", n, u.spelling))
			ms -= n * u.multiplier
		}
	}
	return strings.Join(parts, " ")
}
