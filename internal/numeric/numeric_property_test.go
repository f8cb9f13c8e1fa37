package numeric

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRoundHalfUpProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("result is within half a unit of the argument", prop.ForAll(
		func(v float64) bool {
			// One ulp of slack: the v+0.5 addition inside RoundHalfUp can
			// round across a tie boundary for adversarial low bits.
			return math.Abs(float64(RoundHalfUp(v))-v) <= 0.5+1e-6
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("integers are fixed points", prop.ForAll(
		func(n int64) bool {
			return RoundHalfUp(float64(n)) == n
		},
		gen.Int64Range(-1e12, 1e12),
	))

	properties.Property("ties round toward positive infinity", prop.ForAll(
		func(n int64) bool {
			// n+0.5 is exactly representable in this range, so the tie is a
			// true tie and must resolve to n+1 for either sign of n.
			return RoundHalfUp(float64(n)+0.5) == n+1
		},
		gen.Int64Range(-1e6, 1e6),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
