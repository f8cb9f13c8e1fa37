package classify

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOf(t *testing.T) {
	tests := []struct {
		trimmed string
		want    Kind
	}{
		{"", Empty},
		{"01:30", Clock},
		{"01:30:15.250", Clock},
		{":30", Clock},
		{"1:30h", Clock}, // colon wins over token-like suffixes
		{"1500", Numeric},
		{"-2.5", Numeric},
		{"+0", Numeric},
		{"Infinity", Tokens}, // fails the strict decimal pattern
		{"NaN", Tokens},
		{"1e3", Tokens},
		{"1h 30m", Tokens},
		{"1h30", Tokens},
		{"abc", Tokens},
	}

	for _, tt := range tests {
		t.Run(tt.trimmed, func(t *testing.T) {
			if got := Of(tt.trimmed); got != tt.want {
				t.Errorf("Of(%q) = %v, want %v", tt.trimmed, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Empty, "empty"},
		{Clock, "clock"},
		{Numeric, "numeric"},
		{Tokens, "tokens"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestOfProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("a colon anywhere forces Clock", prop.ForAll(
		func(prefix, suffix string) bool {
			return Of(prefix+":"+suffix) == Clock
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("bare integers are Numeric", prop.ForAll(
		func(n int64) bool {
			return Of(strconv.FormatInt(n, 10)) == Numeric
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
