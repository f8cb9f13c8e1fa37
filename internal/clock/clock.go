package clock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MainSent/parse-duration/internal/unit"
)

// Parse interprets a colon-delimited clock duration as an unrounded number of
// milliseconds. Valid shapes are "H:M" and "H:M:S", where the seconds segment
// may carry a fractional part. The hours segment may carry a sign, which is
// applied to the whole value after the unsigned magnitudes are summed; minutes
// must be in [0,59] and seconds in [0,60).
//
// Every malformation is reported as an error; callers are expected to map all
// failures to a single diagnostic, so no finer-grained classification is made.
func Parse(s string) (float64, error) {
	segments := strings.Split(s, ":")
	if len(segments) != 2 && len(segments) != 3 {
		return 0, fmt.Errorf("want 2 or 3 segments, got %d", len(segments))
	}

	sign := 1.0
	hoursText := strings.TrimSpace(segments[0])
	if len(hoursText) > 0 && (hoursText[0] == '+' || hoursText[0] == '-') {
		if hoursText[0] == '-' {
			sign = -1.0
		}
		hoursText = hoursText[1:]
	}
	hours, err := digitsValue(hoursText)
	if err != nil {
		return 0, fmt.Errorf("hours segment: %w", err)
	}

	minutes, err := digitsValue(strings.TrimSpace(segments[1]))
	if err != nil {
		return 0, fmt.Errorf("minutes segment: %w", err)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("minutes segment out of range: %v", minutes)
	}

	var seconds float64
	if len(segments) == 3 {
		seconds, err = secondsValue(strings.TrimSpace(segments[2]))
		if err != nil {
			return 0, fmt.Errorf("seconds segment: %w", err)
		}
		if seconds >= 60 {
			return 0, fmt.Errorf("seconds segment out of range: %v", seconds)
		}
	}

	total := hours*float64(unit.Hour) + minutes*float64(unit.Minute) + seconds*float64(unit.Second)
	return sign * total, nil
}

// digitsValue parses a segment that must consist of one or more digits.
func digitsValue(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, fmt.Errorf("non-digit %q", s[i])
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// secondsValue parses a segment of one or more digits optionally followed by
// "." and one or more digits. A trailing dot or a second dot is malformed.
func secondsValue(s string) (float64, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return digitsValue(s)
	}

	whole, err := digitsValue(s[:dot])
	if err != nil {
		return 0, fmt.Errorf("whole part: %w", err)
	}
	if _, err := digitsValue(s[dot+1:]); err != nil {
		return 0, fmt.Errorf("fractional part: %w", err)
	}

	frac, err := strconv.ParseFloat("0."+s[dot+1:], 64)
	if err != nil {
		return 0, err
	}
	return whole + frac, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
