package parseduration

import "time"

// ParseDuration is a convenience wrapper around Parse that returns the result
// as a time.Duration.
func ParseDuration(input string) (time.Duration, error) {
	ms, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
