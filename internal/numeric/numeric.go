package numeric

import "math"

// RoundHalfUp rounds v to the nearest integer with ties going toward positive
// infinity: 2.5 rounds to 3 and -2.5 rounds to -2. The int64 result has no
// signed zero, so magnitudes in (-0.5, 0] collapse to plain 0.
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// IsDecimalLiteral reports whether s is, in its entirety, an optional sign
// followed by one or more digits and an optional "." with one or more digits.
// Textual non-finite values such as "Infinity" or "NaN" do not match, and
// neither do exponent forms or literals like "1." and ".5".
func IsDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}

	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	return i == len(s)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
