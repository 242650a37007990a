package fluidcss

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber prints v in its shortest decimal form without an exponent.
// Negative zero prints as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatRounded prints v rounded to two decimal places with trailing zeros
// removed. Exact ties round away from zero, so 0.125 prints as "0.13".
func FormatRounded(v float64) string {
	// A float is an exact tie at two decimals only when its fraction is an odd
	// multiple of 1/8.
	if t := v * 8; !math.IsInf(t, 0) && t == math.Trunc(t) && math.Mod(t, 2) != 0 {
		v += math.Copysign(0.001, v)
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
