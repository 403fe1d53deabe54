package scoring

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatScore renders v with two decimals, rounding toward negative infinity.
// It works on the shortest decimal form of v, so 0.29 prints as "0.29"
// rather than the "0.28" that math.Floor(v*100) would give.
func FormatScore(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	frac += "00"
	kept, rest := frac[:2], frac[2:]

	cents, ok := new(big.Int).SetString(intPart+kept, 10)
	if !ok {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	if neg && strings.Trim(rest, "0") != "" {
		cents.Add(cents, big.NewInt(1))
	}

	digits := cents.String()
	for len(digits) < 3 {
		digits = "0" + digits
	}
	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if neg && cents.Sign() != 0 {
		out = "-" + out
	}
	return out
}

// Truncate returns v floored to two decimals, as FormatScore prints it.
func Truncate(v float64) float64 {
	f, err := strconv.ParseFloat(FormatScore(v), 64)
	if err != nil {
		return v
	}
	return f
}
