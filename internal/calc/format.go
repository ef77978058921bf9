// Package calc holds the electronics calculators. Every calculator is a pure
// function from raw form values to display strings; invalid input never
// errors, it produces a sentinel display instead.
package calc

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Sentinel displays.
const (
	None      = "-"
	DivErr    = "Err"
	LEDInvert = "Vs < Vf!"
)

var numPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseFloat parses the longest numeric prefix of s the way a browser form
// field does. Anything without a numeric prefix (including "") is NaN.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' })
	m := numPrefix.FindStringSubmatch(s)
	if m == nil {
		return math.NaN()
	}
	if m[1] == "Infinity" {
		if strings.HasPrefix(m[0], "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// The prefix is well-formed, so only range errors remain and those
	// already carry ±Inf or 0.
	v, _ := strconv.ParseFloat(m[0], 64)
	return v
}

// Fixed renders v with exactly prec decimals the way a browser's toFixed
// does: the exact binary value is rounded, and a tie goes away from zero.
// Magnitudes of 1e21 and up fall back to exponent form.
func Fixed(v float64, prec int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	digits := new(big.Int).Quo(r.Num(), r.Denom()).String()
	if prec == 0 {
		return sign + digits
	}
	if len(digits) <= prec {
		digits = strings.Repeat("0", prec-len(digits)+1) + digits
	}
	cut := len(digits) - prec
	return sign + digits[:cut] + "." + digits[cut:]
}

func withUnit(v float64, prec int, unit string) string {
	return Fixed(v, prec) + " " + unit
}

func positive(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || v <= 0 {
			return false
		}
	}
	return true
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
