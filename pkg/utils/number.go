package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatThousands renders f with the given decimals and comma digit grouping,
// e.g. 1234567.891 -> "1,234,567.89".
func FormatThousands(f float64, decimals int) string {
	s := strconv.FormatFloat(f, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return sign + b.String() + fracPart
}

// ToFloat coerces JSON numbers, integers and numeric strings. Anything else,
// including NaN and infinities, becomes zero.
func ToFloat(v any) float64 {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		if err != nil {
			return 0
		}
		f = parsed
	case []byte:
		return ToFloat(string(n))
	case interface{ Float64() (float64, error) }:
		parsed, err := n.Float64()
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToCount coerces v like ToFloat and rounds to a non-negative integer.
// Values beyond the int64 range saturate at math.MaxInt64.
func ToCount(v any) int64 {
	f := math.Round(ToFloat(v))
	switch {
	case f < 0:
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(f)
}

// AddCounts sums non-negative counts, saturating at math.MaxInt64.
func AddCounts(counts ...int64) int64 {
	var total int64
	for _, c := range counts {
		if c > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += c
	}
	return total
}
