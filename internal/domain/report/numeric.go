package report

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumericValue coerces a report cell into a number: everything except
// digits, dot, comma and minus is stripped, then the first comma is read as
// a decimal point. Blank or unparsable input yields 0; it never fails.
//
// The comma handling differs from payslip.ParseAmount on purpose. The two
// coercions have always disagreed on thousands-separated input and report
// totals depend on this one staying as it is.
func ParseNumericValue(raw string) float64 {
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	s := strings.Replace(b.String(), ",", ".", 1)
	v, ok := parseLeadingFloat(s)
	if !ok {
		return 0
	}
	return v
}

// FormatNumberForDisplay prints integers without a decimal part and other
// values with at most two decimals, trailing zeros trimmed: 100.00 -> "100",
// 100.50 -> "100.5".
func FormatNumberForDisplay(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func parseLeadingFloat(s string) (float64, bool) {
	i, n := 0, len(s)
	if i < n && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := false
	for i < n && s[i] >= '0' && s[i] <= '9' {
		i++
		digits = true
	}
	if i < n && s[i] == '.' {
		i++
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
