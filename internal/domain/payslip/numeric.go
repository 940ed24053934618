package payslip

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount coerces an arbitrary payslip cell into a number. Currency
// symbols, comma separators and stray text are stripped; blank or
// unparsable input yields 0. It never fails.
//
// This is deliberately not the same function as report.ParseNumericValue:
// that one treats the first comma as a decimal point, this one discards
// commas as thousands separators. Uploaded paybills rely on both behaviors
// staying as they are.
func ParseAmount(raw string) float64 {
	if strings.TrimSpace(raw) == "" {
		return 0
	}
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, ok := parseLeadingFloat(b.String())
	if !ok {
		return 0
	}
	return v
}

// FormatAmount renders a payslip amount with exactly two decimals.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// parseLeadingFloat parses the longest numeric prefix of s: an optional
// sign, digits, and at most one decimal point. Trailing junk is ignored,
// matching how spreadsheet cells like "5000 Rs" were historically read.
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
