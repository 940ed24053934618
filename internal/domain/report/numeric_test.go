package report

import "testing"

func TestParseNumericValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"0", 0},
		{"500", 500},
		{"  750.25 ", 750.25},
		{"Rs 500", 500},
		{"1,5", 1.5},
		{"-120", -120},
	}
	for _, c := range cases {
		if got := ParseNumericValue(c.in); got != c.want {
			t.Fatalf("ParseNumericValue(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatNumberForDisplay(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{100, "100"},
		{100.5, "100.5"},
		{100.25, "100.25"},
		{-42, "-42"},
	}
	for _, c := range cases {
		if got := FormatNumberForDisplay(c.in); got != c.want {
			t.Fatalf("FormatNumberForDisplay(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
