package payslip

import "testing"

func TestParseAmountTotal(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"0", 0},
		{"500", 500},
		{"  4500.75 ", 4500.75},
		{"₹1,234.50", 1234.50},
		{"-250", -250},
		{"12-34", 12},
	}
	for _, c := range cases {
		if got := ParseAmount(c.in); got != c.want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount(45000); got != "45000.00" {
		t.Fatalf("FormatAmount(45000) = %q", got)
	}
	if got := FormatAmount(100.5); got != "100.50" {
		t.Fatalf("FormatAmount(100.5) = %q", got)
	}
}
