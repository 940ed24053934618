package payslip

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Zero"},
		{7, "Seven"},
		{13, "Thirteen"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{118, "One Hundred Eighteen"},
		{1000, "One Thousand"},
		{45000, "Forty Five Thousand"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, c := range cases {
		if got := NumberToWords(c.in); got != c.want {
			t.Fatalf("NumberToWords(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNumberToWordsDropsFraction(t *testing.T) {
	if got := NumberToWords(45000.99); got != "Forty Five Thousand" {
		t.Fatalf("expected fraction ignored, got %q", got)
	}
}

func TestNumberToWordsFractionOnly(t *testing.T) {
	if got := NumberToWords(0.75); got != "" {
		t.Fatalf("expected empty words for sub-unit amount, got %q", got)
	}
}
