package payslip

import (
	"math"
	"strings"
)

var wordOnes = []string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}

var wordTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}

// NumberToWords renders the integer part of an amount in Indian-system
// words: hundreds and tens below a thousand, then Thousand, Lakh and Crore
// groups. 45000 reads "Forty Five Thousand", 100000 reads "One Lakh".
func NumberToWords(num float64) string {
	if num == 0 {
		return "Zero"
	}
	n := int64(math.Floor(math.Abs(num)))
	if n == 0 {
		return ""
	}

	crore := n / 10000000
	n %= 10000000
	lakh := n / 100000
	n %= 100000
	thousand := n / 1000
	n %= 1000

	var parts []string
	if crore > 0 {
		// Crore counts above 999 re-enter the same scheme.
		if crore >= 1000 {
			parts = append(parts, NumberToWords(float64(crore)), "Crore")
		} else {
			parts = append(parts, belowThousandWords(crore), "Crore")
		}
	}
	if lakh > 0 {
		parts = append(parts, belowThousandWords(lakh), "Lakh")
	}
	if thousand > 0 {
		parts = append(parts, belowThousandWords(thousand), "Thousand")
	}
	if n > 0 {
		parts = append(parts, belowThousandWords(n))
	}
	return strings.Join(parts, " ")
}

func belowThousandWords(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, wordOnes[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, wordTens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, wordOnes[n])
	}
	return strings.Join(parts, " ")
}
