// Package words renders whole-rupee amounts as Indian-English words using the
// Indian numbering groups: crore (10^7), lakh (10^5), thousand, hundred and
// the remaining two digits.
package words

import "strings"

// MaxAmount is the largest convertible amount: two crore digits
// (99,99,99,999). Anything above renders the Overflow sentinel.
const MaxAmount = 99_99_99_999

// Overflow is returned for amounts beyond MaxAmount.
const Overflow = "Amount Too Large"

var units = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// Convert renders n in words, ending in "Rupees Only".
//
// Zero is the historical odd one out: it renders as the bare word "Zero",
// without the suffix. Negative amounts render as "Minus " plus the words of
// the absolute value.
func Convert(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + Convert(-n)
	}
	if n > MaxAmount {
		return Overflow
	}

	var parts []string
	if crore := n / 1_00_00_000; crore > 0 {
		parts = append(parts, twoDigits(crore), "Crore")
	}
	if lakh := n / 1_00_000 % 100; lakh > 0 {
		parts = append(parts, twoDigits(lakh), "Lakh")
	}
	if thousand := n / 1_000 % 100; thousand > 0 {
		parts = append(parts, twoDigits(thousand), "Thousand")
	}
	if hundred := n / 100 % 10; hundred > 0 {
		parts = append(parts, units[hundred], "Hundred")
	}
	if rest := n % 100; rest > 0 {
		parts = append(parts, twoDigits(rest))
	}
	parts = append(parts, "Rupees Only")
	return strings.Join(parts, " ")
}

// twoDigits renders 1..99.
func twoDigits(n int64) string {
	if n < 20 {
		return units[n]
	}
	s := tens[n/10]
	if n%10 > 0 {
		s += " " + units[n%10]
	}
	return s
}
