package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice reads a spreadsheet price cell written with a dot for
// thousands and a comma for decimals ("R$ 1.497,00" -> 1497).
//
// After the separators are swapped the cell goes through three stages, the
// first success wins:
//  1. the whole cell as a decimal number;
//  2. the cell reduced to its digits and decimal point, as a decimal;
//  3. every ASCII digit concatenated, as an integer ("1,2,3" -> 123).
//
// Only a cell that is a plain number as a whole can come out negative; a
// dash anywhere else ("a partir de - R$ 30") is text, not a sign.
// Decimals are rounded half away from zero. The bool is false for empty
// cells, cells without digits and values that do not fit in an int64.
func ParsePrice(raw string) (int64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	if v, ok := parseDecimal(s); ok {
		return v, true
	}
	if v, ok := parseDecimal(numericChars(s)); ok {
		return v, true
	}
	return parseDigits(s)
}

// Anything scaled past 10^18 cannot be an int64; rejecting it early also
// keeps "1e999999999" from materializing a huge integer.
const maxExponent = 18

func parseDecimal(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.Exponent() > maxExponent {
		return 0, false
	}
	rounded := d.Round(0).BigInt()
	if !rounded.IsInt64() {
		return 0, false
	}
	return rounded.Int64(), true
}

func numericChars(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
}

func parseDigits(s string) (int64, bool) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, false
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
