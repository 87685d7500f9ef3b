// Package format renders engine results for display.
package format

import (
	"strings"

	"github.com/rustyeddy/tradecalc/internal/num"
	"github.com/shopspring/decimal"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Currency renders amount with two decimals and thousands separators,
// e.g. "$1,234.56" or "-$500.00". Currencies without a symbol get a
// code suffix: "1,234.56 CHF".
func Currency(amount float64, currency string) string {
	code := strings.ToUpper(currency)
	s := group(num.Fixed(num.Money(amount), 2))
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	sign := ""
	if neg {
		sign = "-"
	}
	if sym, ok := currencySymbols[code]; ok {
		return sign + sym + s
	}
	if code == "" {
		return sign + s
	}
	return sign + s + " " + code
}

// Percent renders a signed percentage with two decimals: "+12.34%".
func Percent(v float64) string {
	r := num.Round(v, 2)
	s := num.Fixed(r, 2)
	if r > 0 {
		s = "+" + s
	}
	return s + "%"
}

// Pips renders a pip count with one decimal.
func Pips(v float64) string {
	s := num.Fixed(v, 1)
	if s == "1.0" || s == "-1.0" {
		return s + " pip"
	}
	return s + " pips"
}

// Ratio renders a reward:risk ratio as "1:2.00".
func Ratio(r float64) string {
	return "1:" + num.Fixed(r, 2)
}

// Lots renders a position size with up to 4 decimals and trailing zeros
// trimmed: "0.4 lots". Sizes below 0.0001 keep up to 8 decimals.
func Lots(v float64) string {
	d := decimal.NewFromFloat(num.Round(v, 4))
	if d.IsZero() && v != 0 {
		d = decimal.NewFromFloat(num.Round(v, 8))
	}
	unit := " lots"
	if d.Equal(decimal.NewFromInt(1)) {
		unit = " lot"
	}
	return d.String() + unit
}

// group inserts thousands separators into a plain decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}
