// Package format renders dashboard numbers in compact en-US notation with at
// most one fraction digit, e.g. $648.1B, 2.1M, +1.50%.
package format

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var units = []struct {
	suffix string
	exp    int32
}{
	{"T", 12},
	{"B", 9},
	{"M", 6},
	{"K", 3},
}

var thousand = decimal.NewFromInt(1000)

// Currency formats a USD amount, e.g. 648125000000 -> "$648.1B".
func Currency(v float64) string {
	s := Number(v)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

// Number formats a count, e.g. 2100000 -> "2.1M".
func Number(v float64) string {
	d := decimal.NewFromFloat(v)
	neg := d.IsNegative()
	d = d.Abs()

	s := compact(d)
	if neg && s != "0" {
		return "-" + s
	}
	return s
}

func compact(d decimal.Decimal) string {
	// Walk down from the largest unit; a value that rounds up to 1000 of a
	// unit is shown in the next one up.
	for i, u := range units {
		scaled := d.Shift(-u.exp)
		if scaled.LessThan(decimal.NewFromInt(1)) {
			continue
		}
		r := scaled.Round(1)
		if i > 0 && r.GreaterThanOrEqual(thousand) {
			return d.Shift(-units[i-1].exp).Round(1).String() + units[i-1].suffix
		}
		return r.String() + u.suffix
	}

	r := d.Round(1)
	if r.GreaterThanOrEqual(thousand) {
		return "1K"
	}
	return r.String()
}

// Change formats a signed percent with two decimals and an explicit plus.
func Change(v float64) string {
	s := decimal.NewFromFloat(v).StringFixed(2)
	if v > 0 {
		return "+" + s + "%"
	}
	if s == "-0.00" {
		s = "0.00"
	}
	return s + "%"
}

// ChangeClass picks the colour class for a change value.
func ChangeClass(v float64) string {
	if v > 0 {
		return "up"
	}
	return "down"
}

// Rank renders the rank column.
func Rank(r int) string {
	return "#" + strconv.Itoa(r)
}
