// Package money formats amounts the way the pages print prices:
// two decimals, a dot as the decimal mark and spaces between thousands.
package money

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

const layout = "# ###.##"

// humanize truncates the integer part to int64, so bigger values are
// grouped by hand.
const humanizeLimit = 1e15

// Format renders v as "1 234.50".
func Format(v float64) string {
	if !finite(v) {
		return "0.00"
	}
	if math.Abs(v) >= humanizeLimit {
		return group(strconv.FormatFloat(v, 'f', 2, 64))
	}
	return humanize.FormatFloat(layout, v)
}

// Short renders v with a single decimal and no grouping, as used by statistics tiles.
func Short(v float64) string {
	if !finite(v) {
		return "0.0"
	}
	if math.Abs(v) >= humanizeLimit {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return humanize.FormatFloat("####.#", v)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// group inserts a space between every three digits of the integer part.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder
	sb.WriteString(sign)
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(d)
	}
	if frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}
