package greenops

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//nolint:gochecknoglobals // message printers are safe for concurrent use
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousands separators: 18248 -> "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat rounds f to precision decimals and adds thousands separators
// to the integer part: FormatFloat(1234.567, 2) -> "1,234.57".
func FormatFloat(f float64, precision int) string {
	const base = 10
	scale := math.Pow(base, float64(precision))
	rounded := math.Round(f*scale) / scale

	if precision <= 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := fmt.Sprintf("%.*f", precision, rounded)
	intPart, frac, ok := strings.Cut(formatted, ".")
	if !ok {
		return formatted
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	var n int64
	if _, err := fmt.Sscan(intPart, &n); err != nil {
		return formatted
	}
	return sign + FormatNumber(n) + "." + frac
}

// FormatLarge abbreviates millions and billions: 1.5e9 -> "~1.5 billion".
func FormatLarge(n float64) string {
	switch {
	case n >= BillionThreshold:
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	case n >= LargeNumberThreshold:
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	default:
		return FormatNumber(int64(math.Round(n)))
	}
}

// FormatPounds renders a mass in pounds for reports: "1,234.5 lbs".
func FormatPounds(lbs float64) string {
	return FormatFloat(lbs, 1) + " lbs"
}
