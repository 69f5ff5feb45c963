package market

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatCompact renders large figures with a K/M/B/T suffix.
func FormatCompact(v float64, decimals int) string {
	if math.Abs(v) < 1000 {
		return fmt.Sprintf("%.*f", decimals, v)
	}
	scaled, prefix := humanize.ComputeSI(v)
	switch prefix {
	case "k":
		prefix = "K"
	case "G":
		prefix = "B"
	}
	return fmt.Sprintf("%.*f%s", decimals, scaled, prefix)
}

// FormatUSD renders a dollar figure with a compact suffix.
func FormatUSD(v float64) string {
	return "$" + FormatCompact(v, 2)
}

// FormatPrice renders a price with thousands separators. Sub-dollar prices
// keep more precision.
func FormatPrice(v float64) string {
	digits := 2
	if math.Abs(v) < 1 {
		digits = 4
	}
	return humanize.CommafWithDigits(math.Round(v*math.Pow10(digits))/math.Pow10(digits), digits)
}

// FormatChange renders a signed percentage.
func FormatChange(v float64) string {
	sign := ""
	if v >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, v)
}
