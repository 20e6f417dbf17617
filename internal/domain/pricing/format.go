package pricing

import "fmt"

// NA is the sentinel shown for a defined comparison with an unusable
// baseline. It is never shown for an absent compared price.
const NA = "N/A"

// FormatDelta renders a delta with one decimal place and an explicit sign,
// e.g. "+20.0%" or "-6.7%".
func FormatDelta(d Delta) string {
	if !d.Defined {
		return NA
	}

	return fmt.Sprintf("%+.1f%%", d.Pct)
}

// DeltaMarker returns the colour marker used next to a delta; undefined
// deltas get no marker.
func DeltaMarker(d Delta) string {
	switch {
	case !d.Defined:
		return ""
	case d.Pct >= 0:
		return "🟢"
	default:
		return "🔴"
	}
}

// FormatUSD renders a price with two decimals, or fallback when absent.
func FormatUSD(p *float64, fallback string) string {
	if p == nil {
		return fallback
	}

	return fmt.Sprintf("$%.2f", *p)
}
