package entity

// MarketSource identifies one external marketplace quoting prices for Rust
// skins.
type MarketSource string

const (
	MarketSteam    MarketSource = "steam"
	MarketSkinport MarketSource = "skinport"
	MarketCSDeals  MarketSource = "csdeals"
)

// MarketOrder is the fixed display order for market price rows.
//
//nolint:gochecknoglobals
var MarketOrder = []MarketSource{MarketSteam, MarketSkinport, MarketCSDeals}

func (m MarketSource) Label() string {
	switch m {
	case MarketSteam:
		return "Steam Market"
	case MarketSkinport:
		return "Skinport"
	case MarketCSDeals:
		return "CS.Deals"
	default:
		return string(m)
	}
}
