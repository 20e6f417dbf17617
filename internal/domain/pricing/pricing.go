// Package pricing computes percentage deltas between market quotes.
//
// Absence and undefinedness are distinct here: an absent compared price
// means the whole row is omitted from output, while a defined pair with a
// zero or absent baseline renders the N/A sentinel.
package pricing

// Delta is one percentage comparison against a baseline. Defined is false
// when the baseline was absent or zero, in which case Pct carries no
// meaning.
type Delta struct {
	Pct     float64
	Defined bool
}

// Percent computes (other - base) / base * 100. The result is undefined
// when either price is absent or the baseline is exactly zero.
func Percent(base, other *float64) Delta {
	if base == nil || other == nil || *base == 0 {
		return Delta{}
	}

	return Delta{
		Pct:     (*other - *base) / *base * 100,
		Defined: true,
	}
}

// Breakdown is the unified pricing model for one skin. Price fields are nil
// when the corresponding market has no data; deltas follow the comparison
// axes of the store view: Steam against the store price, third-party
// markets against Steam.
type Breakdown struct {
	Store    *float64
	Steam    *float64
	Skinport *float64
	CSDeals  *float64

	SteamVsStore    Delta
	SkinportVsSteam Delta
	CSDealsVsSteam  Delta
}

// Compute derives all deltas for the given quotes.
func Compute(store, steam, skinport, csdeals *float64) Breakdown {
	return Breakdown{
		Store:           store,
		Steam:           steam,
		Skinport:        skinport,
		CSDeals:         csdeals,
		SteamVsStore:    Percent(store, steam),
		SkinportVsSteam: Percent(steam, skinport),
		CSDealsVsSteam:  Percent(steam, csdeals),
	}
}
