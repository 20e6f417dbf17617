package entity

// ItemDetails is the normalized per-item payload from SCMM. It powers the
// insider stats block and the cross-market breakdown.
type ItemDetails struct {
	ID             *int64
	Name           string
	ItemType       string
	Collection     string
	IconURL        string
	StorePrice     *float64 // USD
	TimeAccepted   string   // ISO timestamp of workshop acceptance
	AppID          *int64
	WorkshopFileID *int64

	Supply        *int64
	Subscriptions *int64
	Favourited    *int64
	Views         *int64
	VotesUp       *int64
	VotesDown     *int64
	BreaksInto    map[string]int64

	// Markets holds the lowest available USD price per marketplace; a
	// missing key means no listings.
	Markets map[MarketSource]float64

	// MarketURLs holds listing URLs taken verbatim from SCMM data. The
	// client fills in deterministic fallbacks separately.
	MarketURLs map[MarketSource]string
}

// MarketPrice returns the quoted price for one market, or nil when the
// market has no listings.
func (d *ItemDetails) MarketPrice(source MarketSource) *float64 {
	if d == nil {
		return nil
	}
	if p, ok := d.Markets[source]; ok {
		return &p
	}
	return nil
}

// AcceptedDate returns the YYYY-MM-DD part of TimeAccepted, or "" when
// unknown.
func (d *ItemDetails) AcceptedDate() string {
	if d == nil || d.TimeAccepted == "" {
		return ""
	}
	for i := 0; i < len(d.TimeAccepted); i++ {
		if d.TimeAccepted[i] == 'T' {
			return d.TimeAccepted[:i]
		}
	}
	return d.TimeAccepted
}
