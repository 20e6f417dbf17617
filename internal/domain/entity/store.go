package entity

// StoreEntry is one Rust item offered in a weekly store rotation, normalized
// from the SCMM store payload. Pointer fields are absent when SCMM omitted
// them.
type StoreEntry struct {
	ID             *int64
	Name           string
	ItemType       string
	Collection     string
	StorePrice     *float64 // USD
	IconURL        string
	WorkshopFileID *int64
	AppID          *int64
}

// StoreRef is one entry of the store list, enough to identify a historical
// rotation.
type StoreRef struct {
	ID    string `json:"id"`
	Start string `json:"start"` // ISO timestamp, date part keys the rotation
	Name  string `json:"name"`
}

// StartDate returns the YYYY-MM-DD part of the start timestamp.
func (r StoreRef) StartDate() string {
	for i := 0; i < len(r.Start); i++ {
		if r.Start[i] == 'T' {
			return r.Start[:i]
		}
	}
	return r.Start
}
