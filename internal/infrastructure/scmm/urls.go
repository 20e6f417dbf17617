package scmm

import (
	"net/url"

	"scmm_bot/internal/domain/entity"
)

const (
	steamListingBase = "https://steamcommunity.com/market/listings/252490/"
	skinportBase     = "https://skinport.com/rust?search="
	csdealsBase      = "https://cs.deals/new/market?game=rust&sort=newest&sort_desc=1&exact_match=0&name="
)

// ItemURLs returns one marketplace URL per tracked market. Steam and Skinport
// use the URL SCMM reported when present and fall back to deterministic
// listing/search URLs built from the item name. CS.Deals always gets the
// Rust-market search URL regardless of what SCMM reported.
func ItemURLs(details *entity.ItemDetails) map[entity.MarketSource]string {
	urls := make(map[entity.MarketSource]string, len(entity.MarketOrder))

	if details == nil {
		return urls
	}

	for _, source := range []entity.MarketSource{entity.MarketSteam, entity.MarketSkinport} {
		if u, ok := details.MarketURLs[source]; ok && u != "" {
			urls[source] = u
		}
	}

	if details.Name == "" {
		return urls
	}

	safeName := url.PathEscape(details.Name)

	if _, ok := urls[entity.MarketSteam]; !ok {
		urls[entity.MarketSteam] = steamListingBase + safeName
	}
	if _, ok := urls[entity.MarketSkinport]; !ok {
		urls[entity.MarketSkinport] = skinportBase + safeName
	}

	urls[entity.MarketCSDeals] = csdealsBase + url.QueryEscape(details.Name)

	return urls
}
