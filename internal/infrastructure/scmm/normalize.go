package scmm

import (
	jsoniter "github.com/json-iterator/go"

	"scmm_bot/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// centsThreshold drives the price heuristic: SCMM usually quotes integer
// cents, but some payloads carry USD floats. Values above the threshold are
// treated as cents.
const centsThreshold = 50

func normalizeUSD(v float64) float64 {
	if v > centsThreshold {
		return v / 100
	}
	return v
}

type storeWrapperPayload struct {
	Items []storeItemPayload `json:"items"`
}

type storeItemPayload struct {
	ID             *int64   `json:"id"`
	Name           string   `json:"name"`
	ItemType       string   `json:"itemType"`
	ItemCollection string   `json:"itemCollection"`
	StorePrice     *float64 `json:"storePrice"`
	Price          *float64 `json:"price"`
	USDPrice       *float64 `json:"usdPrice"`
	FinalPrice     *float64 `json:"finalPrice"`
	IconURL        string   `json:"iconUrl"`
	ImageURL       string   `json:"imageUrl"`
	WorkshopFileID *int64   `json:"workshopFileId"`
	AppID          *int64   `json:"appId"`
}

func (p storeItemPayload) toEntity() entity.StoreEntry {
	name := p.Name
	if name == "" {
		name = "Unknown"
	}

	var price *float64
	for _, candidate := range []*float64{p.StorePrice, p.Price, p.USDPrice, p.FinalPrice} {
		if candidate != nil {
			usd := normalizeUSD(*candidate)
			price = &usd
			break
		}
	}

	icon := p.IconURL
	if icon == "" {
		icon = p.ImageURL
	}

	return entity.StoreEntry{
		ID:             p.ID,
		Name:           name,
		ItemType:       p.ItemType,
		Collection:     p.ItemCollection,
		StorePrice:     price,
		IconURL:        icon,
		WorkshopFileID: p.WorkshopFileID,
		AppID:          p.AppID,
	}
}

type marketListingPayload struct {
	MarketType  string   `json:"marketType"`
	Price       *float64 `json:"price"`
	URL         string   `json:"url"`
	Link        string   `json:"link"`
	Href        string   `json:"href"`
	IsAvailable *bool    `json:"isAvailable"`
}

func (p marketListingPayload) available() bool {
	return p.IsAvailable == nil || *p.IsAvailable
}

func (p marketListingPayload) listingURL() string {
	switch {
	case p.URL != "":
		return p.URL
	case p.Link != "":
		return p.Link
	default:
		return p.Href
	}
}

// marketSource maps SCMM marketType discriminators onto the markets the bot
// tracks. Unknown marketplaces are skipped.
func marketSource(marketType string) (entity.MarketSource, bool) {
	switch marketType {
	case "SteamCommunityMarket", "SteamMarket":
		return entity.MarketSteam, true
	case "Skinport":
		return entity.MarketSkinport, true
	case "CSDealsMarketplace":
		return entity.MarketCSDeals, true
	default:
		return "", false
	}
}

type itemDetailsPayload struct {
	ID             *int64   `json:"id"`
	Name           string   `json:"name"`
	ItemType       string   `json:"itemType"`
	ItemCollection string   `json:"itemCollection"`
	IconURL        string   `json:"iconUrl"`
	ImageURL       string   `json:"imageUrl"`
	StorePrice     *float64 `json:"storePrice"`
	TimeAccepted   string   `json:"timeAccepted"`
	AppID          *int64   `json:"appId"`
	WorkshopFileID *int64   `json:"workshopFileId"`

	SupplyTotalEstimated       *int64           `json:"supplyTotalEstimated"`
	SupplyTotalOwnersEstimated *int64           `json:"supplyTotalOwnersEstimated"`
	SubscriptionsCurrent       *int64           `json:"subscriptionsCurrent"`
	SubscriptionsLifetime      *int64           `json:"subscriptionsLifetime"`
	FavouritedCurrent          *int64           `json:"favouritedCurrent"`
	FavouritedLifetime         *int64           `json:"favouritedLifetime"`
	Views                      *int64           `json:"views"`
	VotesUp                    *int64           `json:"votesUp"`
	VotesDown                  *int64           `json:"votesDown"`
	BreaksIntoComponents       map[string]int64 `json:"breaksIntoComponents"`

	BuyPrices  []marketListingPayload `json:"buyPrices"`
	SellPrices []marketListingPayload `json:"sellPrices"`

	SteamMarketURL string `json:"steamMarketUrl"`
	SteamURL       string `json:"steamUrl"`
	SkinportURL    string `json:"skinportUrl"`
}

func (p itemDetailsPayload) toEntity() entity.ItemDetails {
	var storePrice *float64
	if p.StorePrice != nil {
		usd := normalizeUSD(*p.StorePrice)
		storePrice = &usd
	}

	icon := p.IconURL
	if icon == "" {
		icon = p.ImageURL
	}

	markets := make(map[entity.MarketSource]float64)
	urls := make(map[entity.MarketSource]string)

	for _, listing := range append(p.BuyPrices, p.SellPrices...) {
		source, ok := marketSource(listing.MarketType)
		if !ok || !listing.available() {
			continue
		}

		// CS.Deals listing URLs from SCMM point at the wrong storefront,
		// so only Steam and Skinport URLs are trusted here.
		if source != entity.MarketCSDeals {
			if u := listing.listingURL(); u != "" {
				if _, seen := urls[source]; !seen {
					urls[source] = u
				}
			}
		}

		if listing.Price == nil {
			continue
		}

		usd := normalizeUSD(*listing.Price)
		if best, seen := markets[source]; !seen || usd < best {
			markets[source] = usd
		}
	}

	if _, seen := urls[entity.MarketSteam]; !seen {
		if u := firstNonEmpty(p.SteamMarketURL, p.SteamURL); u != "" {
			urls[entity.MarketSteam] = u
		}
	}
	if _, seen := urls[entity.MarketSkinport]; !seen && p.SkinportURL != "" {
		urls[entity.MarketSkinport] = p.SkinportURL
	}

	return entity.ItemDetails{
		ID:             p.ID,
		Name:           p.Name,
		ItemType:       p.ItemType,
		Collection:     p.ItemCollection,
		IconURL:        icon,
		StorePrice:     storePrice,
		TimeAccepted:   p.TimeAccepted,
		AppID:          p.AppID,
		WorkshopFileID: p.WorkshopFileID,
		Supply:         firstNonNil(p.SupplyTotalEstimated, p.SupplyTotalOwnersEstimated),
		Subscriptions:  firstNonNil(p.SubscriptionsCurrent, p.SubscriptionsLifetime),
		Favourited:     firstNonNil(p.FavouritedCurrent, p.FavouritedLifetime),
		Views:          p.Views,
		VotesUp:        p.VotesUp,
		VotesDown:      p.VotesDown,
		BreaksInto:     p.BreaksIntoComponents,
		Markets:        markets,
		MarketURLs:     urls,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonNil(values ...*int64) *int64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
