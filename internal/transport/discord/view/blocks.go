package view

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"scmm_bot/internal/domain/entity"
	"scmm_bot/internal/domain/pricing"
)

var numberPrinter = message.NewPrinter(language.English) //nolint:gochecknoglobals

// PriceBlock renders the market price lines for one item. The weekly view
// passes includeThirdParty=false to keep it at Store vs Steam; the item
// overview shows all four rows.
func PriceBlock(details *entity.ItemDetails, includeThirdParty bool) string {
	if details == nil {
		return "**Store:** Unknown\n**Steam Market:** No data"
	}

	breakdown := pricing.Compute(
		details.StorePrice,
		details.MarketPrice(entity.MarketSteam),
		details.MarketPrice(entity.MarketSkinport),
		details.MarketPrice(entity.MarketCSDeals),
	)

	lines := []string{
		"**Store:** " + pricing.FormatUSD(breakdown.Store, "Unknown"),
		marketLine("Steam Market", breakdown.Steam, breakdown.SteamVsStore, "store", "No data"),
	}

	if includeThirdParty {
		lines = append(lines,
			marketLine("Skinport", breakdown.Skinport, breakdown.SkinportVsSteam, "Steam", "No listings"),
			marketLine("CS.Deals", breakdown.CSDeals, breakdown.CSDealsVsSteam, "Steam", "No listings"),
		)
	}

	return strings.Join(lines, "\n")
}

func marketLine(label string, price *float64, delta pricing.Delta, baseline, absent string) string {
	if price == nil {
		return fmt.Sprintf("**%s:** %s", label, absent)
	}

	if !delta.Defined {
		return fmt.Sprintf("**%s:** %s (%s vs %s)", label, pricing.FormatUSD(price, absent), pricing.NA, baseline)
	}

	return fmt.Sprintf(
		"**%s:** %s (%s %s vs %s)",
		label,
		pricing.FormatUSD(price, absent),
		pricing.DeltaMarker(delta),
		pricing.FormatDelta(delta),
		baseline,
	)
}

// StatsBlock renders the insider stats lines for one item, or "" when no
// stat is known.
func StatsBlock(details *entity.ItemDetails) string {
	if details == nil {
		return ""
	}

	var lines []string

	released := details.AcceptedDate()
	switch {
	case released != "" && details.StorePrice != nil:
		lines = append(lines, fmt.Sprintf(
			"🛒 Released on **%s** for **%s**",
			released, pricing.FormatUSD(details.StorePrice, ""),
		))
	case released != "":
		lines = append(lines, fmt.Sprintf("🛒 Released on **%s**", released))
	case details.StorePrice != nil:
		lines = append(lines, fmt.Sprintf(
			"🛒 Store price for **%s**",
			pricing.FormatUSD(details.StorePrice, ""),
		))
	}

	if details.Supply != nil {
		lines = append(lines, "📦 Estimated supply: **"+groupInt(*details.Supply)+"**")
	}
	if details.Subscriptions != nil {
		lines = append(lines, "👥 Workshop subscribers: **"+groupInt(*details.Subscriptions)+"**")
	}

	if details.VotesUp != nil && details.VotesDown != nil {
		total := *details.VotesUp + *details.VotesDown
		if total > 0 {
			ratio := float64(*details.VotesUp) / float64(total) * 100
			lines = append(lines, fmt.Sprintf("👍 Votes: **%s** (%.0f%% positive)", groupInt(total), ratio))
		}
	}

	if details.Favourited != nil {
		lines = append(lines, "⭐ Favourited: **"+groupInt(*details.Favourited)+"**")
	}
	if details.Views != nil {
		lines = append(lines, "👀 Workshop views: **"+groupInt(*details.Views)+"**")
	}

	if len(details.BreaksInto) > 0 {
		components := make([]string, 0, len(details.BreaksInto))
		for name := range details.BreaksInto {
			components = append(components, name)
		}
		sort.Strings(components)

		parts := make([]string, 0, len(components))
		for _, name := range components {
			parts = append(parts, fmt.Sprintf("%dx %s", details.BreaksInto[name], name))
		}
		lines = append(lines, "🪓 Breaks into "+strings.Join(parts, ", "))
	}

	return strings.Join(lines, "\n")
}

func groupInt(n int64) string {
	return numberPrinter.Sprintf("%d", n)
}
