package view_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"scmm_bot/internal/domain"
	"scmm_bot/internal/domain/entity"
	"scmm_bot/internal/transport/discord/view"
	"scmm_bot/pkg/errcodes"
)

func ptr[T any](v T) *T { return &v }

func TestPriceBlock(t *testing.T) {
	tests := []struct {
		name              string
		details           *entity.ItemDetails
		includeThirdParty bool
		want              string
	}{
		{
			name:    "no details",
			details: nil,
			want:    "**Store:** Unknown\n**Steam Market:** No data",
		},
		{
			name: "steam above store",
			details: &entity.ItemDetails{
				StorePrice: ptr(2.50),
				Markets: map[entity.MarketSource]float64{
					entity.MarketSteam: 3.00,
				},
			},
			want: "**Store:** $2.50\n**Steam Market:** $3.00 (🟢 +20.0% vs store)",
		},
		{
			name: "steam below store",
			details: &entity.ItemDetails{
				StorePrice: ptr(3.00),
				Markets: map[entity.MarketSource]float64{
					entity.MarketSteam: 2.25,
				},
			},
			want: "**Store:** $3.00\n**Steam Market:** $2.25 (🔴 -25.0% vs store)",
		},
		{
			name: "free store item gives no steam comparison",
			details: &entity.ItemDetails{
				StorePrice: ptr(0.0),
				Markets: map[entity.MarketSource]float64{
					entity.MarketSteam: 1.10,
				},
			},
			want: "**Store:** $0.00\n**Steam Market:** $1.10 (N/A vs store)",
		},
		{
			name: "full breakdown",
			details: &entity.ItemDetails{
				StorePrice: ptr(2.00),
				Markets: map[entity.MarketSource]float64{
					entity.MarketSteam:    2.50,
					entity.MarketSkinport: 2.00,
					entity.MarketCSDeals:  3.00,
				},
			},
			includeThirdParty: true,
			want: "**Store:** $2.00\n" +
				"**Steam Market:** $2.50 (🟢 +25.0% vs store)\n" +
				"**Skinport:** $2.00 (🔴 -20.0% vs Steam)\n" +
				"**CS.Deals:** $3.00 (🟢 +20.0% vs Steam)",
		},
		{
			name: "missing markets show absence text",
			details: &entity.ItemDetails{
				StorePrice: ptr(2.00),
			},
			includeThirdParty: true,
			want: "**Store:** $2.00\n" +
				"**Steam Market:** No data\n" +
				"**Skinport:** No listings\n" +
				"**CS.Deals:** No listings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, view.PriceBlock(tt.details, tt.includeThirdParty))
		})
	}
}

func TestStatsBlock(t *testing.T) {
	rq := require.New(t)

	details := &entity.ItemDetails{
		StorePrice:    ptr(2.50),
		TimeAccepted:  "2024-03-07T18:02:11.000Z",
		Supply:        ptr(int64(12400)),
		Subscriptions: ptr(int64(5321)),
		VotesUp:       ptr(int64(930)),
		VotesDown:     ptr(int64(70)),
		Favourited:    ptr(int64(812)),
		Views:         ptr(int64(40231)),
		BreaksInto:    map[string]int64{"Cloth": 20, "Sewing Kit": 1},
	}

	rq.Equal(
		"🛒 Released on **2024-03-07** for **$2.50**\n"+
			"📦 Estimated supply: **12,400**\n"+
			"👥 Workshop subscribers: **5,321**\n"+
			"👍 Votes: **1,000** (93% positive)\n"+
			"⭐ Favourited: **812**\n"+
			"👀 Workshop views: **40,231**\n"+
			"🪓 Breaks into 20x Cloth, 1x Sewing Kit",
		view.StatsBlock(details),
	)

	rq.Empty(view.StatsBlock(nil))
	rq.Empty(view.StatsBlock(&entity.ItemDetails{}))
}

func TestMarketButtons(t *testing.T) {
	rq := require.New(t)

	t.Run("ordered Steam, CS.Deals, Skinport", func(t *testing.T) {
		components := view.MarketButtons(map[entity.MarketSource]string{
			entity.MarketSteam:    "https://steamcommunity.com/market/listings/252490/x",
			entity.MarketSkinport: "https://skinport.com/rust?search=x",
			entity.MarketCSDeals:  "https://cs.deals/new/market?game=rust&name=x",
		})
		rq.Len(components, 1)

		row, ok := components[0].(discordgo.ActionsRow)
		rq.True(ok)

		labels := lo.Map(row.Components, func(c discordgo.MessageComponent, _ int) string {
			button, isButton := c.(discordgo.Button)
			rq.True(isButton)
			rq.Equal(discordgo.LinkButton, button.Style)
			return button.Label
		})
		rq.Equal([]string{"Steam Market", "CS.Deals", "Skinport"}, labels)
	})

	t.Run("missing markets drop out", func(t *testing.T) {
		components := view.MarketButtons(map[entity.MarketSource]string{
			entity.MarketSkinport: "https://skinport.com/rust?search=x",
		})
		rq.Len(components, 1)

		row := components[0].(discordgo.ActionsRow)
		rq.Len(row.Components, 1)
	})

	t.Run("no urls yields no row", func(t *testing.T) {
		rq.Nil(view.MarketButtons(nil))
	})
}

func TestStoreItemEmbed(t *testing.T) {
	rq := require.New(t)

	renderer := view.NewRenderer(5 * time.Minute)

	item := entity.StoreEntry{
		ID:             ptr(int64(4210)),
		Name:           "Blackout Hoodie",
		ItemType:       "Hoodie",
		Collection:     "Blackout",
		IconURL:        "https://files.rust.scmm.app/hoodie.png",
		WorkshopFileID: ptr(int64(3001234567)),
	}
	details := &entity.ItemDetails{
		StorePrice: ptr(2.50),
		Markets:    map[entity.MarketSource]float64{entity.MarketSteam: 3.00},
	}

	embed := renderer.StoreItemEmbed(item, details, "2025-11-06", "2025-11-06-1819")

	rq.Equal("Blackout Hoodie", embed.Title)
	rq.Equal("Hoodie • Blackout collection", embed.Description)
	rq.Equal("https://files.rust.scmm.app/hoodie.png", embed.Image.URL)

	rq.Len(embed.Fields, 2)
	rq.Equal("🛒 Prices", embed.Fields[0].Name)
	rq.Contains(embed.Fields[0].Value, "🟢 +20.0% vs store")
	// The weekly view never shows third-party markets.
	rq.NotContains(embed.Fields[0].Value, "Skinport")
	rq.NotContains(embed.Fields[0].Value, "CS.Deals")

	rq.Equal("🧾 Details", embed.Fields[1].Name)
	rq.Contains(embed.Fields[1].Value, "Workshop: `3001234567`")
	rq.Contains(embed.Fields[1].Value, "Store ID: `4210`")

	rq.Equal(
		"SCMM • Store 2025-11-06 • ID 2025-11-06-1819 • Auto-deletes in 5 minutes",
		embed.Footer.Text,
	)
}

func TestItemOverviewEmbed(t *testing.T) {
	rq := require.New(t)

	renderer := view.NewRenderer(5 * time.Minute)

	details := &entity.ItemDetails{
		Name:       "Blackout Hoodie",
		IconURL:    "https://files.rust.scmm.app/hoodie.png",
		StorePrice: ptr(2.50),
		Markets: map[entity.MarketSource]float64{
			entity.MarketSteam:    3.00,
			entity.MarketSkinport: 2.89,
		},
		Views: ptr(int64(40231)),
	}

	embed := renderer.ItemOverviewEmbed(details)

	rq.Equal("Blackout Hoodie", embed.Title)
	rq.Equal("Cross-market overview (Store, Steam, Skinport, CS.Deals)", embed.Description)
	rq.Len(embed.Fields, 2)
	rq.Contains(embed.Fields[0].Value, "**Skinport:** $2.89")
	rq.Contains(embed.Fields[0].Value, "**CS.Deals:** No listings")
	rq.Equal("📊 Item stats", embed.Fields[1].Name)
	rq.Equal("SCMM • Item Market Overview • Auto-deletes in 5 minutes", embed.Footer.Text)
}

func TestStorePreviewEmbed(t *testing.T) {
	rq := require.New(t)

	t.Run("object with items", func(t *testing.T) {
		raw := []byte(`{"id": "2025-11-06-1819", "items": [{"name": "Blackout Hoodie", "storePrice": 250}], "start": "2025-11-06T18:18:07Z"}`)

		embed := view.StorePreviewEmbed(raw)

		rq.Equal("🧪 SCMM Store – Current (Debug)", embed.Title)
		rq.Len(embed.Fields, 2)
		rq.Equal("`id, items, start`", embed.Fields[0].Value)
		rq.Contains(embed.Fields[1].Value, "Key: `items`")
		rq.Contains(embed.Fields[1].Value, `"name": "Blackout Hoodie"`)
	})

	t.Run("no item list", func(t *testing.T) {
		embed := view.StorePreviewEmbed([]byte(`{"id": "x"}`))
		rq.Equal("No obvious item list found (keys only).", embed.Fields[1].Value)
	})

	t.Run("non-object root", func(t *testing.T) {
		embed := view.StorePreviewEmbed([]byte(`[1, 2, 3]`))
		rq.Equal("`_root`", embed.Fields[0].Value)
	})
}

func TestStoreListEmbed(t *testing.T) {
	rq := require.New(t)

	t.Run("newest first, capped at ten", func(t *testing.T) {
		refs := make([]entity.StoreRef, 0, 12)
		for day := 1; day <= 12; day++ {
			refs = append(refs, entity.StoreRef{
				ID:    fmt.Sprintf("2025-11-%02d", day),
				Start: fmt.Sprintf("2025-11-%02dT18:00:00Z", day),
				Name:  "Week",
			})
		}

		embed := view.StoreListEmbed(refs)

		rq.Equal("🧾 Store List – Latest 10", embed.Title)
		lines := strings.Split(embed.Description, "\n")
		rq.Len(lines, 10)
		rq.Contains(lines[0], "2025-11-12")
		rq.NotContains(embed.Description, "2025-11-01T")
	})

	t.Run("empty list", func(t *testing.T) {
		embed := view.StoreListEmbed(nil)
		rq.Equal("🧾 Store List – Empty", embed.Title)
	})
}

func TestErrorEmbeds(t *testing.T) {
	rq := require.New(t)

	renderer := view.NewRenderer(5 * time.Minute)

	t.Run("lookup not found is soft", func(t *testing.T) {
		err := domain.NewError(errcodes.NotFound, "no item found on SCMM matching 'Blckout Hoodie'")
		embed := renderer.LookupErrorEmbed(err)
		rq.Equal("🔍 Item Not Found", embed.Title)
		rq.Equal("no item found on SCMM matching 'Blckout Hoodie'", embed.Description)
	})

	t.Run("lookup upstream trouble is hard", func(t *testing.T) {
		err := domain.NewError(errcodes.UpstreamError, "SCMM responded with HTTP 502 for /item/x")
		embed := renderer.LookupErrorEmbed(err)
		rq.Equal("🔍 Item Lookup – Error", embed.Title)
	})

	t.Run("week error", func(t *testing.T) {
		err := domain.NewError(errcodes.Timeout, "SCMM timed out")
		embed := renderer.WeekErrorEmbed(err)
		rq.Equal("🛒 Weekly Store – Error", embed.Title)
		rq.Equal("SCMM timed out", embed.Description)
	})

	t.Run("unclassified errors stay vague", func(t *testing.T) {
		embed := view.StoreDebugErrorEmbed(assertionError{})
		rq.Equal("Something went wrong talking to SCMM. Try again in a moment.", embed.Description)
	})
}

type assertionError struct{}

func (assertionError) Error() string { return "secret internals" }
