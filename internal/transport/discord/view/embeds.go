// Package view renders SCMM market data into Discord embeds and components.
// It is purely presentational: no session handles, no network calls.
package view

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"scmm_bot/internal/domain/entity"
)

const (
	colorDarkOrange = 0xA84300
	colorBlurple    = 0x5865F2
	colorRed        = 0xED4245
	colorOrange     = 0xE67E22
)

// Renderer builds all user-facing embeds. The reply TTL only affects footer
// text; actual deletion is the janitor's job.
type Renderer struct {
	ttl time.Duration
}

func NewRenderer(ttl time.Duration) *Renderer {
	return &Renderer{ttl: ttl}
}

func (r *Renderer) autodeleteFooter(context string) *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("SCMM • %s • Auto-deletes in %s", context, formatTTL(r.ttl)),
	}
}

func formatTTL(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		minutes := int(d / time.Minute)
		if minutes == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", minutes)
	}

	return d.String()
}

// StoreItemEmbed is the weekly store card: Store vs Steam pricing plus
// insider stats. Third-party markets are left out to keep the weekly view
// readable.
func (r *Renderer) StoreItemEmbed(
	item entity.StoreEntry,
	details *entity.ItemDetails,
	storeDate, storeID string,
) *discordgo.MessageEmbed {
	subtitle := storeSubtitle(item)

	embed := &discordgo.MessageEmbed{
		Title:       item.Name,
		Description: subtitle,
		Color:       colorDarkOrange,
	}

	if item.IconURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: item.IconURL}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🛒 Prices",
		Value: PriceBlock(details, false),
	})

	if ids := idLines(item); ids != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🧾 Details",
			Value: ids,
		})
	}

	if stats := StatsBlock(details); stats != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "📊 Item stats",
			Value: stats,
		})
	}

	footer := "Store " + storeDate
	if storeID != "" {
		footer += " • ID " + storeID
	}
	embed.Footer = r.autodeleteFooter(footer)

	return embed
}

func storeSubtitle(item entity.StoreEntry) string {
	switch {
	case item.ItemType != "" && item.Collection != "":
		return item.ItemType + " • " + item.Collection + " collection"
	case item.ItemType != "":
		return item.ItemType
	case item.Collection != "":
		return item.Collection + " collection"
	default:
		return "Rust store item"
	}
}

func idLines(item entity.StoreEntry) string {
	var lines string
	appendLine := func(s string) {
		if lines != "" {
			lines += "\n"
		}
		lines += s
	}

	if item.WorkshopFileID != nil {
		appendLine(fmt.Sprintf("Workshop: `%d`", *item.WorkshopFileID))
	}
	if item.ID != nil {
		appendLine(fmt.Sprintf("Store ID: `%d`", *item.ID))
	}
	if item.AppID != nil {
		appendLine(fmt.Sprintf("App ID: `%d`", *item.AppID))
	}

	return lines
}

// ItemOverviewEmbed is the full cross-market card used by /item_lookup.
func (r *Renderer) ItemOverviewEmbed(details *entity.ItemDetails) *discordgo.MessageEmbed {
	name := details.Name
	if name == "" {
		name = "Unknown item"
	}

	embed := &discordgo.MessageEmbed{
		Title:       name,
		Description: "Cross-market overview (Store, Steam, Skinport, CS.Deals)",
		Color:       colorBlurple,
	}

	if details.IconURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: details.IconURL}
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "🛒 Prices",
		Value: PriceBlock(details, true),
	})

	if stats := StatsBlock(details); stats != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "📊 Item stats",
			Value: stats,
		})
	}

	embed.Footer = r.autodeleteFooter("Item Market Overview")

	return embed
}

// MarketButtons builds the link-button row for /item_lookup, ordered Steam,
// CS.Deals, Skinport. Returns nil when no marketplace URL is known.
func MarketButtons(urls map[entity.MarketSource]string) []discordgo.MessageComponent {
	type spec struct {
		source entity.MarketSource
		label  string
		emoji  string
	}

	var buttons []discordgo.MessageComponent

	for _, s := range []spec{
		{entity.MarketSteam, "Steam Market", "🟦"},
		{entity.MarketCSDeals, "CS.Deals", "🟣"},
		{entity.MarketSkinport, "Skinport", "🟢"},
	} {
		u, ok := urls[s.source]
		if !ok || u == "" {
			continue
		}

		buttons = append(buttons, discordgo.Button{
			Style: discordgo.LinkButton,
			Label: s.label,
			URL:   u,
			Emoji: &discordgo.ComponentEmoji{Name: s.emoji},
		})
	}

	if len(buttons) == 0 {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// NoStoreEmbed is shown when no store rotation started on the requested
// date.
func (r *Renderer) NoStoreEmbed(date string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🛒 Weekly Store – No Store for That Date",
		Description: fmt.Sprintf(
			"No store was found with start date `%s`.\nUse `/store_list_debug` to see available store dates.",
			date,
		),
		Color:  colorOrange,
		Footer: r.autodeleteFooter("Weekly Store by Date"),
	}
}

// TruncatedEmbed warns that a large rotation was cut down to the fan-out
// cap.
func (r *Renderer) TruncatedEmbed(total, shown int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "⚠️ Store truncated",
		Description: fmt.Sprintf(
			"This store has **%d** items.\nShowing the first **%d** to avoid spamming the channel.",
			total, shown,
		),
		Color:  colorOrange,
		Footer: r.autodeleteFooter("Weekly Store by Date"),
	}
}

// InvalidDateEmbed rejects an impossible calendar date.
func (r *Renderer) InvalidDateEmbed(reason string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛒 Weekly Store – Invalid Date",
		Description: fmt.Sprintf("That date is not valid: `%s`", reason),
		Color:       colorRed,
		Footer:      r.autodeleteFooter("Weekly Store by Date"),
	}
}
