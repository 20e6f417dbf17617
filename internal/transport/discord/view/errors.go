package view

import (
	"errors"

	"github.com/bwmarrin/discordgo"

	"scmm_bot/internal/domain"
	"scmm_bot/pkg/errcodes"
)

// LookupErrorEmbed renders a failed /item_lookup. Bad input and unknown
// items get the softer "not found" card; upstream trouble gets the error
// card.
func (r *Renderer) LookupErrorEmbed(err error) *discordgo.MessageEmbed {
	title := "🔍 Item Lookup – Error"
	color := colorRed

	if code, ok := domain.GetCode(err); ok {
		switch code {
		case errcodes.NotFound, errcodes.EmptyItemName:
			title = "🔍 Item Not Found"
			color = colorOrange
		}
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: errorText(err),
		Color:       color,
		Footer:      r.autodeleteFooter("Item Market Overview"),
	}
}

// WeekErrorEmbed renders a failed /week_lookup.
func (r *Renderer) WeekErrorEmbed(err error) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🛒 Weekly Store – Error",
		Description: errorText(err),
		Color:       colorRed,
		Footer:      r.autodeleteFooter("Weekly Store by Date"),
	}
}

// StoreDebugErrorEmbed renders a failed /store_current_debug.
func StoreDebugErrorEmbed(err error) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🧪 Store Debug – Error",
		Description: errorText(err),
		Color:       colorRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: "SCMM • Store Debug"},
	}
}

// StoreListErrorEmbed renders a failed /store_list_debug.
func StoreListErrorEmbed(err error) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🧾 Store List – Error",
		Description: errorText(err),
		Color:       colorRed,
		Footer:      &discordgo.MessageEmbedFooter{Text: "SCMM • Store List Debug"},
	}
}

// errorText shows the stable application message when the error carries one
// and hides raw causes from users otherwise.
func errorText(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}

	return "Something went wrong talking to SCMM. Try again in a moment."
}
