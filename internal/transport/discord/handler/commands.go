package handler

import "github.com/bwmarrin/discordgo"

const (
	commandWeekLookup        = "week_lookup"
	commandItemLookup        = "item_lookup"
	commandStoreCurrentDebug = "store_current_debug"
	commandStoreListDebug    = "store_list_debug"
)

var commands = []*discordgo.ApplicationCommand{ //nolint:gochecknoglobals
	{
		Name:        commandWeekLookup,
		Description: "Show the Rust item shop for a specific date with Steam Market change.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "year",
				Description: "Year (e.g. 2025)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "month",
				Description: "Month (1-12)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "day",
				Description: "Day (1-31, the store start date)",
				Required:    true,
			},
		},
	},
	{
		Name:        commandItemLookup,
		Description: "Deep-dive a Rust skin across Steam and 3rd-party markets.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "Exact skin name as it appears on SCMM / Steam.",
				Required:     true,
				Autocomplete: true,
			},
		},
	},
	{
		Name:        commandStoreCurrentDebug,
		Description: "Debug: show raw structure for the current Rust store from SCMM.",
	},
	{
		Name:        commandStoreListDebug,
		Description: "Debug: list the latest 10 store IDs from SCMM.",
	},
}

// Commands returns the slash commands this handler serves.
func Commands() []*discordgo.ApplicationCommand {
	return commands
}
