package config

import "time"

type Discord struct {
	Token string `env:"DISCORD_TOKEN,required" json:"-"`

	// GuildID scopes slash-command registration to one guild for fast
	// propagation; empty registers them globally.
	GuildID string `env:"DISCORD_GUILD_ID"`

	// DeleteAfter is how long command replies live before the janitor
	// removes them.
	DeleteAfter time.Duration `env:"DISCORD_DELETE_AFTER" envDefault:"5m" validate:"gt=0"`

	// MaxWeekItems caps how many embeds one /week_lookup may fan out to.
	MaxWeekItems int `env:"DISCORD_MAX_WEEK_ITEMS" envDefault:"20" validate:"gte=1,lte=50"`
}
