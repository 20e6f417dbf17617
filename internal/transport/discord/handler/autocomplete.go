package handler

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"scmm_bot/pkg/logx"
)

const (
	autocompleteMinQuery   = 2
	autocompleteMaxChoices = 5
	autocompleteMaxLen     = 100
)

var titleCaser = cases.Title(language.English) //nolint:gochecknoglobals

// handleAutocomplete offers casing variants of whatever the user typed.
// Deliberately no SCMM calls here: autocomplete fires on every keystroke and
// its token expires fast, network latency would spray Unknown interaction
// errors.
func (h *Handler) handleAutocomplete(s replySession, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != commandItemLookup {
		return
	}

	var query string
	for _, option := range data.Options {
		if option.Focused {
			query = option.StringValue()
			break
		}
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: nameVariants(query),
		},
	})
	if err != nil && !isDiscordCode(err, discordgo.ErrCodeUnknownInteraction) {
		logger(h.rootCtx).Warn("respond to autocomplete", logx.Error(err))
	}
}

// nameVariants returns the typed query plus its title-cased and lower-cased
// forms, deduplicated and in that order.
func nameVariants(query string) []*discordgo.ApplicationCommandOptionChoice {
	query = strings.TrimSpace(query)
	if len(query) < autocompleteMinQuery {
		return nil
	}

	seen := make(map[string]struct{}, 3)
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 3)

	for _, variant := range []string{query, titleCaser.String(query), strings.ToLower(query)} {
		if _, dup := seen[variant]; dup {
			continue
		}
		seen[variant] = struct{}{}

		name := variant
		if len(name) > autocompleteMaxLen {
			name = name[:autocompleteMaxLen]
		}

		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: variant,
		})
		if len(choices) >= autocompleteMaxChoices {
			break
		}
	}

	return choices
}
