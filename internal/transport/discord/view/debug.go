package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	jsoniter "github.com/json-iterator/go"

	"scmm_bot/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	maxPreviewKeys  = 20
	maxPreviewChars = 900
	maxListChars    = 1900
	maxListEntries  = 10
)

// itemListKeys are the payload keys SCMM has used to carry the item array.
var itemListKeys = []string{"items", "store", "skins", "entries"} //nolint:gochecknoglobals

// StorePreviewEmbed renders a structural preview of the raw current-store
// payload: its top-level keys and a pretty-printed first item.
func StorePreviewEmbed(raw []byte) *discordgo.MessageEmbed {
	root := map[string]jsoniter.RawMessage{}
	if err := json.Unmarshal(raw, &root); err != nil {
		// Non-object roots still get a preview, wrapped under a synthetic
		// key.
		root = map[string]jsoniter.RawMessage{"_root": raw}
	}

	keys := make([]string, 0, len(root))
	for k := range root {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxPreviewKeys {
		keys = keys[:maxPreviewKeys]
	}

	topKeys := strings.Join(keys, ", ")
	if topKeys == "" {
		topKeys = "(no keys)"
	}

	sample := "No obvious item list found (keys only)."
	for _, key := range itemListKeys {
		value, ok := root[key]
		if !ok {
			continue
		}

		var items []jsoniter.RawMessage
		if err := json.Unmarshal(value, &items); err != nil || len(items) == 0 {
			continue
		}

		pretty, err := prettyJSON(items[0])
		if err != nil {
			continue
		}
		if len(pretty) > maxPreviewChars {
			pretty = pretty[:maxPreviewChars] + "\n... (truncated)"
		}

		sample = fmt.Sprintf("Key: `%s`\n```json\n%s\n```", key, pretty)

		break
	}

	return &discordgo.MessageEmbed{
		Title:       "🧪 SCMM Store – Current (Debug)",
		Description: "Raw structure preview from `/api/store/current`.",
		Color:       colorBlurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🧱 Top-level keys", Value: "`" + topKeys + "`"},
			{Name: "📦 Sample item (first in list)", Value: sample},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "SCMM • Store Debug"},
	}
}

func prettyJSON(raw jsoniter.RawMessage) (string, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("json.Unmarshal: %w", err)
	}

	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json.MarshalIndent: %w", err)
	}

	return string(pretty), nil
}

// StoreListEmbed lists the latest known store rotations, newest first.
func StoreListEmbed(refs []entity.StoreRef) *discordgo.MessageEmbed {
	if len(refs) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "🧾 Store List – Empty",
			Description: "SCMM /api/store returned no store instances.",
			Color:       colorOrange,
			Footer:      &discordgo.MessageEmbedFooter{Text: "SCMM • Store List Debug"},
		}
	}

	sorted := append([]entity.StoreRef(nil), refs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})
	if len(sorted) > maxListEntries {
		sorted = sorted[:maxListEntries]
	}

	lines := make([]string, 0, len(sorted))
	for _, ref := range sorted {
		lines = append(lines, fmt.Sprintf("ID `%s` • start `%s` • %s", ref.ID, ref.Start, ref.Name))
	}

	body := strings.Join(lines, "\n")
	if len(body) > maxListChars {
		body = body[:maxListChars] + "\n... (truncated)"
	}

	return &discordgo.MessageEmbed{
		Title:       "🧾 Store List – Latest 10",
		Description: body,
		Color:       colorBlurple,
		Footer:      &discordgo.MessageEmbedFooter{Text: "SCMM • Store List Debug"},
	}
}
