package handler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"scmm_bot/internal/domain"
	"scmm_bot/internal/infrastructure/scmm"
	"scmm_bot/internal/transport/discord/view"
	"scmm_bot/pkg/errcodes"
	"scmm_bot/pkg/logx"
)

// handleWeekLookup renders the store rotation that started on the requested
// date, one card per item, Store vs Steam only.
func (h *Handler) handleWeekLookup(ctx context.Context, s replySession, i *discordgo.InteractionCreate) {
	if !h.deferInteraction(ctx, s, i) {
		return
	}

	options := optionMap(i)

	target, err := civilDate(
		int(options["year"].IntValue()),
		int(options["month"].IntValue()),
		int(options["day"].IntValue()),
	)
	if err != nil {
		h.sendAutodelete(ctx, s, i, h.renderer.InvalidDateEmbed(err.Error()), nil)
		return
	}

	targetDate := target.Format("2006-01-02")

	items, storeID, err := h.client.StoreForDate(ctx, target)
	if err != nil {
		embed := h.renderer.WeekErrorEmbed(err)
		if code, ok := domain.GetCode(err); ok && code == errcodes.NotFound {
			embed = h.renderer.NoStoreEmbed(targetDate)
		}

		h.sendAutodelete(ctx, s, i, embed, nil)

		return
	}

	if len(items) == 0 {
		h.sendAutodelete(ctx, s, i, h.renderer.NoStoreEmbed(targetDate), nil)
		return
	}

	total := len(items)
	if total > h.cfg.MaxWeekItems {
		items = items[:h.cfg.MaxWeekItems]
	}

	for _, item := range items {
		// Enrichment is best effort: a card without details still shows
		// the item.
		details, detailsErr := h.client.ItemByName(ctx, item.Name)
		if detailsErr != nil {
			logger(ctx).Info(
				"enrich store item",
				slog.String("item_name", item.Name),
				logx.Error(detailsErr),
			)
			details = nil
		}

		h.sendAutodelete(ctx, s, i, h.renderer.StoreItemEmbed(item, details, targetDate, storeID), nil)
	}

	if total > h.cfg.MaxWeekItems {
		h.sendAutodelete(ctx, s, i, h.renderer.TruncatedEmbed(total, h.cfg.MaxWeekItems), nil)
	}
}

// handleItemLookup renders the full cross-market card for one skin, with
// marketplace link buttons.
func (h *Handler) handleItemLookup(ctx context.Context, s replySession, i *discordgo.InteractionCreate) {
	if !h.deferInteraction(ctx, s, i) {
		return
	}

	name := optionMap(i)["name"].StringValue()

	details, err := h.client.ItemByName(ctx, name)
	if err != nil {
		h.sendAutodelete(ctx, s, i, h.renderer.LookupErrorEmbed(err), nil)
		return
	}

	embed := h.renderer.ItemOverviewEmbed(details)
	components := view.MarketButtons(scmm.ItemURLs(details))

	h.sendAutodelete(ctx, s, i, embed, components)
}

// civilDate builds a calendar date and rejects values that would roll over,
// like February 30th.
func civilDate(year, month, day int) (time.Time, error) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, domain.NewError(
			errcodes.InvalidDate,
			fmt.Sprintf("%04d-%02d-%02d is not a real calendar date", year, month, day),
		)
	}

	return t, nil
}
