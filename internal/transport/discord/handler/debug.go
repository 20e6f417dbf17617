package handler

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"scmm_bot/internal/transport/discord/view"
)

// handleStoreCurrentDebug previews the raw current-store payload. Debug
// replies stick around, they are exempt from auto-deletion.
func (h *Handler) handleStoreCurrentDebug(ctx context.Context, s replySession, i *discordgo.InteractionCreate) {
	if !h.deferInteraction(ctx, s, i) {
		return
	}

	raw, err := h.client.StoreCurrentRaw(ctx)
	if err != nil {
		h.sendPlain(ctx, s, i, view.StoreDebugErrorEmbed(err))
		return
	}

	h.sendPlain(ctx, s, i, view.StorePreviewEmbed(raw))
}

// handleStoreListDebug lists the latest known store rotations.
func (h *Handler) handleStoreListDebug(ctx context.Context, s replySession, i *discordgo.InteractionCreate) {
	if !h.deferInteraction(ctx, s, i) {
		return
	}

	refs, err := h.client.StoreList(ctx)
	if err != nil {
		h.sendPlain(ctx, s, i, view.StoreListErrorEmbed(err))
		return
	}

	h.sendPlain(ctx, s, i, view.StoreListEmbed(refs))
}
