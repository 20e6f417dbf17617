package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"scmm_bot/pkg/logx"
)

// deferInteraction acknowledges the interaction so the three second response
// window stops ticking. Returns false when the interaction already expired,
// in which case the command must abort silently.
func (h *Handler) deferInteraction(ctx context.Context, s replySession, i *discordgo.InteractionCreate) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err == nil {
		return true
	}

	if isDiscordCode(err, discordgo.ErrCodeUnknownInteraction) {
		logger(ctx).Warn("interaction expired before defer")
		return false
	}

	logger(ctx).Error("defer interaction", logx.Error(err))

	return false
}

// sendAutodelete delivers an embed as an interaction follow-up and schedules
// its deletion. When the interaction token has died in the meantime, the
// reply falls back to a plain channel message so the user still sees it.
func (h *Handler) sendAutodelete(
	ctx context.Context,
	s replySession,
	i *discordgo.InteractionCreate,
	embed *discordgo.MessageEmbed,
	components []discordgo.MessageComponent,
) {
	msg, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	})
	if err != nil {
		if !isDiscordCode(err, discordgo.ErrCodeUnknownInteraction) &&
			!isDiscordCode(err, discordgo.ErrCodeUnknownWebhook) {
			logger(ctx).Error("send follow-up", logx.Error(err))
			return
		}

		logger(ctx).Warn("interaction token expired, falling back to channel message")

		msg, err = s.ChannelMessageSendComplex(i.ChannelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		})
		if err != nil {
			logger(ctx).Error("send channel message", logx.Error(err))
			return
		}
	}

	h.janitor.Schedule(ctx, msg.ChannelID, msg.ID, h.cfg.DeleteAfter)
}

// sendPlain delivers an embed as a follow-up without scheduling deletion.
// The debug commands use it so their output stays around for inspection.
func (h *Handler) sendPlain(
	ctx context.Context,
	s replySession,
	i *discordgo.InteractionCreate,
	embed *discordgo.MessageEmbed,
) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		logger(ctx).Error(
			"send follow-up",
			slog.String(logx.FieldChannelID, i.ChannelID),
			logx.Error(err),
		)
	}
}

func isDiscordCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) &&
		restErr.Message != nil &&
		restErr.Message.Code == code
}
