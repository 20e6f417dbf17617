// Package handler dispatches Discord interactions to the SCMM market
// commands and renders their replies.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/xid"

	"scmm_bot/internal/config"
	"scmm_bot/internal/domain/entity"
	"scmm_bot/internal/metrics"
	"scmm_bot/internal/transport/discord/view"
	"scmm_bot/pkg/contextx"
	"scmm_bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// marketClient is the slice of the SCMM client the commands need.
type marketClient interface {
	StoreCurrentRaw(ctx context.Context) ([]byte, error)
	StoreList(ctx context.Context) ([]entity.StoreRef, error)
	StoreForDate(ctx context.Context, target time.Time) ([]entity.StoreEntry, string, error)
	ItemByName(ctx context.Context, name string) (*entity.ItemDetails, error)
}

// replySession is the slice of the Discord session used to answer
// interactions.
type replySession interface {
	InteractionRespond(i *discordgo.Interaction, r *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(i *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// deleteScheduler arranges delayed deletion of sent replies.
type deleteScheduler interface {
	Schedule(ctx context.Context, channelID, messageID string, ttl time.Duration)
}

type Handler struct {
	rootCtx  context.Context
	client   marketClient
	janitor  deleteScheduler
	renderer *view.Renderer
	cfg      config.Discord
}

// New builds the command handler. rootCtx outlives individual interactions
// and carries the process-wide logger.
func New(rootCtx context.Context, client marketClient, janitor deleteScheduler, cfg config.Discord) *Handler {
	return &Handler{
		rootCtx:  rootCtx,
		client:   client,
		janitor:  janitor,
		renderer: view.NewRenderer(cfg.DeleteAfter),
		cfg:      cfg,
	}
}

// OnInteraction is the discordgo handler entry point.
func (h *Handler) OnInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(s, i)
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	default:
	}
}

func (h *Handler) handleCommand(s replySession, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	metrics.CommandsTotal.WithLabelValues(name).Inc()

	ctx := h.commandContext(i, name)

	switch name {
	case commandWeekLookup:
		h.handleWeekLookup(ctx, s, i)
	case commandItemLookup:
		h.handleItemLookup(ctx, s, i)
	case commandStoreCurrentDebug:
		h.handleStoreCurrentDebug(ctx, s, i)
	case commandStoreListDebug:
		h.handleStoreListDebug(ctx, s, i)
	default:
		logger(ctx).Warn("unknown command")
	}
}

// commandContext derives a per-interaction context with a fresh trace ID and
// the invoking user attached to both the context and the logger.
func (h *Handler) commandContext(i *discordgo.InteractionCreate, command string) context.Context {
	traceID := contextx.TraceID(xid.New().String())
	ctx := contextx.WithTraceID(h.rootCtx, traceID)

	attrs := []any{
		slog.String(logx.FieldTraceID, traceID.String()),
		slog.String(logx.FieldCommand, command),
	}

	if userID := interactionUserID(i); userID != "" {
		ctx = contextx.WithUserID(ctx, contextx.UserID(userID))
		attrs = append(attrs, slog.String(logx.FieldUserID, userID))
	}

	return contextx.WithLogger(ctx, logger(ctx).With(attrs...))
}

// interactionUserID works for both guild interactions (Member) and DMs
// (User).
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}

	return ""
}

// optionMap flattens the interaction options for access by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, option := range options {
		m[option.Name] = option
	}

	return m
}
