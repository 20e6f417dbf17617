// Package discord owns the gateway session lifecycle and slash-command
// registration.
package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"scmm_bot/internal/config"
	"scmm_bot/internal/transport/discord/handler"
	"scmm_bot/pkg/contextx"
	"scmm_bot/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NewSession builds a gateway session for the bot token. Slash commands need
// no privileged intents.
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discordgo.New: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds

	return session, nil
}

type Bot struct {
	session *discordgo.Session
	handler *handler.Handler
	cfg     config.Discord
}

func NewBot(session *discordgo.Session, h *handler.Handler, cfg config.Discord) *Bot {
	return &Bot{
		session: session,
		handler: h,
		cfg:     cfg,
	}
}

// Run opens the gateway connection, registers the slash commands, and blocks
// until ctx is cancelled. Commands are removed again on shutdown so stale
// entries never linger in the guild.
func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		logger(ctx).Info(
			"logged in",
			slog.String("username", r.User.Username),
			slog.String(logx.FieldUserID, r.User.ID),
		)
	})
	b.session.AddHandler(b.handler.OnInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("session.Open: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			logger(ctx).Warn("close session", logx.Error(err))
		}
	}()

	registered, err := b.registerCommands(ctx)
	if err != nil {
		return err
	}

	<-ctx.Done()

	b.unregisterCommands(registered)

	return nil
}

func (b *Bot) registerCommands(ctx context.Context) ([]*discordgo.ApplicationCommand, error) {
	appID := b.session.State.User.ID
	commands := handler.Commands()

	registered := make([]*discordgo.ApplicationCommand, 0, len(commands))
	for _, command := range commands {
		created, err := b.session.ApplicationCommandCreate(appID, b.cfg.GuildID, command)
		if err != nil {
			return nil, fmt.Errorf("register command %q: %w", command.Name, err)
		}

		registered = append(registered, created)
	}

	scope := "globally"
	if b.cfg.GuildID != "" {
		scope = "guild " + b.cfg.GuildID
	}
	logger(ctx).Info(
		"registered commands",
		slog.Int("count", len(registered)),
		slog.String("scope", scope),
	)

	return registered, nil
}

func (b *Bot) unregisterCommands(registered []*discordgo.ApplicationCommand) {
	appID := b.session.State.User.ID
	for _, command := range registered {
		if err := b.session.ApplicationCommandDelete(appID, b.cfg.GuildID, command.ID); err != nil {
			slog.Default().Warn("unregister command", slog.String("command", command.Name), logx.Error(err))
		}
	}
}
