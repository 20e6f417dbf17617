package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"scmm_bot/internal/config"
	"scmm_bot/internal/infrastructure/scmm"
	"scmm_bot/internal/transport/discord"
	"scmm_bot/internal/transport/discord/handler"
	"scmm_bot/internal/worker"
	"scmm_bot/pkg/contextx"
	"scmm_bot/pkg/logx"
	"scmm_bot/pkg/ops"
)

const (
	appName    = "scmm-bot"
	appVersion = "1.0.0"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(log)

	log = log.With(
		slog.String(logx.FieldAppName, appName),
		slog.String(logx.FieldAppVersion, appVersion),
	)
	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	session, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("discord session: %w", err)
	}

	client := scmm.NewClient(cfg.SCMM)
	janitor := worker.NewJanitor(session)
	commandHandler := handler.New(ctx, client, janitor, cfg.Discord)
	bot := discord.NewBot(session, commandHandler, cfg.Discord)

	opsServer := ops.NewServer(cfg.Ops.ListenAddress, ops.Options{
		Name:    appName,
		Version: appVersion,
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return opsServer.Run(groupCtx)
	})

	group.Go(func() error {
		return bot.Run(groupCtx)
	})

	err = group.Wait()

	// Pending deletions are abandoned on shutdown, not fired early.
	janitor.Stop()

	if err != nil {
		return fmt.Errorf("group.Wait: %w", err)
	}

	return nil
}
