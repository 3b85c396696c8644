package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/keshon/swrpg-bot/internal/commands"
	"github.com/keshon/swrpg-bot/internal/config"
	"github.com/keshon/swrpg-bot/internal/discord"
	"github.com/keshon/swrpg-bot/internal/logging"
	v "github.com/keshon/swrpg-bot/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	log.Info().Str("version", v.String()).Msgf("Starting %v bot...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	table, store, err := commands.Setup(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up commands")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	bot, err := discord.NewBot(cfg, table)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Discord bot")
		return
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info().Str("signal", s.String()).Msg("Shutting down")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("Discord bot error")
		}
		cancel()
	}

	log.Info().Msg("Discord bot exited cleanly")
}
