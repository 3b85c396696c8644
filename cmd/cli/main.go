package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keshon/swrpg-bot/internal/commands"
	"github.com/keshon/swrpg-bot/internal/config"
	"github.com/keshon/swrpg-bot/internal/console"
	"github.com/keshon/swrpg-bot/internal/logging"
	v "github.com/keshon/swrpg-bot/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var user string

	root := &cobra.Command{
		Use:          "swrpg",
		Short:        "Play-test the SWRPG chat commands from a terminal",
		Version:      v.String(),
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&user, "user", "gm", "author name for console messages")

	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Read chat lines from stdin until EOF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withConsole(cmd, user, func(c *console.Console) error {
				return c.Run(cmd.Context(), cmd.InOrStdin())
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "exec <line...>",
		Short: "Post a single chat line, e.g. exec '!swrpg-ui'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConsole(cmd, user, func(c *console.Console) error {
				return c.Exec(cmd.Context(), strings.Join(args, " "))
			})
		},
	})

	return root
}

func withConsole(cmd *cobra.Command, user string, fn func(*console.Console) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.SetupTo(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogPretty)

	table, store, err := commands.Setup(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close storage")
		}
	}()

	log.Info().Msg(v.Banner())
	return fn(console.New(table, cmd.OutOrStdout(), user))
}
