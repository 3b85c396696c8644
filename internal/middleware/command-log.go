// Package middleware holds cmd.Middleware implementations shared by every host.
package middleware

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// WithCommandLogger logs every command execution at debug level, and failures
// at error level. The handler's error is passed through untouched.
func WithCommandLogger(logger zerolog.Logger) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			start := time.Now()
			err := c.Run(ctx, inv)

			ev := logger.Debug()
			if err != nil {
				ev = logger.Error().Err(err)
			}
			ev = ev.Str("command", c.Name()).
				Int("args", len(inv.Args)).
				Dur("took", time.Since(start))
			if cc, cerr := chat.From(inv); cerr == nil {
				ev = ev.Str("channel", cc.Message.ChannelID).Str("user", cc.Message.AuthorName)
			}
			ev.Msg("command executed")
			return err
		})
	}
}
