// Package console hosts the dispatcher on a line-oriented terminal, one chat
// message per input line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/router"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// DefaultChannel is the channel every console message is posted to.
const DefaultChannel = "console"

// Writer is a chat.Sender that prints replies to an io.Writer.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer printing to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Send prints content followed by a blank line.
func (w *Writer) Send(_ context.Context, _ string, content string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintf(w.out, "%s\n\n", content)
	return err
}

// Console feeds terminal lines to a router.
type Console struct {
	router  *router.Router
	channel string
	user    string
}

// New returns a console over table, replying to out.
func New(table *cmd.Registry, out io.Writer, user string) *Console {
	return &Console{
		router:  router.New(table, NewWriter(out)),
		channel: DefaultChannel,
		user:    user,
	}
}

// Exec routes a single line as if it had been typed into the channel.
func (c *Console) Exec(ctx context.Context, line string) error {
	return c.router.Route(ctx, &chat.Message{
		Type:       chat.Classify(line),
		Content:    line,
		ChannelID:  c.channel,
		AuthorID:   c.user,
		AuthorName: c.user,
	})
}

// Run reads lines from in until EOF or ctx is done. Handler errors are logged
// and do not stop the loop.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errc:
			return err
		case line := <-lines:
			c.handle(ctx, strings.TrimRight(line, "\r"))
		}
	}
}

// handle runs one line and logs, rather than propagates, handler failures.
func (c *Console) handle(ctx context.Context, line string) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().Interface("panic", p).Str("content", line).Msg("Command panicked")
		}
	}()
	if err := c.Exec(ctx, line); err != nil {
		log.Error().Err(err).Str("content", line).Msg("Error running command")
	}
}
