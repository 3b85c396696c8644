// Package router is the single entry point for inbound chat: it filters
// command-shaped messages, parses them and invokes the matching entry of the
// dispatch table.
package router

import (
	"context"
	"strings"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Parsed is a command extracted from one message.
type Parsed struct {
	Name string
	Args []string
}

// Router routes messages to the dispatch table. It holds no mutable state, so
// overlapping calls to Route are safe.
type Router struct {
	prefix string
	table  *cmd.Registry
	sender chat.Sender
}

// Option configures a Router.
type Option func(*Router)

// WithPrefix overrides the reserved command prefix.
func WithPrefix(prefix string) Option {
	return func(r *Router) { r.prefix = strings.ToLower(prefix) }
}

// New returns a router over table whose handlers reply through sender.
func New(table *cmd.Registry, sender chat.Sender, opts ...Option) *Router {
	r := &Router{prefix: display.CommandPrefix, table: table, sender: sender}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// IsCommand reports whether msg is eligible for dispatch.
func (r *Router) IsCommand(msg *chat.Message) bool {
	if msg == nil || msg.Type != chat.TypeAPI {
		return false
	}
	_, ok := r.Parse(msg.Content)
	return ok
}

// Parse splits content into a lowercased, prefix-stripped command name and the
// remaining whitespace-delimited arguments in their original case. It reports
// false when content does not start with the prefix.
func (r *Router) Parse(content string) (Parsed, bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 || !strings.HasPrefix(content, fields[0]) {
		return Parsed{}, false
	}
	head := strings.ToLower(fields[0])
	if !strings.HasPrefix(head, r.prefix) {
		return Parsed{}, false
	}
	return Parsed{
		Name: strings.TrimPrefix(head, r.prefix),
		Args: fields[1:],
	}, true
}

// Route handles one inbound message. Non-commands, unknown names and entries
// that cannot be invoked are ignored without output. The only error returned
// is the one produced by the invoked handler itself.
func (r *Router) Route(ctx context.Context, msg *chat.Message) error {
	if msg == nil || msg.Type != chat.TypeAPI {
		return nil
	}
	p, ok := r.Parse(msg.Content)
	if !ok {
		return nil
	}
	c, ok := r.table.Lookup(p.Name)
	if !ok || !cmd.Invocable(c) {
		return nil
	}
	return c.Run(ctx, &cmd.Invocation{
		Args: p.Args,
		Data: &chat.Context{Sender: r.sender, Message: msg},
	})
}
