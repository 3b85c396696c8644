// Package chat defines the host-neutral message and reply types shared by the
// router, the feature handlers and the host adapters.
package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Message types. Only TypeAPI messages are eligible for routing.
const (
	TypeAPI     = "api"
	TypeGeneral = "general"
)

// ErrNoContext is returned when a handler runs without a reply context.
var ErrNoContext = errors.New("chat: invocation carries no reply context")

// Message is one inbound chat event. It lives for a single routing cycle.
type Message struct {
	Type       string
	Content    string
	ChannelID  string
	AuthorID   string
	AuthorName string
}

// Classify returns the message type the host assigns to content: script
// commands (leading '!') are API messages, anything else is general chat.
func Classify(content string) string {
	if strings.HasPrefix(content, "!") {
		return TypeAPI
	}
	return TypeGeneral
}

// Sender delivers text to a channel.
type Sender interface {
	Send(ctx context.Context, channelID, content string) error
}

// Context is the reply context attached to every invocation.
type Context struct {
	Sender  Sender
	Message *Message
}

// Reply sends content back to the channel the message came from.
func (c *Context) Reply(ctx context.Context, content string) error {
	return c.Sender.Send(ctx, c.Message.ChannelID, content)
}

// ChannelID returns the originating channel.
func (c *Context) ChannelID() string { return c.Message.ChannelID }

// Reply sends content through the invocation's reply context.
func Reply(ctx context.Context, inv *cmd.Invocation, content string) error {
	c, err := From(inv)
	if err != nil {
		return err
	}
	return c.Reply(ctx, content)
}

// From extracts the reply context from an invocation.
func From(inv *cmd.Invocation) (*Context, error) {
	if inv == nil {
		return nil, ErrNoContext
	}
	c, ok := inv.Data.(*Context)
	if !ok || c == nil || c.Sender == nil || c.Message == nil {
		return nil, ErrNoContext
	}
	return c, nil
}
