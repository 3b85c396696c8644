// Package chattest provides a recording chat.Sender for tests.
package chattest

import (
	"context"
	"sync"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Sent is one recorded delivery.
type Sent struct {
	ChannelID string
	Content   string
}

// Recorder records every message it is asked to send.
type Recorder struct {
	mu   sync.Mutex
	sent []Sent
	Err  error
}

// Send implements chat.Sender.
func (r *Recorder) Send(_ context.Context, channelID, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, Sent{ChannelID: channelID, Content: content})
	return nil
}

// Sent returns a copy of everything recorded so far.
func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// Last returns the most recent content, or "" if nothing was sent.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return ""
	}
	return r.sent[len(r.sent)-1].Content
}

// Invocation builds an invocation for channelID whose replies land in r.
func (r *Recorder) Invocation(channelID string, args ...string) *cmd.Invocation {
	return &cmd.Invocation{
		Args: args,
		Data: &chat.Context{
			Sender:  r,
			Message: &chat.Message{Type: chat.TypeAPI, ChannelID: channelID},
		},
	}
}
