package discord

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"github.com/keshon/swrpg-bot/pkg/retrylimit"
)

// MaxMessageLength is Discord's limit on message content.
const MaxMessageLength = 2000

const sendAttempts = 3

type channelMessenger interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Sender delivers replies through the Discord REST API, paced by an adaptive
// limiter and retried on rate limits and server errors.
type Sender struct {
	api channelMessenger
	lim *retrylimit.AdaptiveLimiter
}

// NewSender returns a Sender starting at perSecond messages per second.
func NewSender(api channelMessenger, perSecond float64) *Sender {
	r := rate.Limit(perSecond)
	return &Sender{
		api: api,
		lim: retrylimit.NewAdaptiveLimiter(r, 1, r*2, 1, 0.5),
	}
}

// Send implements chat.Sender. Content longer than MaxMessageLength goes out
// as several messages.
func (s *Sender) Send(ctx context.Context, channelID, content string) error {
	for _, part := range splitMessage(content, MaxMessageLength) {
		err := retrylimit.WithRetryMax(ctx, func() error {
			_, err := s.api.ChannelMessageSend(channelID, part)
			return classify(err)
		}, s.lim, sendAttempts)
		if err != nil {
			return err
		}
	}
	return nil
}

type restError struct {
	*discordgo.RESTError
}

func (e restError) StatusCode() int { return e.Response.StatusCode }
func (e restError) Unwrap() error   { return e.RESTError }

// classify maps REST failures onto retry semantics: client errors other than
// 429 are fatal.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var re *discordgo.RESTError
	if !errors.As(err, &re) || re.Response == nil {
		return err
	}
	code := re.Response.StatusCode
	if code >= 400 && code < 500 && code != http.StatusTooManyRequests {
		return retrylimit.Fatal(err)
	}
	return restError{re}
}

// splitMessage cuts content into chunks of at most limit bytes, preferring
// line boundaries and never splitting a UTF-8 sequence.
func splitMessage(content string, limit int) []string {
	if len(content) <= limit {
		return []string{content}
	}
	var parts []string
	for len(content) > limit {
		cut := strings.LastIndexByte(content[:limit], '\n')
		if cut <= 0 {
			cut = limit
			for cut > 0 && !utf8Start(content[cut]) {
				cut--
			}
			if cut == 0 {
				cut = limit
			}
		}
		parts = append(parts, content[:cut])
		content = strings.TrimPrefix(content[cut:], "\n")
	}
	if content != "" {
		parts = append(parts, content)
	}
	return parts
}

func utf8Start(b byte) bool { return b&0xC0 != 0x80 }
