// Package discord hosts the dispatcher on a Discord gateway connection.
package discord

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/config"
	"github.com/keshon/swrpg-bot/internal/router"
	"github.com/keshon/swrpg-bot/internal/version"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Bot is a Discord host for the command router.
type Bot struct {
	dg     *discordgo.Session
	router *router.Router
	sender *Sender
	ctx    context.Context
}

// NewBot creates the gateway session and the router over table. It does not
// connect; call Run.
func NewBot(cfg *config.Config, table *cmd.Registry) (*Bot, error) {
	if err := cfg.RequireDiscord(); err != nil {
		return nil, err
	}
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// One message at a time, in arrival order.
	dg.SyncEvents = true
	dg.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	sender := NewSender(dg, cfg.DiscordSendRate)
	return &Bot{
		dg:     dg,
		router: router.New(table, sender),
		sender: sender,
		ctx:    context.Background(),
	}, nil
}

// Run connects and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onMessageCreate)

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, closing Discord session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg(version.Banner())
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	selfID := ""
	if s.State != nil && s.State.User != nil {
		selfID = s.State.User.ID
	}
	msg, ok := messageFromEvent(selfID, m)
	if !ok {
		return
	}
	handle(b.ctx, b.router, msg)
}

// messageFromEvent converts a gateway event into a chat message. Events from
// this bot or any other bot are dropped.
func messageFromEvent(selfID string, m *discordgo.MessageCreate) (*chat.Message, bool) {
	if m == nil || m.Message == nil || m.Author == nil {
		return nil, false
	}
	if m.Author.ID == selfID || m.Author.Bot {
		return nil, false
	}
	return &chat.Message{
		Type:       chat.Classify(m.Content),
		Content:    m.Content,
		ChannelID:  m.ChannelID,
		AuthorID:   m.Author.ID,
		AuthorName: m.Author.Username,
	}, true
}

type messageRouter interface {
	Route(ctx context.Context, msg *chat.Message) error
}

// handle routes msg and contains any handler failure, panics included, so the
// session keeps serving other messages.
func handle(ctx context.Context, r messageRouter, msg *chat.Message) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().
				Interface("panic", p).
				Str("channel", msg.ChannelID).
				Str("content", msg.Content).
				Bytes("stack", debug.Stack()).
				Msg("Command panicked")
		}
	}()

	if err := r.Route(ctx, msg); err != nil {
		log.Error().
			Err(err).
			Str("channel", msg.ChannelID).
			Str("user", msg.AuthorName).
			Str("content", msg.Content).
			Msg("Error running command")
	}
}
