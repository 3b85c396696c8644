// Package social renders social skill checks and their result spends.
package social

import (
	"context"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

type skill struct {
	name    string
	command string
	opposed string
	spends  [4]string // advantage, threat, triumph, despair
}

var (
	charm = skill{"Charm", "social-charm", "Cool", [4]string{
		"Target recovers less strain this scene.",
		"Target grows suspicious of your motives.",
		"Target becomes a lasting friend.",
		"Target is offended and tells others.",
	}}
	coercion = skill{"Coercion", "social-coercion", "Discipline", [4]string{
		"Target suffers 1 strain.",
		"Target seeks a way out of the situation.",
		"Target is cowed for the rest of the session.",
		"Target becomes an enemy.",
	}}
	deception = skill{"Deception", "social-deception", "Discipline", [4]string{
		"The lie holds up a while longer.",
		"Target notices an inconsistency.",
		"Target acts on the lie immediately.",
		"Target sees through the lie entirely.",
	}}
	leadership = skill{"Leadership", "social-leadership", "Discipline", [4]string{
		"An ally gains a boost die on their next check.",
		"Allies hesitate before acting.",
		"Allies recover strain equal to your Presence.",
		"Allies lose confidence in you.",
	}}
	negotiation = skill{"Negotiation", "social-negotiation", "Negotiation", [4]string{
		"Improve the price by 5%.",
		"Worsen the price by 5%.",
		"Target throws in an extra favor.",
		"Target walks away from the deal.",
	}}
)

// Service holds the social handlers.
type Service struct {
	Dice *display.Table
}

// Main lists every social skill.
func (s *Service) Main(ctx context.Context, inv *cmd.Invocation) error {
	card := chat.NewCard("Social").
		Line(display.SocialCharm).
		Line(display.SocialCoercion).
		Line(display.SocialDeception).
		Line(display.SocialLeadership).
		Line(display.SocialNegotiation)
	return chat.Reply(ctx, inv, card.String())
}

// Charm renders an opposed Charm check.
func (s *Service) Charm(ctx context.Context, inv *cmd.Invocation) error {
	return s.check(ctx, inv, charm)
}

// Coercion renders an opposed Coercion check.
func (s *Service) Coercion(ctx context.Context, inv *cmd.Invocation) error {
	return s.check(ctx, inv, coercion)
}

// Deception renders an opposed Deception check.
func (s *Service) Deception(ctx context.Context, inv *cmd.Invocation) error {
	return s.check(ctx, inv, deception)
}

// Leadership renders a Leadership check.
func (s *Service) Leadership(ctx context.Context, inv *cmd.Invocation) error {
	return s.check(ctx, inv, leadership)
}

// Negotiation renders an opposed Negotiation check.
func (s *Service) Negotiation(ctx context.Context, inv *cmd.Invocation) error {
	return s.check(ctx, inv, negotiation)
}

// check reads an optional difficulty override (0-5, default Average).
func (s *Service) check(ctx context.Context, inv *cmd.Invocation, sk skill) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	lvl, err := inv.Int(0, int(display.Average))
	if err != nil || !display.Difficulty(lvl).Valid() {
		return c.Reply(ctx, chat.Usage(display.Call(sk.command), "[difficulty 0-5]", "difficulty must be 0-5"))
	}
	line, err := feature.CheckLine(s.Dice, sk.name+" vs "+sk.opposed, display.Difficulty(lvl))
	if err != nil {
		return err
	}
	card := chat.NewCard(sk.name).
		Line(line).
		Line(s.Dice.Dice(display.Advantage, 2) + " " + sk.spends[0]).
		Line(s.Dice.Dice(display.Threat, 2) + " " + sk.spends[1]).
		Line(s.Dice.Dice(display.Triumph, 1) + " " + sk.spends[2]).
		Line(s.Dice.Dice(display.Despair, 1) + " " + sk.spends[3]).
		Line(display.SocialMain)
	return c.Reply(ctx, card.String())
}
