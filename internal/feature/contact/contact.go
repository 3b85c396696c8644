// Package contact renders checks against a character's contact network.
package contact

import (
	"context"
	"fmt"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Service holds the contact handler.
type Service struct {
	Dice *display.Table
}

// Investigate renders a Streetwise check to dig up information of the given
// rarity. Each contact in the network adds a boost die.
func (s *Service) Investigate(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	rarity, errR := inv.Int(0, -1)
	contacts, errC := inv.Int(1, 0)
	if errR != nil || errC != nil || rarity < 0 || contacts < 0 {
		return c.Reply(ctx, chat.Usage(display.Call("contact"), "<rarity> [contacts]", "Use "+display.ContactInvestigate+"."))
	}
	if contacts > display.MaxDice {
		return c.Reply(ctx, chat.Usage(display.Call("contact"), "<rarity> [contacts]", fmt.Sprintf("at most %d contacts", display.MaxDice)))
	}

	check, err := feature.CheckLine(s.Dice, "Streetwise", display.FromRarity(rarity),
		display.DieCount{Die: display.Boost, N: contacts})
	if err != nil {
		return err
	}
	card := chat.NewCard("Contact Network").
		Field("Information rarity", fmt.Sprint(rarity)).
		Field("Contacts", fmt.Sprint(contacts)).
		Line(check).
		Line(display.PartyLocation)
	return c.Reply(ctx, card.String())
}
