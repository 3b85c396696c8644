// Package trade renders buying and selling checks for an item.
package trade

import (
	"context"
	"fmt"
	"strconv"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

const synopsis = "<item> <price> [rarity] [modifiers...]"

// Service holds the trade handler.
type Service struct {
	Dice *display.Table
}

// Item renders the Negotiation check to buy an item and what it sells for.
// Location modifiers (e.g. +1 for remote worlds, -1 for trade hubs) are added
// to the rarity before it is turned into a difficulty.
func (s *Service) Item(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	usage := func(problem string) error {
		return c.Reply(ctx, chat.Usage(display.Call("trade"), synopsis, problem+" Location modifiers: "+display.TradeLocation))
	}

	item := inv.Arg(0)
	if item == "" {
		return usage("missing item.")
	}
	price, err := inv.Int(1, -1)
	if err != nil || price < 0 {
		return usage("price must be a non-negative number.")
	}
	rarity, err := inv.Int(2, 0)
	if err != nil || rarity < 0 {
		return usage("rarity must be a non-negative number.")
	}
	modified := rarity
	for i := 3; i < len(inv.Args); i++ {
		m, err := strconv.Atoi(inv.Args[i])
		if err != nil {
			return usage(fmt.Sprintf("modifier %q is not a number.", inv.Args[i]))
		}
		modified += m
	}

	check, err := feature.CheckLine(s.Dice, "Negotiation", display.FromRarity(modified))
	if err != nil {
		return err
	}
	card := chat.NewCard("Trade: "+item).
		Field("Price", feature.Credits(price)).
		Field("Rarity", fmt.Sprintf("%d (modified %d)", rarity, modified)).
		Line(check).
		Field("Sells for", feature.Credits(price/4)+" ("+s.Dice.Dice(display.Advantage, 1)+" adds 5%)")
	return c.Reply(ctx, card.String())
}
