// Package repair renders item repair checks.
package repair

import (
	"context"
	"strings"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

type damage struct {
	difficulty display.Difficulty
	costPct    int
}

// Damage levels and what they cost to fix.
var damageLevels = map[string]damage{
	"minor":    {display.Easy, 25},
	"moderate": {display.Average, 50},
	"major":    {display.Hard, 75},
}

// Service holds the repair handler.
type Service struct {
	Dice *display.Table
}

// Item renders the Mechanics check to repair an item and the cost of paying a
// technician instead. Damage defaults to minor.
func (s *Service) Item(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	const synopsis = "<item> <price> [minor|moderate|major]"

	item := inv.Arg(0)
	price, err := inv.Int(1, -1)
	if item == "" || err != nil || price < 0 {
		return c.Reply(ctx, chat.Usage(display.Call("repair"), synopsis, "Use "+display.RepairItem+"."))
	}
	level := strings.ToLower(inv.Arg(2))
	if level == "" {
		level = "minor"
	}
	dmg, ok := damageLevels[level]
	if !ok {
		return c.Reply(ctx, chat.Usage(display.Call("repair"), synopsis, "unknown damage level "+inv.Arg(2)))
	}

	check, err := feature.CheckLine(s.Dice, "Mechanics", dmg.difficulty)
	if err != nil {
		return err
	}
	card := chat.NewCard("Repair: "+item).
		Field("Damage", level).
		Line(check).
		Field("Technician", feature.Credits(price*dmg.costPct/100))
	return c.Reply(ctx, card.String())
}
