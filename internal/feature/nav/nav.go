// Package nav renders terrain navigation and chase checks.
package nav

import (
	"context"
	"fmt"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Service holds the navigation handlers.
type Service struct {
	Dice *display.Table
}

// Main renders a Piloting check through hazardous terrain. Arguments are the
// vehicle's current speed, its silhouette and the hazard level (0-5, default
// Average). Every point of speed above silhouette adds a setback die.
func (s *Service) Main(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	const synopsis = "<speed> <silhouette> [hazard 0-5]"
	speed, errSpeed := inv.Int(0, -1)
	sil, errSil := inv.Int(1, -1)
	hazard, errHazard := inv.Int(2, int(display.Average))
	if errSpeed != nil || errSil != nil || speed < 0 || sil < 0 {
		return c.Reply(ctx, chat.Usage(display.Call("nav-ui"), synopsis, "Use "+display.NavMain+" with a vehicle targeted."))
	}
	if errHazard != nil || !display.Difficulty(hazard).Valid() {
		return c.Reply(ctx, chat.Usage(display.Call("nav-ui"), synopsis, "hazard must be 0-5"))
	}

	setback := max(0, speed-sil)
	if setback > display.MaxDice {
		return c.Reply(ctx, chat.Usage(display.Call("nav-ui"), synopsis, fmt.Sprintf("speed may exceed silhouette by at most %d", display.MaxDice)))
	}
	check, err := feature.CheckLine(s.Dice, "Piloting", display.Difficulty(hazard),
		display.DieCount{Die: display.Setback, N: setback})
	if err != nil {
		return err
	}
	card := chat.NewCard("Terrain Navigation").
		Field("Speed", fmt.Sprint(speed)).
		Field("Silhouette", fmt.Sprint(sil)).
		Line(check).
		Line(display.NavChase)
	return c.Reply(ctx, card.String())
}

// Chase renders the opposed chase check. With both speeds given, the faster
// side gets one boost die per point of difference.
func (s *Service) Chase(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	pursuer, errP := inv.Int(0, 0)
	quarry, errQ := inv.Int(1, 0)
	if errP != nil || errQ != nil || pursuer < 0 || quarry < 0 {
		return c.Reply(ctx, chat.Usage(display.Call("nav-chase"), "[pursuer-speed] [quarry-speed]", "speeds must be non-negative numbers"))
	}

	pursuerBoost := max(0, pursuer-quarry)
	quarryBoost := max(0, quarry-pursuer)
	if pursuerBoost > display.MaxDice || quarryBoost > display.MaxDice {
		return c.Reply(ctx, chat.Usage(display.Call("nav-chase"), "[pursuer-speed] [quarry-speed]", fmt.Sprintf("speeds may differ by at most %d", display.MaxDice)))
	}

	pursuerCheck, err := feature.CheckLine(s.Dice, "Pursuer Piloting", display.Average,
		display.DieCount{Die: display.Boost, N: pursuerBoost})
	if err != nil {
		return err
	}
	quarryCheck, err := feature.CheckLine(s.Dice, "Quarry Piloting", display.Average,
		display.DieCount{Die: display.Boost, N: quarryBoost})
	if err != nil {
		return err
	}
	card := chat.NewCard("Chase").
		Line(pursuerCheck).
		Line(quarryCheck).
		Line("Net " + s.Dice.Dice(display.Success, 1) + " beyond the other side closes or opens one range band.")
	return c.Reply(ctx, card.String())
}
