// Package menu renders the top-level assistant menu.
package menu

import (
	"context"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Main lists every feature entry point.
func Main(ctx context.Context, inv *cmd.Invocation) error {
	card := chat.NewCard("Star Wars RPG").
		Line(display.CraftingMain).
		Line(display.NavMain + " " + display.NavChase).
		Line(display.SliceMain).
		Line(display.SocialMain).
		Line(display.ContactInvestigate).
		Line(display.RepairItem).
		Line(display.TradeItem).
		Line(display.PartyLocation)
	return chat.Reply(ctx, inv, card.String())
}
