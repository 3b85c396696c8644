// Package craft implements the crafting workflow: pick a mode, pick a
// template, acquire materials, then construct (droids and vehicles have an
// extra programming or assembly step).
package craft

import (
	"context"
	"errors"
	"fmt"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature"
	"github.com/keshon/swrpg-bot/internal/storage"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

var constructSkill = map[display.CraftingMode]string{
	display.CraftArmor:      "Mechanics",
	display.CraftDroid:      "Mechanics",
	display.CraftGadget:     "Mechanics",
	display.CraftVehicle:    "Mechanics",
	display.CraftWeapon:     "Mechanics",
	display.CraftLightsaber: "Mechanics",
	display.CraftCybernetic: "Medicine",
}

// Service holds the crafting handlers.
type Service struct {
	Dice  *display.Table
	Store *storage.Storage
}

// Main shows the mode menu.
func (s *Service) Main(ctx context.Context, inv *cmd.Invocation) error {
	card := chat.NewCard("Crafting").
		Line(display.CraftArmorMacro).
		Line(display.CraftCyberMacro).
		Line(display.CraftDroidMacro).
		Line(display.CraftGadgetMacro).
		Line(display.CraftSaberMacro).
		Line(display.CraftVehicleMacro).
		Line(display.CraftWeaponMacro)
	return chat.Reply(ctx, inv, card.String())
}

// Mode starts crafting in the mode given as the first argument.
func (s *Service) Mode(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	n, err := inv.Int(0, int(display.CraftNone))
	mode := display.CraftingMode(n)
	if err != nil || !mode.Valid() {
		return c.Reply(ctx, chat.Usage(display.Call("craft-mode"), "<0-6>", "Pick a mode from "+display.CraftingMain+"."))
	}
	if _, err := s.Store.SetCraftMode(c.ChannelID(), mode); err != nil {
		return err
	}

	card := chat.NewCard("Crafting: "+mode.String()).
		Line("Select a template: `"+display.Call("craft-template")+" <difficulty 0-5> <price> <rarity> <name>`")
	switch mode {
	case display.CraftDroid:
		card.Line("Droids need programming afterwards: `" + display.Call("craft-program") + " <skill> [ranks]`")
	case display.CraftVehicle:
		card.Line("Vehicles need final assembly: `" + display.Call("craft-assemble") + " [silhouette]`")
	}
	return c.Reply(ctx, card.String())
}

// Template records the item to craft.
func (s *Service) Template(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	const synopsis = "<difficulty 0-5> <price> <rarity> <name>"
	usage := func(problem string) error {
		return c.Reply(ctx, chat.Usage(display.Call("craft-template"), synopsis, problem))
	}

	sess, err := s.Store.Session(c.ChannelID())
	if err != nil {
		return err
	}
	if !sess.CraftMode.Valid() {
		return usage("Pick a crafting mode first: " + display.CraftingMain)
	}

	diff, err := inv.Int(0, -1)
	if err != nil || !display.Difficulty(diff).Valid() {
		return usage("difficulty must be 0-5")
	}
	price, err := inv.Int(1, -1)
	if err != nil || price < 0 {
		return usage("price must be a non-negative number")
	}
	rarity, err := inv.Int(2, -1)
	if err != nil || rarity < 0 {
		return usage("rarity must be a non-negative number")
	}
	name := inv.Rest(3)
	if name == "" {
		return usage("missing template name")
	}

	tpl := storage.CraftTemplate{Name: name, Difficulty: display.Difficulty(diff), Price: price, Rarity: rarity}
	if _, err := s.Store.SetTemplate(c.ChannelID(), tpl); err != nil {
		return err
	}

	dice, err := s.Dice.Difficulty(tpl.Difficulty)
	if err != nil {
		return err
	}
	card := chat.NewCard(sess.CraftMode.String()+" template").
		Field("Name", tpl.Name).
		Field("Difficulty", dice).
		Field("Materials", feature.Credits(tpl.Price)).
		Field("Rarity", fmt.Sprint(tpl.Rarity)).
		Line(display.CraftAcquire + " " + display.CraftConstruct)
	return c.Reply(ctx, card.String())
}

// Acquire shows the check and cost of buying the template's materials.
func (s *Service) Acquire(ctx context.Context, inv *cmd.Invocation) error {
	c, sess, err := s.withTemplate(ctx, inv, "craft-acquire")
	if err != nil || sess == nil {
		return err
	}
	tpl := sess.Template
	check, err := feature.CheckLine(s.Dice, "Negotiation or Streetwise", display.FromRarity(tpl.Rarity))
	if err != nil {
		return err
	}
	card := chat.NewCard("Acquire materials: "+tpl.Name).
		Field("Cost", feature.Credits(tpl.Price)).
		Line(check).
		Line(display.CraftConstruct)
	return c.Reply(ctx, card.String())
}

// Construct shows the construction check for the current template.
func (s *Service) Construct(ctx context.Context, inv *cmd.Invocation) error {
	c, sess, err := s.withTemplate(ctx, inv, "craft-construct")
	if err != nil || sess == nil {
		return err
	}
	tpl := sess.Template
	check, err := feature.CheckLine(s.Dice, constructSkill[sess.CraftMode], tpl.Difficulty)
	if err != nil {
		return err
	}
	card := chat.NewCard("Construct: " + tpl.Name).Line(check)
	switch sess.CraftMode {
	case display.CraftDroid:
		card.Line("Next: `" + display.Call("craft-program") + " <skill> [ranks]`")
	case display.CraftVehicle:
		card.Line("Next: `" + display.Call("craft-assemble") + " [silhouette]`")
	}
	return c.Reply(ctx, card.String())
}

// Program shows the check to install a skill program into a droid.
func (s *Service) Program(ctx context.Context, inv *cmd.Invocation) error {
	c, sess, err := s.inMode(ctx, inv, display.CraftDroid)
	if err != nil || sess == nil {
		return err
	}
	skill := inv.Arg(0)
	ranks, err := inv.Int(1, 1)
	if skill == "" || err != nil || ranks < 1 {
		return c.Reply(ctx, chat.Usage(display.Call("craft-program"), "<skill> [ranks]", "ranks must be 1 or more"))
	}
	check, err := feature.CheckLine(s.Dice, "Computers", display.Clamp(int(display.Easy)+min(ranks, int(display.Formidable))))
	if err != nil {
		return err
	}
	card := chat.NewCard("Program droid").
		Field("Skill", fmt.Sprintf("%s %d", skill, ranks)).
		Line(check)
	return c.Reply(ctx, card.String())
}

// Assemble shows the final assembly check of a vehicle by silhouette.
func (s *Service) Assemble(ctx context.Context, inv *cmd.Invocation) error {
	c, sess, err := s.inMode(ctx, inv, display.CraftVehicle)
	if err != nil || sess == nil {
		return err
	}
	sil, err := inv.Int(0, 1)
	if err != nil || sil < 0 {
		return c.Reply(ctx, chat.Usage(display.Call("craft-assemble"), "[silhouette]", "silhouette must be a non-negative number"))
	}
	check, err := feature.CheckLine(s.Dice, "Mechanics", assemblyDifficulty(sil))
	if err != nil {
		return err
	}
	card := chat.NewCard("Assemble vehicle").
		Field("Silhouette", fmt.Sprint(sil)).
		Line(check)
	return c.Reply(ctx, card.String())
}

func assemblyDifficulty(silhouette int) display.Difficulty {
	switch {
	case silhouette <= 2:
		return display.Average
	case silhouette <= 4:
		return display.Hard
	}
	return display.Daunting
}

// withTemplate loads the session and replies with a hint when no template is
// selected. A nil session with a nil error means the hint was sent.
func (s *Service) withTemplate(ctx context.Context, inv *cmd.Invocation, command string) (*chat.Context, *storage.Session, error) {
	c, err := chat.From(inv)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.Store.Session(c.ChannelID())
	if err != nil {
		return c, nil, err
	}
	if _, err := sess.RequireTemplate(); errors.Is(err, storage.ErrNoTemplate) {
		hint := chat.NewCard(display.Call(command)).
			Line("No template selected yet. Start from " + display.CraftingMain)
		return c, nil, c.Reply(ctx, hint.String())
	}
	return c, &sess, nil
}

// inMode loads the session and replies with a hint when the channel is not
// crafting in mode.
func (s *Service) inMode(ctx context.Context, inv *cmd.Invocation, mode display.CraftingMode) (*chat.Context, *storage.Session, error) {
	c, err := chat.From(inv)
	if err != nil {
		return nil, nil, err
	}
	sess, err := s.Store.Session(c.ChannelID())
	if err != nil {
		return c, nil, err
	}
	if sess.CraftMode != mode {
		hint := chat.NewCard(mode.String() + " crafting only").Line(display.CraftMode(mode))
		return c, nil, c.Reply(ctx, hint.String())
	}
	return c, &sess, nil
}
