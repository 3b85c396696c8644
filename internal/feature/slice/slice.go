// Package slice renders slicing (computer intrusion) encounters. Each channel
// tracks the security level of the system being sliced.
package slice

import (
	"context"

	"github.com/keshon/swrpg-bot/internal/chat"
	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature"
	"github.com/keshon/swrpg-bot/internal/storage"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// action is a slicing action with a fixed difficulty.
type action struct {
	title      string
	difficulty display.Difficulty
	note       string
}

var (
	activateAction = action{"Activate Security Program", display.Average, "Succeeds against intruders already in the system."}
	backdoorAction = action{"Create Backdoor", display.Hard, "Requires access. Later access checks ignore the security level."}
	disableAction  = action{"Disable Security Program", display.Average, "Each disabled program lowers the pressure on the slicer."}
	enactAction    = action{"Enact Command", display.Easy, "Requires access."}
	expelAction    = action{"Expel User", display.Hard, "Requires access. Opposed by the target's Computers."}
	lockdownAction = action{"Lockdown", display.Hard, "Requires access. Every user is locked out until restart."}
	restartAction  = action{"Restart System", display.Hard, "Clears all access, including your own."}
	traceAction    = action{"Trace User", display.Average, "Requires access. Reveals the target's location."}
)

// Service holds the slicing handlers.
type Service struct {
	Dice  *display.Table
	Store *storage.Storage
}

// Main shows the current security level and every slicing action.
func (s *Service) Main(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	sess, err := s.Store.Session(c.ChannelID())
	if err != nil {
		return err
	}
	return s.renderMain(ctx, c, sess)
}

func (s *Service) renderMain(ctx context.Context, c *chat.Context, sess storage.Session) error {
	dice, err := s.Dice.Difficulty(sess.SecurityLevel)
	if err != nil {
		return err
	}
	card := chat.NewCard("Slicing").
		Field("Security", sess.SecurityLevel.String()+" "+dice).
		Line(display.SliceDecrease+" "+display.SliceIncrease+" "+display.SliceReset).
		Line(display.SliceAccess+" "+display.SliceRestart).
		Line(display.SliceActivate+" "+display.SliceDisable).
		Line(display.SliceBackdoor+" "+display.SliceEnact).
		Line(display.SliceExpel+" "+display.SliceLockdown+" "+display.SliceTrace).
		Line(display.Asterisk + " requires access")
	return c.Reply(ctx, card.String())
}

// Access renders the Computers check against the system's security level.
func (s *Service) Access(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	sess, err := s.Store.Session(c.ChannelID())
	if err != nil {
		return err
	}
	check, err := feature.CheckLine(s.Dice, "Computers", sess.SecurityLevel)
	if err != nil {
		return err
	}
	card := chat.NewCard("Access System").Line(check).Line(display.SliceMain)
	return c.Reply(ctx, card.String())
}

func (s *Service) perform(ctx context.Context, inv *cmd.Invocation, a action) error {
	check, err := feature.CheckLine(s.Dice, "Computers", a.difficulty)
	if err != nil {
		return err
	}
	card := chat.NewCard(a.title).Line(check).Line(a.note)
	return chat.Reply(ctx, inv, card.String())
}

// ActivateSecurity renders the Activate Security Program check.
func (s *Service) ActivateSecurity(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, activateAction)
}

// Backdoor renders the Create Backdoor check.
func (s *Service) Backdoor(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, backdoorAction)
}

// DisableSecurity renders the Disable Security Program check.
func (s *Service) DisableSecurity(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, disableAction)
}

// Enact renders the Enact Command check.
func (s *Service) Enact(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, enactAction)
}

// Expel renders the Expel User check.
func (s *Service) Expel(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, expelAction)
}

// Lockdown renders the Lockdown check.
func (s *Service) Lockdown(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, lockdownAction)
}

// Restart renders the Restart System check.
func (s *Service) Restart(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, restartAction)
}

// Trace renders the Trace User check.
func (s *Service) Trace(ctx context.Context, inv *cmd.Invocation) error {
	return s.perform(ctx, inv, traceAction)
}

// IncreaseSecurity raises the security level by one.
func (s *Service) IncreaseSecurity(ctx context.Context, inv *cmd.Invocation) error {
	return s.adjust(ctx, inv, 1)
}

// DecreaseSecurity lowers the security level by one.
func (s *Service) DecreaseSecurity(ctx context.Context, inv *cmd.Invocation) error {
	return s.adjust(ctx, inv, -1)
}

// ResetSecurity restores the default security level.
func (s *Service) ResetSecurity(ctx context.Context, inv *cmd.Invocation) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	sess, err := s.Store.ResetSecurity(c.ChannelID())
	if err != nil {
		return err
	}
	return s.renderMain(ctx, c, sess)
}

func (s *Service) adjust(ctx context.Context, inv *cmd.Invocation, delta int) error {
	c, err := chat.From(inv)
	if err != nil {
		return err
	}
	sess, err := s.Store.AdjustSecurity(c.ChannelID(), delta)
	if err != nil {
		return err
	}
	return s.renderMain(ctx, c, sess)
}
