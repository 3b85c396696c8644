// Package commands builds the dispatch table: every chat command name mapped
// to the feature handler that serves it.
package commands

import (
	"github.com/rs/zerolog/log"

	"github.com/keshon/swrpg-bot/internal/display"
	"github.com/keshon/swrpg-bot/internal/feature/contact"
	"github.com/keshon/swrpg-bot/internal/feature/craft"
	"github.com/keshon/swrpg-bot/internal/feature/menu"
	"github.com/keshon/swrpg-bot/internal/feature/nav"
	"github.com/keshon/swrpg-bot/internal/feature/repair"
	"github.com/keshon/swrpg-bot/internal/feature/slice"
	"github.com/keshon/swrpg-bot/internal/feature/social"
	"github.com/keshon/swrpg-bot/internal/feature/trade"
	"github.com/keshon/swrpg-bot/internal/storage"
	"github.com/keshon/swrpg-bot/pkg/cmd"
)

// Deps are the collaborators feature handlers need.
type Deps struct {
	Dice  *display.Table
	Store *storage.Storage
}

// Entry is one row of the dispatch table.
type Entry struct {
	Name        string
	Description string
	Handler     cmd.HandlerFunc
}

// Entries lists every supported command in registration order.
func Entries(d Deps) []Entry {
	var (
		contactSvc = &contact.Service{Dice: d.Dice}
		craftSvc   = &craft.Service{Dice: d.Dice, Store: d.Store}
		navSvc     = &nav.Service{Dice: d.Dice}
		repairSvc  = &repair.Service{Dice: d.Dice}
		sliceSvc   = &slice.Service{Dice: d.Dice, Store: d.Store}
		socialSvc  = &social.Service{Dice: d.Dice}
		tradeSvc   = &trade.Service{Dice: d.Dice}
	)
	return []Entry{
		{"contact", "Investigate through the contact network", contactSvc.Investigate},
		{"craft-acquire", "Acquire crafting materials", craftSvc.Acquire},
		{"craft-assemble", "Assemble a crafted vehicle", craftSvc.Assemble},
		{"craft-construct", "Construct the crafted item", craftSvc.Construct},
		{"craft-mode", "Start crafting in a mode", craftSvc.Mode},
		{"craft-program", "Program a crafted droid", craftSvc.Program},
		{"craft-template", "Select a crafting template", craftSvc.Template},
		{"craft-ui", "Crafting menu", craftSvc.Main},
		{"nav-chase", "Chase check", navSvc.Chase},
		{"nav-ui", "Terrain navigation check", navSvc.Main},
		{"repair", "Repair an item", repairSvc.Item},
		{"slice-access", "Access a system", sliceSvc.Access},
		{"slice-activate", "Activate a security program", sliceSvc.ActivateSecurity},
		{"slice-backdoor", "Create a backdoor", sliceSvc.Backdoor},
		{"slice-disable", "Disable a security program", sliceSvc.DisableSecurity},
		{"slice-enact", "Enact a command", sliceSvc.Enact},
		{"slice-expel", "Expel a user", sliceSvc.Expel},
		{"slice-lockdown", "Lock the system down", sliceSvc.Lockdown},
		{"slice-restart", "Restart the system", sliceSvc.Restart},
		{"slice-security-dec", "Decrease the security level", sliceSvc.DecreaseSecurity},
		{"slice-security-inc", "Increase the security level", sliceSvc.IncreaseSecurity},
		{"slice-security-reset", "Reset the security level", sliceSvc.ResetSecurity},
		{"slice-trace", "Trace a user", sliceSvc.Trace},
		{"slice-ui", "Slicing menu", sliceSvc.Main},
		{"social-ui", "Social menu", socialSvc.Main},
		{"social-charm", "Charm check", socialSvc.Charm},
		{"social-coercion", "Coercion check", socialSvc.Coercion},
		{"social-deception", "Deception check", socialSvc.Deception},
		{"social-leadership", "Leadership check", socialSvc.Leadership},
		{"social-negotiation", "Negotiation check", socialSvc.Negotiation},
		{"trade", "Buy or sell an item", tradeSvc.Item},
		{"ui", "Main menu", menu.Main},
	}
}

// NewTable registers entries, in order, into a fresh registry with every
// command wrapped by mws. A repeated name replaces the earlier entry.
func NewTable(entries []Entry, mws ...cmd.Middleware) *cmd.Registry {
	table := cmd.NewRegistry()
	for _, e := range entries {
		if table.Register(cmd.Apply(cmd.Func(e.Name, e.Description, e.Handler), mws...)) {
			log.Debug().Str("command", e.Name).Msg("command registered twice, later entry wins")
		}
	}
	return table
}
