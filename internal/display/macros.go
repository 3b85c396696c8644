package display

import (
	"fmt"
	"strings"
)

// CommandPrefix marks a chat message as one of ours.
const CommandPrefix = "!swrpg-"

// HTML entities embedded in macros so the host does not interpret them.
const (
	Asterisk = "&#42;"
	At       = "&#64;"
	CR       = "&#13;"
)

// Link renders a clickable chat button.
func Link(label, target string) string {
	return fmt.Sprintf("[%s](%s)", label, target)
}

// Call renders a command invocation target: prefix, command and arguments.
func Call(command string, args ...string) string {
	if len(args) == 0 {
		return CommandPrefix + command
	}
	return CommandPrefix + command + " " + strings.Join(args, " ")
}

// Ability renders a target that triggers a named host-side ability macro.
func Ability(name string) string {
	return fmt.Sprintf("!%s#%s", CR, name)
}

// TargetAttribute renders a placeholder the host fills from the selected token.
func TargetAttribute(label, attribute string) string {
	return fmt.Sprintf("%s{target|%s|%s}", At, label, attribute)
}

// CraftMode renders the button that starts crafting in the given mode.
func CraftMode(mode CraftingMode) string {
	return Link("Create "+mode.String(), Call("craft-mode", fmt.Sprint(int(mode))))
}

// Commonly referenced macros.
var (
	ContactInvestigate = Link("Use Contact Network", Ability("ContactInvestigate"))
	CraftingMain       = Link("Crafting", Call("craft-ui"))
	CraftArmorMacro    = CraftMode(CraftArmor)
	CraftCyberMacro    = CraftMode(CraftCybernetic)
	CraftDroidMacro    = CraftMode(CraftDroid)
	CraftGadgetMacro   = CraftMode(CraftGadget)
	CraftSaberMacro    = CraftMode(CraftLightsaber)
	CraftVehicleMacro  = CraftMode(CraftVehicle)
	CraftWeaponMacro   = CraftMode(CraftWeapon)
	CraftAcquire       = Link("Acquire Materials", Call("craft-acquire"))
	CraftConstruct     = Link("Construct", Call("craft-construct"))
	NavChase           = Link("Chase", Call("nav-chase"))
	NavMain            = Link("Terrain Navigation", Call("nav-ui",
		TargetAttribute("Vehicle", "space-speed_current"),
		TargetAttribute("Vehicle", "space-silhouette"),
		"#NavHazard"))
	PartyLocation     = Link("Current Location", Ability("PartyLocation"))
	RepairItem        = Link("Repair Item", Ability("RepairItem"))
	SliceAccess       = Link("Access System", Call("slice-access"))
	SliceActivate     = Link("Activate Security", Call("slice-activate"))
	SliceBackdoor     = Link(Asterisk+"Create Backdoor", Call("slice-backdoor"))
	SliceDisable      = Link("Disable Security", Call("slice-disable"))
	SliceDecrease     = Link("*Decrease*", Call("slice-security-dec"))
	SliceEnact        = Link(Asterisk+"Enact Command", Call("slice-enact"))
	SliceExpel        = Link(Asterisk+"Expel User", Call("slice-expel"))
	SliceIncrease     = Link("*Increase*", Call("slice-security-inc"))
	SliceLockdown     = Link(Asterisk+"Lockdown", Call("slice-lockdown"))
	SliceMain         = Link("Slicing", Call("slice-ui"))
	SliceReset        = Link("*Reset*", Call("slice-security-reset"))
	SliceRestart      = Link("Restart System", Call("slice-restart"))
	SliceTrace        = Link(Asterisk+"Trace User", Call("slice-trace"))
	SocialCharm       = Link("Charm", Call("social-charm"))
	SocialCoercion    = Link("Coercion", Call("social-coercion"))
	SocialDeception   = Link("Deception", Call("social-deception"))
	SocialLeadership  = Link("Leadership", Call("social-leadership"))
	SocialMain        = Link("Social", Call("social-ui"))
	SocialNegotiation = Link("Negotiation", Call("social-negotiation"))
	TradeItem         = Link("Trade Item", Ability("TradeItem"))
	TradeLocation     = "#TradeLocation #TradeProximity #TradePopulation"
)
