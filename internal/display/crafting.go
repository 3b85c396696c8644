package display

// CraftingMode selects what a crafting session builds. The integer values are
// part of the chat command surface (craft-mode <n>).
type CraftingMode int

const (
	CraftNone       CraftingMode = -1
	CraftArmor      CraftingMode = 0
	CraftDroid      CraftingMode = 1
	CraftGadget     CraftingMode = 2
	CraftVehicle    CraftingMode = 3
	CraftWeapon     CraftingMode = 4
	CraftLightsaber CraftingMode = 5
	CraftCybernetic CraftingMode = 6
)

var craftingNames = map[CraftingMode]string{
	CraftNone:       "None",
	CraftArmor:      "Armor",
	CraftDroid:      "Droid",
	CraftGadget:     "Gadget",
	CraftVehicle:    "Vehicle",
	CraftWeapon:     "Weapon",
	CraftLightsaber: "Lightsaber",
	CraftCybernetic: "Cybernetic",
}

// Valid reports whether m is a selectable mode (None is not).
func (m CraftingMode) Valid() bool { return m >= CraftArmor && m <= CraftCybernetic }

func (m CraftingMode) String() string {
	if name, ok := craftingNames[m]; ok {
		return name
	}
	return "Unknown"
}
