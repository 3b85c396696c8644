package display

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeat(t *testing.T) {
	assert.Equal(t, "", Repeat("X", 0))
	assert.Equal(t, "XXX", Repeat("X", 3))
	assert.Equal(t, "", Repeat("X", -2))
}

func TestDifficultySequence(t *testing.T) {
	tbl := New(Symbols{Difficulty: "d"})

	simple, err := tbl.Difficulty(Simple)
	require.NoError(t, err)
	assert.Equal(t, " - ", simple)

	avg, err := tbl.Difficulty(2)
	require.NoError(t, err)
	assert.Equal(t, "dd", avg)

	byName, err := tbl.Difficulty(Average)
	require.NoError(t, err)
	assert.Equal(t, avg, byName)

	formidable, err := tbl.Difficulty(Formidable)
	require.NoError(t, err)
	assert.Equal(t, "ddddd", formidable)
}

func TestDifficultyOutOfRange(t *testing.T) {
	tbl := New(DefaultSymbols())

	for _, lvl := range []Difficulty{-1, 6, 100} {
		_, err := tbl.Difficulty(lvl)
		assert.True(t, errors.Is(err, ErrDifficultyOutOfRange), "level %d", lvl)
	}
}

func TestDiceRenderer(t *testing.T) {
	tbl := New(Symbols{Boost: "b", Setback: "s", Triumph: "T", Difficulty: "d"})

	assert.Equal(t, "bb", tbl.Dice(Boost, 2))
	assert.Equal(t, "", tbl.Dice(Setback, 0))
	assert.Equal(t, "T", tbl.Dice(Triumph, 1))
	assert.Equal(t, "", tbl.Dice(Die(99), 3))

	check, err := tbl.Check(Hard, DieCount{Boost, 1}, DieCount{Setback, 2})
	require.NoError(t, err)
	assert.Equal(t, "dddbss", check)
}

func TestClampAndRarity(t *testing.T) {
	assert.Equal(t, Simple, Clamp(-4))
	assert.Equal(t, Hard, Clamp(3))
	assert.Equal(t, Formidable, Clamp(9))

	cases := map[int]Difficulty{
		-1: Simple, 0: Simple, 1: Simple,
		2: Easy, 3: Easy,
		4: Average, 5: Average,
		6: Hard, 7: Hard,
		8: Daunting, 9: Daunting,
		10: Formidable, 12: Formidable,
	}
	for rarity, want := range cases {
		assert.Equal(t, want, FromRarity(rarity), "rarity %d", rarity)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Average", Average.String())
	assert.Equal(t, "Unknown", Difficulty(8).String())
	assert.Equal(t, "Lightsaber", CraftLightsaber.String())
	assert.False(t, CraftNone.Valid())
	assert.True(t, CraftCybernetic.Valid())
	assert.Equal(t, "despair", Despair.String())
}

func TestMacros(t *testing.T) {
	assert.Equal(t, "[Crafting](!swrpg-craft-ui)", CraftingMain)
	assert.Equal(t, "[Create Armor](!swrpg-craft-mode 0)", CraftArmorMacro)
	assert.Equal(t, "[Create Cybernetic](!swrpg-craft-mode 6)", CraftCyberMacro)
	assert.Equal(t, "[Use Contact Network](!&#13;#ContactInvestigate)", ContactInvestigate)
	assert.Equal(t, "[&#42;Enact Command](!swrpg-slice-enact)", SliceEnact)
	assert.Equal(t,
		"[Terrain Navigation](!swrpg-nav-ui &#64;{target|Vehicle|space-speed_current} &#64;{target|Vehicle|space-silhouette} #NavHazard)",
		NavMain)
	assert.Equal(t, "!swrpg-trade sword 100", Call("trade", "sword", "100"))
}

func TestDicePoolIsCapped(t *testing.T) {
	tbl := New(Symbols{Boost: "b", Difficulty: "d"})

	assert.Equal(t, strings.Repeat("b", MaxDice), tbl.Dice(Boost, 3_000_000_000_000_000_000))

	check, err := tbl.Check(Easy, DieCount{Boost, 1 << 40})
	require.NoError(t, err)
	assert.Equal(t, "d"+strings.Repeat("b", MaxDice), check)
}
