package display

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDifficultyOutOfRange is returned for difficulty levels outside 0..5.
var ErrDifficultyOutOfRange = errors.New("difficulty level out of range")

// MaxDice is the largest pool of a single face a check will render.
const MaxDice = 20

// SimpleDifficulty is the rendering of a Simple check: no dice at all.
const SimpleDifficulty = " - "

// Repeat renders symbol n times with no separator. n <= 0 yields "".
func Repeat(symbol string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(symbol, n)
}

// Table is the resolved lookup structure handed to feature handlers.
type Table struct {
	symbols    Symbols
	difficulty [DifficultyLevels]string
}

// New resolves the lookup tables from the given base symbols.
func New(s Symbols) *Table {
	t := &Table{symbols: s}
	t.difficulty[Simple] = SimpleDifficulty
	for lvl := Easy; lvl <= Formidable; lvl++ {
		t.difficulty[lvl] = Repeat(s.Difficulty, int(lvl))
	}
	return t
}

// Symbols returns the base glyphs the table was built from.
func (t *Table) Symbols() Symbols { return t.symbols }

// Dice renders n glyphs of the given face, at most MaxDice.
func (t *Table) Dice(d Die, n int) string {
	return Repeat(t.symbols.symbol(d), min(n, MaxDice))
}

// Difficulty returns the pre-rendered glyph string for a difficulty level.
func (t *Table) Difficulty(level Difficulty) (string, error) {
	if !level.Valid() {
		return "", fmt.Errorf("%w: %d", ErrDifficultyOutOfRange, int(level))
	}
	return t.difficulty[level], nil
}

// Check renders a difficulty followed by extra challenge, boost and setback
// dice, e.g. "🟪🟪🟦" for an Average check with one boost.
func (t *Table) Check(level Difficulty, mods ...DieCount) (string, error) {
	out, err := t.Difficulty(level)
	if err != nil {
		return "", err
	}
	for _, m := range mods {
		out += t.Dice(m.Die, m.N)
	}
	return out, nil
}

// DieCount pairs a die face with a count.
type DieCount struct {
	Die Die
	N   int
}
