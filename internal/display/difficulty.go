package display

// Difficulty is a check difficulty level. Its integer values index the
// ordered difficulty sequence held by Table.
type Difficulty int

const (
	Simple Difficulty = iota
	Easy
	Average
	Hard
	Daunting
	Formidable
)

// DifficultyLevels is the size of the difficulty index space.
const DifficultyLevels = int(Formidable) + 1

var difficultyNames = [DifficultyLevels]string{
	Simple:     "Simple",
	Easy:       "Easy",
	Average:    "Average",
	Hard:       "Hard",
	Daunting:   "Daunting",
	Formidable: "Formidable",
}

// Valid reports whether d is inside 0..5.
func (d Difficulty) Valid() bool { return d >= Simple && d <= Formidable }

func (d Difficulty) String() string {
	if !d.Valid() {
		return "Unknown"
	}
	return difficultyNames[d]
}

// Clamp pulls n into the difficulty index space.
func Clamp(n int) Difficulty {
	switch {
	case n < int(Simple):
		return Simple
	case n > int(Formidable):
		return Formidable
	}
	return Difficulty(n)
}

// FromRarity maps an item rarity (0..10) to the difficulty of finding it.
func FromRarity(rarity int) Difficulty {
	if rarity < 0 {
		rarity = 0
	}
	return Clamp(rarity / 2)
}
