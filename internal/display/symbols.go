// Package display turns dice, difficulty and macro concepts into the fixed
// strings rendered in chat. Everything here is built once at startup and never
// mutated afterwards.
package display

// Symbols holds the base glyph for each die face. The host owns these values;
// the env tags let an operator swap in custom emoji.
type Symbols struct {
	Advantage  string `env:"ADVANTAGE"`
	Boost      string `env:"BOOST"`
	Challenge  string `env:"CHALLENGE"`
	Dark       string `env:"DARK"`
	Despair    string `env:"DESPAIR"`
	Difficulty string `env:"DIFFICULTY"`
	Failure    string `env:"FAILURE"`
	Light      string `env:"LIGHT"`
	Setback    string `env:"SETBACK"`
	Success    string `env:"SUCCESS"`
	Threat     string `env:"THREAT"`
	Triumph    string `env:"TRIUMPH"`
}

// DefaultSymbols returns the glyph set used when nothing is configured.
func DefaultSymbols() Symbols {
	return Symbols{
		Advantage:  "🔼",
		Boost:      "🟦",
		Challenge:  "🟥",
		Dark:       "⚫",
		Despair:    "💀",
		Difficulty: "🟪",
		Failure:    "❌",
		Light:      "⚪",
		Setback:    "⬛",
		Success:    "✅",
		Threat:     "🔽",
		Triumph:    "🏆",
	}
}

// Die names a die face or result symbol.
type Die int

const (
	Advantage Die = iota
	Boost
	Challenge
	Dark
	Despair
	DifficultyDie
	Failure
	Light
	Setback
	Success
	Threat
	Triumph
)

var dieNames = [...]string{
	Advantage:     "advantage",
	Boost:         "boost",
	Challenge:     "challenge",
	Dark:          "dark",
	Despair:       "despair",
	DifficultyDie: "difficulty",
	Failure:       "failure",
	Light:         "light",
	Setback:       "setback",
	Success:       "success",
	Threat:        "threat",
	Triumph:       "triumph",
}

func (d Die) String() string {
	if d < 0 || int(d) >= len(dieNames) {
		return "unknown"
	}
	return dieNames[d]
}

// symbol returns the glyph for d, or "" for an unknown die.
func (s Symbols) symbol(d Die) string {
	switch d {
	case Advantage:
		return s.Advantage
	case Boost:
		return s.Boost
	case Challenge:
		return s.Challenge
	case Dark:
		return s.Dark
	case Despair:
		return s.Despair
	case DifficultyDie:
		return s.Difficulty
	case Failure:
		return s.Failure
	case Light:
		return s.Light
	case Setback:
		return s.Setback
	case Success:
		return s.Success
	case Threat:
		return s.Threat
	case Triumph:
		return s.Triumph
	}
	return ""
}
