// Package feature holds helpers shared by the feature handlers under it.
package feature

import (
	"fmt"

	"github.com/keshon/swrpg-bot/internal/display"
)

// CheckLine renders "**Check**: <skill> <dice>" for a skill check.
func CheckLine(t *display.Table, skill string, level display.Difficulty, mods ...display.DieCount) (string, error) {
	dice, err := t.Check(level, mods...)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("**Check**: %s (%s) %s", skill, level, dice), nil
}

// Credits formats an amount of credits.
func Credits(n int) string {
	return fmt.Sprintf("%d credits", n)
}
