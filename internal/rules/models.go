package rules

import (
	"fmt"

	"github.com/tsaldanha/fudgeroll/internal/data"
)

// DiceRoller evaluates a dice expression (e.g. "1d20") to its total. It is
// injected into the registry so tests can pin deterministic results.
type DiceRoller func(expr string) int

func errNotNumeric(expression string) error {
	return fmt.Errorf("bonus formula did not evaluate to a number: %s", expression)
}

// ContextFromSheet converts a character sheet into a map suitable for CEL
// evaluation, so formulas can write actor.stats.dex or actor.prof.
func ContextFromSheet(c *data.Character) map[string]any {
	if c == nil {
		return map[string]any{}
	}
	stats := make(map[string]any, 6)
	for k, v := range c.GetStats() {
		stats[k] = int64(v) // CEL uses int64 for integers
	}
	return map[string]any{
		"name":  c.Name,
		"level": int64(c.Level),
		"stats": stats,
		"prof":  int64(c.ProficiencyBonus),
	}
}

// ContextFromWeapon exposes one weapon's fields to CEL.
func ContextFromWeapon(w *data.Weapon) map[string]any {
	if w == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":       w.Name,
		"ability":    w.Ability,
		"proficient": w.Proficient,
		"bonus":      int64(w.Bonus),
	}
}
