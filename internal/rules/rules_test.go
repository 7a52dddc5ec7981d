package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsaldanha/fudgeroll/internal/data"
)

func TestCELRegistry(t *testing.T) {
	// Mock roll function that returns a fixed value for testing
	var mockRoll DiceRoller = func(s string) int {
		if s == "1d20" {
			return 15
		}
		return 0
	}

	registry, err := NewRegistry(mockRoll)
	assert.NoError(t, err)

	t.Run("Basic Boolean Expression", func(t *testing.T) {
		ctx := map[string]any{
			"actor": map[string]any{"stats": map[string]any{"dex": int64(16)}},
		}
		out, err := registry.Eval("actor.stats.dex > 10", ctx)
		assert.NoError(t, err)
		assert.Equal(t, true, out)
	})

	t.Run("Custom Roll Function", func(t *testing.T) {
		ctx := map[string]any{}
		out, err := registry.Eval("roll('1d20')", ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(15), out) // CEL returns int64 for IntType
	})

	t.Run("Modifier Function", func(t *testing.T) {
		out, err := registry.Eval("mod(18)", map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, int64(4), out)

		out, err = registry.Eval("mod(9)", map[string]any{})
		assert.NoError(t, err)
		assert.Equal(t, int64(-1), out)
	})

	t.Run("Attack Bonus Composition", func(t *testing.T) {
		sheet := &data.Character{
			Name:             "Fighter",
			Strength:         16,
			ProficiencyBonus: 3,
		}
		weapon := &data.Weapon{Name: "longsword", Ability: "str", Proficient: true, Bonus: 1}

		ctx := map[string]any{
			"actor":  ContextFromSheet(sheet),
			"weapon": ContextFromWeapon(weapon),
		}
		bonus, err := registry.EvalInt("mod(actor.stats.str) + actor.prof + weapon.bonus", ctx)
		assert.NoError(t, err)
		assert.Equal(t, 7, bonus)
	})

	t.Run("Non Numeric Result", func(t *testing.T) {
		_, err := registry.EvalInt("'not a number'", map[string]any{})
		assert.Error(t, err)
	})
}
