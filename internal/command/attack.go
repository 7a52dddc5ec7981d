package command

import (
	"fmt"
	"strings"

	"github.com/tsaldanha/fudgeroll/internal/data"
	"github.com/tsaldanha/fudgeroll/internal/engine"
	"github.com/tsaldanha/fudgeroll/internal/parser"
	"github.com/tsaldanha/fudgeroll/internal/rules"
)

// attackBonus composes the flat bonus for an attack roll. A weapon carrying
// its own bonus_formula delegates to the CEL registry; otherwise the
// standard composition applies: ability modifier, proficiency when trained,
// plus any flat enhancement on the weapon.
func attackBonus(env *Env, sheet *data.Character, weapon *data.Weapon) (int, error) {
	if weapon.BonusFormula != "" {
		ctx := map[string]any{
			"actor":  rules.ContextFromSheet(sheet),
			"weapon": rules.ContextFromWeapon(weapon),
		}
		return env.Rules.EvalInt(weapon.BonusFormula, ctx)
	}

	score, ok := sheet.Score(weapon.Ability)
	if !ok {
		return 0, fmt.Errorf("weapon %s names unknown ability %q", weapon.Name, weapon.Ability)
	}

	bonus := data.CalculateModifier(score) + weapon.Bonus
	if weapon.Proficient {
		bonus += sheet.ProficiencyBonus
	}
	return bonus, nil
}

// ExecuteAttack performs an attack roll with a named weapon, fudged to the
// requested target when one is reachable.
func ExecuteAttack(cmd *parser.AttackCmd, env *Env) ([]engine.Event, error) {
	name := actorName(cmd.Actor)
	weaponName := strings.ToLower(cmd.Weapon)

	sheet, err := env.Sheets.Sheet(name)
	if err != nil {
		return nil, fmt.Errorf("attack requires a character sheet for %s: %w", name, err)
	}

	weapon, ok := sheet.FindWeapon(weaponName)
	if !ok {
		return nil, fmt.Errorf("%s has no weapon named %s", name, weaponName)
	}

	bonus, err := attackBonus(env, sheet, weapon)
	if err != nil {
		return nil, err
	}

	formula := baseDie(cmd.Mode) + " + @bonus"
	out, events, err := seekOutcome(env, name, formula, engine.Bindings{"bonus": bonus}, targetValue(cmd.Target))
	if err != nil {
		return nil, err
	}

	events = append(events, &engine.AttackRolledEvent{
		ActorName: name,
		Weapon:    weapon.Name,
		Total:     out.Total,
		Critical:  out.HasNatural(20),
		Fumble:    out.HasNatural(1),
	})

	return events, nil
}
