package command

import (
	"fmt"
	"strings"

	"github.com/tsaldanha/fudgeroll/internal/data"
	"github.com/tsaldanha/fudgeroll/internal/engine"
	"github.com/tsaldanha/fudgeroll/internal/parser"
)

// checkBonus composes the flat bonus for a skill or ability check: the
// driving ability's modifier, plus proficiency (doubled with expertise)
// when the sheet lists the skill. An actor without a sheet rolls at +0.
func checkBonus(env *Env, actor, check string) (int, error) {
	sheet, err := env.Sheets.Sheet(actor)
	if err != nil {
		return 0, nil // no sheet, flat d20
	}

	if data.IsAbility(check) {
		score, _ := sheet.Score(check)
		return data.CalculateModifier(score), nil
	}

	ability, err := env.Sheets.SkillAbility(check)
	if err != nil {
		return 0, err
	}

	score, ok := sheet.Score(ability)
	if !ok {
		return 0, fmt.Errorf("sheet for %s is missing ability %s", actor, ability)
	}

	bonus := data.CalculateModifier(score)
	if sheet.IsSkillProficient(check) {
		bonus += sheet.ProficiencyBonus
		if sheet.HasExpertise(check) {
			bonus += sheet.ProficiencyBonus
		}
	}
	return bonus, nil
}

// ExecuteCheck performs a skill or ability check, fudged to the requested
// target when one is reachable.
func ExecuteCheck(cmd *parser.CheckCmd, env *Env) ([]engine.Event, error) {
	name := actorName(cmd.Actor)
	check := strings.ToLower(strings.Join(cmd.Check, " "))

	bonus, err := checkBonus(env, name, check)
	if err != nil {
		return nil, err
	}

	formula := baseDie(cmd.Mode) + " + @bonus"
	out, events, err := seekOutcome(env, name, formula, engine.Bindings{"bonus": bonus}, targetValue(cmd.Target))
	if err != nil {
		return nil, err
	}

	events = append(events, &engine.CheckResolvedEvent{
		ActorName: name,
		Check:     check,
		Total:     out.Total,
		Critical:  out.HasNatural(20),
		Fumble:    out.HasNatural(1),
	})

	return events, nil
}

// saveBonus composes the flat bonus for a saving throw.
func saveBonus(env *Env, actor, ability string) (int, error) {
	sheet, err := env.Sheets.Sheet(actor)
	if err != nil {
		return 0, nil
	}

	score, ok := sheet.Score(ability)
	if !ok {
		return 0, fmt.Errorf("unknown ability for save: %s", ability)
	}

	bonus := data.CalculateModifier(score)
	if sheet.IsSaveProficient(ability) {
		bonus += sheet.ProficiencyBonus
	}
	return bonus, nil
}

// ExecuteSave performs a saving throw, fudged to the requested target when
// one is reachable.
func ExecuteSave(cmd *parser.SaveCmd, env *Env) ([]engine.Event, error) {
	name := actorName(cmd.Actor)
	ability := strings.ToLower(cmd.Ability)

	bonus, err := saveBonus(env, name, ability)
	if err != nil {
		return nil, err
	}

	formula := baseDie(cmd.Mode) + " + @bonus"
	out, events, err := seekOutcome(env, name, formula, engine.Bindings{"bonus": bonus}, targetValue(cmd.Target))
	if err != nil {
		return nil, err
	}

	events = append(events, &engine.SaveResolvedEvent{
		ActorName: name,
		Ability:   ability,
		Total:     out.Total,
		Critical:  out.HasNatural(20),
		Fumble:    out.HasNatural(1),
	})

	return events, nil
}
