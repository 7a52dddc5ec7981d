package command

import (
	"fmt"

	"github.com/tsaldanha/fudgeroll/internal/data"
	"github.com/tsaldanha/fudgeroll/internal/engine"
	"github.com/tsaldanha/fudgeroll/internal/parser"
	"github.com/tsaldanha/fudgeroll/internal/rules"
)

// Env carries the collaborators every command needs: the read-only sheet
// provider, the CEL bonus registry, and the target-seeking roller. There is
// no shared mutable "current actor"; each execution resolves its own.
type Env struct {
	Sheets data.SheetProvider
	Rules  *rules.Registry
	Seeker *engine.Seeker
}

// Execute dispatches a parsed DSL command to its handler.
func Execute(cmd *parser.Command, env *Env) ([]engine.Event, error) {
	switch {
	case cmd.Roll != nil:
		return ExecuteRoll(cmd.Roll, env)
	case cmd.Check != nil:
		return ExecuteCheck(cmd.Check, env)
	case cmd.Save != nil:
		return ExecuteSave(cmd.Save, env)
	case cmd.Attack != nil:
		return ExecuteAttack(cmd.Attack, env)
	case cmd.Help != nil:
		return ExecuteHelp(cmd.Help)
	}
	return nil, fmt.Errorf("unrecognized command")
}

// actorName resolves the optional "by:" block, defaulting to System.
func actorName(actor *parser.ActorExpr) string {
	if actor != nil {
		return actor.Name
	}
	return "System"
}

// targetValue lifts the optional target expression to the seeker's contract.
func targetValue(t *parser.TargetExpr) *int {
	if t == nil {
		return nil
	}
	v := t.Value
	return &v
}

// baseDie picks the d20 expression for the advantage state.
func baseDie(mode string) string {
	switch mode {
	case "adv":
		return "2d20kh1"
	case "dis":
		return "2d20kl1"
	}
	return "1d20"
}

// seekOutcome runs the seeker for a composed formula and converts the
// outcome into log events. The returned outcome lets callers attach
// kind-specific events (check/save/attack resolution) on top.
func seekOutcome(env *Env, actor, formula string, bindings engine.Bindings, target *int) (engine.RollOutcome, []engine.Event, error) {
	f, err := engine.ParseFormula(formula)
	if err != nil {
		return engine.RollOutcome{}, nil, err
	}

	out, err := env.Seeker.Seek(f, bindings, target)
	if err != nil {
		return engine.RollOutcome{}, nil, err
	}

	var events []engine.Event
	if out.Seeked {
		events = append(events, &engine.RollSeekedEvent{
			ActorName: actor,
			Formula:   f.Raw,
			Target:    *target,
			Total:     out.Total,
			Attempts:  out.Attempts,
			Dice:      out.Dice,
			Modifier:  out.Modifier,
		})
	} else {
		events = append(events, &engine.DiceRolledEvent{
			ActorName: actor,
			Formula:   f.Raw,
			Total:     out.Total,
			Dice:      out.Dice,
			Modifier:  out.Modifier,
			Maximized: out.Maximized,
		})
		if out.BestEffort {
			events = append(events, &engine.SeekExhaustedEvent{
				ActorName: actor,
				Formula:   f.Raw,
				Target:    *target,
				Attempts:  out.Attempts,
				Total:     out.Total,
			})
		}
	}

	return out, events, nil
}
