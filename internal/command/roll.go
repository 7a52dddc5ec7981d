package command

import (
	"github.com/tsaldanha/fudgeroll/internal/engine"
	"github.com/tsaldanha/fudgeroll/internal/parser"
)

// ExecuteRoll evaluates a raw dice expression, steering it toward the
// requested target total when one is given.
func ExecuteRoll(roll *parser.RollCmd, env *Env) ([]engine.Event, error) {
	name := actorName(roll.Actor)

	_, events, err := seekOutcome(env, name, roll.Dice.Raw, engine.Bindings{}, targetValue(roll.Target))
	if err != nil {
		return nil, err
	}

	return events, nil
}
