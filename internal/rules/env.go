package rules

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// Registry manages the CEL environment and provides helper methods for evaluation.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with RPG-specific variables and functions.
func NewRegistry(rollFunc DiceRoller) (*Registry, error) {
	env, err := cel.NewEnv(
		// Variable declarations
		cel.Variable("actor", cel.MapType(cel.StringType, cel.AnyType)),
		cel.Variable("weapon", cel.MapType(cel.StringType, cel.AnyType)),
		cel.Variable("skill", cel.StringType),
		cel.Variable("globals", cel.MapType(cel.StringType, cel.AnyType)),

		// Custom RPG functions
		cel.Function("roll",
			cel.Overload("roll_string",
				[]*cel.Type{cel.StringType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					s := arg.Value().(string)
					return types.Int(rollFunc(s))
				}),
			),
		),
		cel.Function("mod",
			cel.Overload("mod_int",
				[]*cel.Type{cel.IntType},
				cel.IntType,
				cel.UnaryBinding(func(arg ref.Val) ref.Val {
					score := arg.Value().(int64)
					if score < 10 {
						return types.Int(-((11 - score) / 2))
					}
					return types.Int((score - 10) / 2)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Eval executes a CEL expression against the provided context.
func (r *Registry) Eval(expression string, context map[string]any) (any, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, iss.Err()
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, err
	}
	out, _, err := prog.Eval(context)
	if err != nil {
		return nil, err
	}
	return out.Value(), nil
}

// EvalInt evaluates an expression expected to produce an integer bonus.
func (r *Registry) EvalInt(expression string, context map[string]any) (int, error) {
	out, err := r.Eval(expression, context)
	if err != nil {
		return 0, err
	}
	switch v := out.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	}
	return 0, errNotNumeric(expression)
}
