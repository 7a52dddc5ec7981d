package session

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"go.uber.org/zap"

	"github.com/tsaldanha/fudgeroll/internal/command"
	"github.com/tsaldanha/fudgeroll/internal/data"
	"github.com/tsaldanha/fudgeroll/internal/engine"
	"github.com/tsaldanha/fudgeroll/internal/parser"
	"github.com/tsaldanha/fudgeroll/internal/rules"
)

// Store defines the dependency required by Session to persist events
type Store interface {
	Append(evt engine.Event) error
	Load() ([]engine.Event, error)
	Close() error
}

// Session manages the cohesive loop of parsing commands, executing them,
// persisting the resulting events, and projecting the table state.
type Session struct {
	parser *participle.Parser[parser.Command]
	env    *command.Env
	store  Store
	state  *engine.TableState
	log    *zap.SugaredLogger
}

// NewSession bootstraps the pipeline relying on an injected store.
func NewSession(dataDirs []string, store Store, log *zap.SugaredLogger) (*Session, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	loader := data.NewLoader(dataDirs)

	// Bridge the rules registry to honest formula evaluation
	reg, err := rules.NewRegistry(func(s string) int {
		f, err := engine.ParseFormula(s)
		if err != nil {
			return 0
		}
		out, err := f.Evaluate(engine.Bindings{}, engine.CryptoRoller{})
		if err != nil {
			return 0
		}
		return out.Total
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}

	s := &Session{
		parser: parser.Build(),
		env: &command.Env{
			Sheets: loader,
			Rules:  reg,
			Seeker: engine.NewSeeker(engine.WithLogger(log)),
		},
		store: store,
		log:   log,
	}
	if err := s.RebuildState(); err != nil {
		return nil, err
	}
	return s, nil
}

// RebuildState reads the entire event log from the store and projects the latest TableState
func (s *Session) RebuildState() error {
	events, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load event log: %w", err)
	}

	projector := engine.NewProjector()
	state, err := projector.Build(events)
	if err != nil {
		return fmt.Errorf("failed to project state: %w", err)
	}

	s.state = state
	return nil
}

// State exposes the current projection.
func (s *Session) State() *engine.TableState {
	return s.state
}

// Dispatch parses one DSL line, executes it, persists the produced events,
// and folds them into the projection. The returned events carry the
// user-facing messages.
func (s *Session) Dispatch(input string) ([]engine.Event, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil
	}

	cmd, err := s.parser.ParseString("", input)
	if err != nil {
		return nil, parser.MapError(input, err)
	}

	if cmd.Stats != nil {
		// stats is a pure query over the projection, nothing to persist
		return []engine.Event{statsEvent(s.state)}, nil
	}

	events, err := command.Execute(cmd, s.env)
	if err != nil {
		return nil, err
	}

	for _, evt := range events {
		if _, informational := evt.(*command.HelpEvent); informational {
			continue
		}
		if err := s.store.Append(evt); err != nil {
			return nil, fmt.Errorf("failed to persist event: %w", err)
		}
		if err := evt.Apply(s.state); err != nil {
			return nil, err
		}
	}

	s.log.Debugw("dispatched", "input", input, "events", len(events))
	return events, nil
}

// Close releases the underlying store.
func (s *Session) Close() error {
	return s.store.Close()
}
