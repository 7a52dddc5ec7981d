package command

import (
	"strings"

	"github.com/tsaldanha/fudgeroll/internal/engine"
	"github.com/tsaldanha/fudgeroll/internal/parser"
)

var helpTopics = map[string]string{
	"roll":   "roll [by: Actor] <dice> [target: N] — roll a dice expression; with a target, re-rolls until the total matches",
	"check":  "check [by: Actor] <skill or ability> [target: N] [adv|dis] — skill or ability check using the actor's sheet",
	"save":   "save [by: Actor] <ability> [target: N] [adv|dis] — saving throw using the actor's sheet",
	"attack": "attack [by: Actor] with: Weapon [target: N] [adv|dis] — attack roll with a weapon from the actor's sheet",
	"stats":  "stats — show per-actor tallies of honest and steered rolls",
}

// HelpEvent is a purely informational event; it never touches the log state.
type HelpEvent struct {
	Text string `json:"text"`
}

func (e *HelpEvent) Type() engine.EventType               { return "Help" }
func (e *HelpEvent) Apply(state *engine.TableState) error { return nil }
func (e *HelpEvent) Message() string                      { return e.Text }

// ExecuteHelp prints usage for one command or all of them.
func ExecuteHelp(cmd *parser.HelpCmd) ([]engine.Event, error) {
	if topic, ok := helpTopics[strings.ToLower(cmd.Command)]; ok {
		return []engine.Event{&HelpEvent{Text: topic}}, nil
	}

	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, key := range []string{"roll", "check", "save", "attack", "stats"} {
		sb.WriteString("  " + helpTopics[key] + "\n")
	}
	return []engine.Event{&HelpEvent{Text: strings.TrimSpace(sb.String())}}, nil
}
