package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsaldanha/fudgeroll/internal/engine"
)

// StatsEvent is a pure query result over the projection; it is never
// persisted and applying it changes nothing.
type StatsEvent struct {
	Text string `json:"text"`
}

func (e *StatsEvent) Type() engine.EventType               { return "Stats" }
func (e *StatsEvent) Apply(state *engine.TableState) error { return nil }
func (e *StatsEvent) Message() string                      { return e.Text }

func statsEvent(state *engine.TableState) engine.Event {
	if len(state.Actors) == 0 {
		return &StatsEvent{Text: "No rolls logged yet."}
	}

	names := make([]string, 0, len(state.Actors))
	for name := range state.Actors {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rolls logged: %d\n", state.TotalRolls()))
	for _, name := range names {
		a := state.Actors[name]
		sb.WriteString(fmt.Sprintf("%s: %d rolls (%d honest, %d steered, %d gave up), %d evaluations spent, last total %d\n",
			a.Name, a.Rolls, a.Honest, a.Seeked, a.Exhausted, a.Attempts, a.LastTotal))
	}
	return &StatsEvent{Text: strings.TrimSpace(sb.String())}
}
