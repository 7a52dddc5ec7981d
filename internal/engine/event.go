package engine

import (
	"fmt"
	"strings"
)

type EventType string

const (
	EventDiceRolled    EventType = "DiceRolled"
	EventRollSeeked    EventType = "RollSeeked"
	EventCheckResolved EventType = "CheckResolved"
	EventSaveResolved  EventType = "SaveResolved"
	EventAttackRolled  EventType = "AttackRolled"
	EventSeekExhausted EventType = "SeekExhausted"
)

// Event is the building block of the append-only roll log.
type Event interface {
	Type() EventType
	Apply(state *TableState) error
	Message() string
}

// DiceRolledEvent records an honest evaluation: a plain roll, a maximized
// best-case, or the fallback produced for an unreachable target.
type DiceRolledEvent struct {
	ActorName string      `json:"actor_name"`
	Formula   string      `json:"formula"`
	Total     int         `json:"total"`
	Dice      []DieResult `json:"dice"`
	Modifier  int         `json:"modifier"`
	Maximized bool        `json:"maximized,omitempty"`
}

func (e *DiceRolledEvent) Type() EventType { return EventDiceRolled }
func (e *DiceRolledEvent) Apply(state *TableState) error {
	a := state.actor(e.ActorName)
	a.Rolls++
	a.Honest++
	a.LastTotal = e.Total
	return nil
}
func (e *DiceRolledEvent) Message() string {
	suffix := ""
	if e.Maximized {
		suffix = " (maximized)"
	}
	return fmt.Sprintf("%s rolled %s: %d%s %s", e.ActorName, e.Formula, e.Total, suffix, renderDice(e.Dice, e.Modifier))
}

// RollSeekedEvent records a successful target-seeking roll.
type RollSeekedEvent struct {
	ActorName string      `json:"actor_name"`
	Formula   string      `json:"formula"`
	Target    int         `json:"target"`
	Total     int         `json:"total"`
	Attempts  int         `json:"attempts"`
	Dice      []DieResult `json:"dice"`
	Modifier  int         `json:"modifier"`
}

func (e *RollSeekedEvent) Type() EventType { return EventRollSeeked }
func (e *RollSeekedEvent) Apply(state *TableState) error {
	a := state.actor(e.ActorName)
	a.Rolls++
	a.Seeked++
	a.Attempts += e.Attempts
	a.LastTotal = e.Total
	return nil
}
func (e *RollSeekedEvent) Message() string {
	return fmt.Sprintf("%s rolled %s: %d %s", e.ActorName, e.Formula, e.Total, renderDice(e.Dice, e.Modifier))
}

// CheckResolvedEvent records a completed skill or ability check.
type CheckResolvedEvent struct {
	ActorName string `json:"actor_name"`
	Check     string `json:"check"`
	Total     int    `json:"total"`
	Critical  bool   `json:"critical,omitempty"`
	Fumble    bool   `json:"fumble,omitempty"`
}

func (e *CheckResolvedEvent) Type() EventType { return EventCheckResolved }
func (e *CheckResolvedEvent) Apply(state *TableState) error {
	state.actor(e.ActorName).Checks++
	return nil
}
func (e *CheckResolvedEvent) Message() string {
	return fmt.Sprintf("%s %s check: %d%s", e.ActorName, e.Check, e.Total, critSuffix(e.Critical, e.Fumble))
}

// SaveResolvedEvent records a completed saving throw.
type SaveResolvedEvent struct {
	ActorName string `json:"actor_name"`
	Ability   string `json:"ability"`
	Total     int    `json:"total"`
	Critical  bool   `json:"critical,omitempty"`
	Fumble    bool   `json:"fumble,omitempty"`
}

func (e *SaveResolvedEvent) Type() EventType { return EventSaveResolved }
func (e *SaveResolvedEvent) Apply(state *TableState) error {
	state.actor(e.ActorName).Saves++
	return nil
}
func (e *SaveResolvedEvent) Message() string {
	return fmt.Sprintf("%s %s save: %d%s", e.ActorName, e.Ability, e.Total, critSuffix(e.Critical, e.Fumble))
}

// AttackRolledEvent records a completed attack roll.
type AttackRolledEvent struct {
	ActorName string `json:"actor_name"`
	Weapon    string `json:"weapon"`
	Total     int    `json:"total"`
	Critical  bool   `json:"critical,omitempty"`
	Fumble    bool   `json:"fumble,omitempty"`
}

func (e *AttackRolledEvent) Type() EventType { return EventAttackRolled }
func (e *AttackRolledEvent) Apply(state *TableState) error {
	state.actor(e.ActorName).Attacks++
	return nil
}
func (e *AttackRolledEvent) Message() string {
	return fmt.Sprintf("%s attacks with %s: %d%s", e.ActorName, e.Weapon, e.Total, critSuffix(e.Critical, e.Fumble))
}

// SeekExhaustedEvent records a retry cap hitting its limit before the
// target total came up. The accompanying roll is still logged separately.
type SeekExhaustedEvent struct {
	ActorName string `json:"actor_name"`
	Formula   string `json:"formula"`
	Target    int    `json:"target"`
	Attempts  int    `json:"attempts"`
	Total     int    `json:"total"`
}

func (e *SeekExhaustedEvent) Type() EventType { return EventSeekExhausted }
func (e *SeekExhaustedEvent) Apply(state *TableState) error {
	a := state.actor(e.ActorName)
	a.Exhausted++
	a.Attempts += e.Attempts
	return nil
}
func (e *SeekExhaustedEvent) Message() string {
	return fmt.Sprintf("Warning: gave up seeking %d on %s for %s after %d attempts (got %d)",
		e.Target, e.Formula, e.ActorName, e.Attempts, e.Total)
}

// renderDice prints the per-die breakdown, striking dropped faces.
func renderDice(dice []DieResult, modifier int) string {
	if len(dice) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("[")
	for i, d := range dice {
		if i > 0 {
			sb.WriteString(", ")
		}
		if d.Sign < 0 {
			sb.WriteString("-")
		}
		sb.WriteString(fmt.Sprintf("d%d:%v", d.Sides, d.Kept))
		if len(d.Dropped) > 0 {
			sb.WriteString(fmt.Sprintf(" (dropped %v)", d.Dropped))
		}
	}
	sb.WriteString("]")
	if modifier != 0 {
		sb.WriteString(fmt.Sprintf(" %+d", modifier))
	}
	return sb.String()
}

func critSuffix(crit, fumble bool) string {
	switch {
	case crit:
		return " (natural 20!)"
	case fumble:
		return " (natural 1!)"
	}
	return ""
}
