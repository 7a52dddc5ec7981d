package parser

import (
	"strings"
)

// Command represents a top-level action inputted into the DSL
type Command struct {
	Roll   *RollCmd   `parser:"( @@"`
	Check  *CheckCmd  `parser:"| @@"`
	Save   *SaveCmd   `parser:"| @@"`
	Attack *AttackCmd `parser:"| @@"`
	Stats  *StatsCmd  `parser:"| @@"`
	Help   *HelpCmd   `parser:"| @@ )"`
}

// RollCmd rolls a raw dice expression, optionally steering it to a target total
type RollCmd struct {
	Keyword string      `parser:"@(\"roll\"|\"Roll\"|\"ROLL\")"`
	Actor   *ActorExpr  `parser:"@@?"`
	Dice    *DiceExpr   `parser:"@@"`
	Target  *TargetExpr `parser:"@@?"`
}

// ActorExpr maps parsing the optional "by: Someone" block
type ActorExpr struct {
	Keyword string `parser:"\"by\" \":\""`
	Name    string `parser:"@Ident"`
}

// TargetExpr maps the optional "target: N" block naming the desired total
type TargetExpr struct {
	Keyword string `parser:"\"target\" \":\""`
	Value   int    `parser:"@Int"`
}

// DiceExpr represents a complex RPG-style dice roll: NdS[k|d h|l Z][a|d][+/-M]
type DiceExpr struct {
	Raw string `parser:"@DiceMacro"`
}

// IsAdvantage recognizes shorthand Advantage syntax ("1d20a", "2d20kh").
func (d *DiceExpr) IsAdvantage() bool {
	lower := strings.ToLower(d.Raw)
	return strings.HasSuffix(lower, "a") || strings.Contains(lower, "kh")
}

// IsDisadvantage recognizes shorthand Disadvantage syntax ("1d20d", "2d20kl").
// The trailing-letter check cannot confuse the 'd' die separator because any
// bare macro ends in the die size digits.
func (d *DiceExpr) IsDisadvantage() bool {
	lower := strings.ToLower(d.Raw)
	return strings.HasSuffix(lower, "d") || strings.Contains(lower, "kl")
}

// CheckCmd performs a skill or ability check for an actor
type CheckCmd struct {
	Keyword string      `parser:"@(\"check\"|\"Check\"|\"CHECK\")"`
	Actor   *ActorExpr  `parser:"@@?"`
	Check   []string    `parser:"@Ident+"`
	Target  *TargetExpr `parser:"@@?"`
	Mode    string      `parser:"@(\"adv\"|\"dis\")?"`
}

// SaveCmd performs a saving throw for an actor
type SaveCmd struct {
	Keyword string      `parser:"@(\"save\"|\"Save\"|\"SAVE\")"`
	Actor   *ActorExpr  `parser:"@@?"`
	Ability string      `parser:"@Ident"`
	Target  *TargetExpr `parser:"@@?"`
	Mode    string      `parser:"@(\"adv\"|\"dis\")?"`
}

// AttackCmd performs an attack roll with a named weapon
type AttackCmd struct {
	Keyword string      `parser:"@(\"attack\"|\"Attack\"|\"ATTACK\")"`
	Actor   *ActorExpr  `parser:"@@?"`
	With    string      `parser:"\"with\" \":\""`
	Weapon  string      `parser:"@Ident"`
	Target  *TargetExpr `parser:"@@?"`
	Mode    string      `parser:"@(\"adv\"|\"dis\")?"`
}

// StatsCmd prints the projected table tallies
type StatsCmd struct {
	Keyword string `parser:"@(\"stats\"|\"Stats\"|\"STATS\")"`
}

// HelpCmd provides context-aware guidance. Topic names are themselves
// keywords, so both token kinds must be accepted.
type HelpCmd struct {
	Keyword string `parser:"@(\"help\"|\"Help\"|\"HELP\")"`
	Command string `parser:"( @Ident | @(\"roll\"|\"check\"|\"save\"|\"attack\"|\"stats\") )?"`
}
