package engine

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ErrUnboundVariable flags a formula referencing a variable the caller never
// supplied. This is a configuration error and is never retried.
var ErrUnboundVariable = errors.New("unbound variable in formula")

// Bindings maps variable names to numeric values substituted into a formula
// at evaluation time. The engine only ever reads from it.
type Bindings map[string]int

// DiceTerm is one random term of a formula: NdS with optional keep/drop
// rules. The shorthand 'a' (advantage) and 'd' (disadvantage) expand to
// 2dS keeping the highest or lowest single die.
type DiceTerm struct {
	Count   int
	Sides   int
	Keep    int  // dice kept after sorting; equals Count when nothing is dropped
	Highest bool // sort direction for the keep rule
	Sign    int  // +1 or -1
}

// FlatTerm is an integer modifier baked into the formula text.
type FlatTerm struct {
	Value int
}

// VarTerm is a named modifier resolved from Bindings (e.g. "@mod").
type VarTerm struct {
	Name string
	Sign int
}

// Formula is an ordered additive sequence of dice, flat and variable terms.
// It is immutable once parsed; every evaluation reads the same terms.
type Formula struct {
	Raw   string
	Dice  []DiceTerm
	Flats []FlatTerm
	Vars  []VarTerm
}

var diceRegex = regexp.MustCompile(`(?i)^(\d*)[d](\d+)(k[hl]?\d*|[ad])?$`)

// splitTerms breaks "1d20 + @mod - 2" into chunks with their signs. A glued
// macro modifier like "2d20kh1+3" splits the same way and simply lands as a
// flat term, which is mathematically identical.
func splitTerms(raw string) ([]string, []int, error) {
	compact := strings.ReplaceAll(raw, " ", "")
	if compact == "" {
		return nil, nil, fmt.Errorf("formula cannot be empty")
	}

	var chunks []string
	var signs []int
	sign := 1
	var cur strings.Builder

	flush := func() error {
		if cur.Len() == 0 {
			return fmt.Errorf("dangling operator in formula: %s", raw)
		}
		chunks = append(chunks, cur.String())
		cur.Reset()
		return nil
	}

	for i := 0; i < len(compact); i++ {
		c := compact[i]
		if c == '+' || c == '-' {
			if cur.Len() == 0 && len(chunks) == 0 {
				// leading sign on the first term
				if c == '-' {
					sign = -1
				}
				continue
			}
			if err := flush(); err != nil {
				return nil, nil, err
			}
			// sign held the flushed chunk's sign; record it and start fresh
			signs = append(signs, sign)
			sign = 1
			if c == '-' {
				sign = -1
			}
			continue
		}
		cur.WriteByte(c)
	}
	if err := flush(); err != nil {
		return nil, nil, err
	}
	signs = append(signs, sign)

	return chunks, signs, nil
}

// ParseFormula turns a textual roll expression into an immutable Formula.
// Accepted terms: dice macros (NdS, NdSkhX, NdSklX, NdSa, NdSd, with an
// optional glued +/-M), bare integers, and @name variables.
func ParseFormula(raw string) (*Formula, error) {
	chunks, signs, err := splitTerms(raw)
	if err != nil {
		return nil, err
	}

	f := &Formula{Raw: strings.TrimSpace(raw)}

	for i, chunk := range chunks {
		sign := signs[i]

		if strings.HasPrefix(chunk, "@") {
			name := chunk[1:]
			if name == "" {
				return nil, fmt.Errorf("variable term missing a name in formula: %s", raw)
			}
			f.Vars = append(f.Vars, VarTerm{Name: name, Sign: sign})
			continue
		}

		if val, convErr := strconv.Atoi(chunk); convErr == nil {
			f.Flats = append(f.Flats, FlatTerm{Value: sign * val})
			continue
		}

		term, parseErr := parseDiceChunk(chunk, sign)
		if parseErr != nil {
			return nil, parseErr
		}
		f.Dice = append(f.Dice, term)
	}

	if len(f.Dice) == 0 && len(f.Flats) == 0 && len(f.Vars) == 0 {
		return nil, fmt.Errorf("formula has no terms: %s", raw)
	}

	return f, nil
}

// parseDiceChunk decodes a single NdS[khX|klX|a|d] macro.
func parseDiceChunk(chunk string, sign int) (DiceTerm, error) {
	matches := diceRegex.FindStringSubmatch(chunk)
	if len(matches) == 0 {
		return DiceTerm{}, fmt.Errorf("invalid dice expression format: %s", chunk)
	}

	numStr, sidesStr, keepDropStr := matches[1], matches[2], matches[3]

	numDice := 1
	if numStr != "" {
		numDice, _ = strconv.Atoi(numStr)
	}
	if numDice <= 0 {
		return DiceTerm{}, fmt.Errorf("cannot roll %d dice", numDice)
	}

	sides, _ := strconv.Atoi(sidesStr)
	if sides <= 0 {
		return DiceTerm{}, fmt.Errorf("cannot roll a die with 0 or negative sides")
	}

	term := DiceTerm{Count: numDice, Sides: sides, Keep: numDice, Highest: true, Sign: sign}

	if keepDropStr != "" {
		kdLower := strings.ToLower(keepDropStr)
		switch {
		case kdLower == "a":
			term.Count = 2
			term.Keep = 1
			term.Highest = true
		case kdLower == "d":
			term.Count = 2
			term.Keep = 1
			term.Highest = false
		case strings.HasPrefix(kdLower, "k"):
			// e.g. kh2, kl1, k3; a bare kh/kl keeps a single die
			term.Highest = !strings.Contains(kdLower, "l")
			term.Keep = 1
			kdCountStr := strings.TrimLeft(kdLower, "khl")
			if kdCountStr != "" {
				if parsed, err := strconv.Atoi(kdCountStr); err == nil {
					term.Keep = parsed
				}
			}
		}
	}

	if term.Keep > term.Count {
		term.Keep = term.Count // Cannot keep more than rolled
	} else if term.Keep < 0 {
		term.Keep = 0
	}

	return term, nil
}

// DieResult records one dice term's contribution to an outcome.
type DieResult struct {
	Sides   int   `json:"sides"`
	Raw     []int `json:"raw"`
	Kept    []int `json:"kept"`
	Dropped []int `json:"dropped,omitempty"`
	Sign    int   `json:"sign"`
	IsD20   bool  `json:"is_d20"` // eligible for critical/fumble marking
}

// RollOutcome is the finalized answer of a single evaluation alongside the
// raw rolls used. It is produced fresh each time and never mutated after.
type RollOutcome struct {
	Total      int         `json:"total"`
	Dice       []DieResult `json:"dice"`
	Modifier   int         `json:"modifier"`
	Attempts   int         `json:"attempts"`
	Seeked     bool        `json:"seeked"`
	BestEffort bool        `json:"best_effort,omitempty"`
	Maximized  bool        `json:"maximized,omitempty"`
}

// HasNatural reports whether any kept d20 landed on the given face, which is
// what crit/fumble marking cares about.
func (o RollOutcome) HasNatural(face int) bool {
	for _, d := range o.Dice {
		if !d.IsD20 {
			continue
		}
		for _, v := range d.Kept {
			if v == face {
				return true
			}
		}
	}
	return false
}

// modifierSum resolves every flat and variable term against the bindings.
func (f *Formula) modifierSum(b Bindings) (int, error) {
	total := 0
	for _, flat := range f.Flats {
		total += flat.Value
	}
	for _, v := range f.Vars {
		val, ok := b[v.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnboundVariable, v.Name)
		}
		total += v.Sign * val
	}
	return total, nil
}

// bound computes the formula total with every die pinned to a fixed face
// chooser. Deterministic, consumes no randomness.
func (f *Formula) bound(b Bindings, face func(term DiceTerm) int) (int, error) {
	total, err := f.modifierSum(b)
	if err != nil {
		return 0, err
	}
	for _, term := range f.Dice {
		total += term.Sign * term.Keep * face(term)
	}
	return total, nil
}

// Min evaluates the formula with every random term resolved to its minimum
// possible face. Idempotent for a given formula and bindings.
func (f *Formula) Min(b Bindings) (int, error) {
	return f.bound(b, func(term DiceTerm) int {
		if term.Sign < 0 {
			return term.Sides // negative dice minimize the total at max face
		}
		return 1
	})
}

// Max evaluates the formula with every random term at its maximum face.
func (f *Formula) Max(b Bindings) (int, error) {
	return f.bound(b, func(term DiceTerm) int {
		if term.Sign < 0 {
			return 1
		}
		return term.Sides
	})
}

// Evaluate performs one fresh random evaluation of the formula.
func (f *Formula) Evaluate(b Bindings, r Roller) (RollOutcome, error) {
	mod, err := f.modifierSum(b)
	if err != nil {
		return RollOutcome{}, err
	}

	out := RollOutcome{Modifier: mod, Total: mod, Attempts: 1}

	for _, term := range f.Dice {
		res := rollTerm(term, func(sides int) int { return r.Roll(sides) })
		out.Dice = append(out.Dice, res)
		for _, v := range res.Kept {
			out.Total += term.Sign * v
		}
	}

	return out, nil
}

// maxOutcome builds the deterministic best-case outcome with every die at
// its maximum face. Used for the honest "best case" path when no target is
// requested.
func (f *Formula) maxOutcome(b Bindings) (RollOutcome, error) {
	mod, err := f.modifierSum(b)
	if err != nil {
		return RollOutcome{}, err
	}

	out := RollOutcome{Modifier: mod, Total: mod, Maximized: true, Attempts: 0}

	for _, term := range f.Dice {
		face := term.Sides
		if term.Sign < 0 {
			face = 1
		}
		res := rollTerm(term, func(int) int { return face })
		out.Dice = append(out.Dice, res)
		for _, v := range res.Kept {
			out.Total += term.Sign * v
		}
	}

	return out, nil
}

// rollTerm generates raw faces for one dice term and resolves its keep rule.
func rollTerm(term DiceTerm, face func(sides int) int) DieResult {
	res := DieResult{Sides: term.Sides, Sign: term.Sign, IsD20: term.Sides == 20}

	for i := 0; i < term.Count; i++ {
		res.Raw = append(res.Raw, face(term.Sides))
	}

	// Clone to safely sort without mutating the original order recording
	sorted := make([]int, len(res.Raw))
	copy(sorted, res.Raw)

	if term.Highest {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	} else {
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	}

	if term.Keep < term.Count {
		res.Kept = sorted[:term.Keep]
		res.Dropped = sorted[term.Keep:]
	} else {
		res.Kept = sorted
	}

	return res
}
