package engine

import (
	"errors"
	"testing"
)

func TestEvaluateBasic(t *testing.T) {
	f, err := ParseFormula("3d6")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res, err := f.Evaluate(Bindings{}, CryptoRoller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(res.Dice) != 1 {
		t.Fatalf("expected 1 dice term, got %d", len(res.Dice))
	}

	if len(res.Dice[0].Raw) != 3 {
		t.Fatalf("expected 3 raw rolls, got %d", len(res.Dice[0].Raw))
	}

	for _, v := range res.Dice[0].Raw {
		if v < 1 || v > 6 {
			t.Errorf("roll out of bounds for d6: %d", v)
		}
	}
}

func TestEvaluateAdvantage(t *testing.T) {
	f, err := ParseFormula("1d20a")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res, err := f.Evaluate(Bindings{}, CryptoRoller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	d := res.Dice[0]
	if len(d.Raw) != 2 {
		t.Fatalf("advantage should roll 2 dice, got %d", len(d.Raw))
	}

	if len(d.Kept) != 1 {
		t.Fatalf("advantage should keep 1 die, got %d", len(d.Kept))
	}

	if len(d.Dropped) != 1 {
		t.Fatalf("advantage should drop 1 die, got %d", len(d.Dropped))
	}

	if d.Kept[0] < d.Dropped[0] {
		t.Errorf("kept die (%d) is lower than dropped die (%d) in advantage", d.Kept[0], d.Dropped[0])
	}
}

func TestEvaluateModifier(t *testing.T) {
	f, err := ParseFormula("1d1 + 5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res, err := f.Evaluate(Bindings{}, CryptoRoller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if res.Total != 6 {
		t.Errorf("expected total 6 (1 + 5), got %d", res.Total)
	}
}

func TestEvaluateKeepDrop(t *testing.T) {
	f, err := ParseFormula("4d6kh3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res, err := f.Evaluate(Bindings{}, CryptoRoller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	d := res.Dice[0]
	if len(d.Raw) != 4 {
		t.Fatalf("expected 4 raw rolls, got %d", len(d.Raw))
	}

	if len(d.Kept) != 3 {
		t.Fatalf("expected 3 kept rolls, got %d", len(d.Kept))
	}

	if len(d.Dropped) != 1 {
		t.Fatalf("expected 1 dropped roll, got %d", len(d.Dropped))
	}

	// Verify kept are >= dropped
	droppedVal := d.Dropped[0]
	for _, k := range d.Kept {
		if k < droppedVal {
			t.Errorf("kept value %d is less than dropped value %d", k, droppedVal)
		}
	}
}

func TestEvaluateVariables(t *testing.T) {
	f, err := ParseFormula("1d20 + @mod + @prof")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	roller := NewQueueRoller(10)
	res, err := f.Evaluate(Bindings{"mod": 3, "prof": 2}, roller)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if res.Total != 15 {
		t.Errorf("expected total 15 (10 + 3 + 2), got %d", res.Total)
	}

	if res.Modifier != 5 {
		t.Errorf("expected modifier 5, got %d", res.Modifier)
	}
}

func TestEvaluateUnboundVariable(t *testing.T) {
	f, err := ParseFormula("1d20 + @mod")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	_, err = f.Evaluate(Bindings{}, CryptoRoller{})
	if !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("expected ErrUnboundVariable, got %v", err)
	}
}

func TestParseFormulaRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "   ", "1d20 +", "xd20", "1d0", "0d6", "d20kq2"} {
		if _, err := ParseFormula(raw); err == nil {
			t.Errorf("expected parse error for %q", raw)
		}
	}
}

func TestNegativeDiceTerm(t *testing.T) {
	f, err := ParseFormula("1d1 - 1d1 + 4")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res, err := f.Evaluate(Bindings{}, CryptoRoller{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if res.Total != 4 {
		t.Errorf("expected total 4 (1 - 1 + 4), got %d", res.Total)
	}
}

func TestMinMax(t *testing.T) {
	cases := []struct {
		formula  string
		bindings Bindings
		min      int
		max      int
	}{
		{"1d20 + 5", Bindings{}, 6, 25},
		{"2d20kh + 3", Bindings{}, 4, 23},
		{"2d20kl1 + 3", Bindings{}, 4, 23},
		{"3d6", Bindings{}, 3, 18},
		{"4d6kh3", Bindings{}, 3, 18},
		{"1d20 + @mod", Bindings{"mod": -2}, -1, 18},
		{"1d4 - 1d6", Bindings{}, -5, 3},
		{"1d6 +3", Bindings{}, 4, 9},
		{"1d6 -2", Bindings{}, -1, 4},
	}

	for _, tc := range cases {
		f, err := ParseFormula(tc.formula)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.formula, err)
		}

		min, err := f.Min(tc.bindings)
		if err != nil {
			t.Fatalf("min %q: %v", tc.formula, err)
		}
		max, err := f.Max(tc.bindings)
		if err != nil {
			t.Fatalf("max %q: %v", tc.formula, err)
		}

		if min != tc.min || max != tc.max {
			t.Errorf("%q: expected range [%d, %d], got [%d, %d]", tc.formula, tc.min, tc.max, min, max)
		}

		// Idempotence: bounds consume no randomness and never change
		again, _ := f.Min(tc.bindings)
		if again != min {
			t.Errorf("%q: Min not idempotent: %d then %d", tc.formula, min, again)
		}
		again, _ = f.Max(tc.bindings)
		if again != max {
			t.Errorf("%q: Max not idempotent: %d then %d", tc.formula, max, again)
		}
	}
}

func TestGluedMacroModifier(t *testing.T) {
	f, err := ParseFormula("2d20kh1+3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	max, err := f.Max(Bindings{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if max != 23 {
		t.Errorf("expected max 23, got %d", max)
	}
}

func TestHasNatural(t *testing.T) {
	f, err := ParseFormula("1d20 + 2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	res, err := f.Evaluate(Bindings{}, NewQueueRoller(20))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !res.HasNatural(20) {
		t.Errorf("expected a natural 20 on the kept d20")
	}
	if res.HasNatural(1) {
		t.Errorf("did not expect a natural 1")
	}
}
