package engine

import (
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestSeekReachableTarget(t *testing.T) {
	f, err := ParseFormula("1d20 + 5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := NewSeeker()
	out, err := s.Seek(f, Bindings{}, intPtr(17))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Total != 17 {
		t.Fatalf("expected seeked total 17, got %d", out.Total)
	}
	if !out.Seeked {
		t.Errorf("expected outcome to be flagged as seeked")
	}
	if out.Attempts < 1 {
		t.Errorf("expected at least one attempt, got %d", out.Attempts)
	}
}

func TestSeekAbsentTargetMaximizes(t *testing.T) {
	f, err := ParseFormula("2d20kh + 3")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := NewSeeker()
	out, err := s.Seek(f, Bindings{}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Total != 23 {
		t.Fatalf("expected maximized total 23, got %d", out.Total)
	}
	if !out.Maximized {
		t.Errorf("expected outcome to be flagged as maximized")
	}
	if out.Seeked {
		t.Errorf("maximized outcome must not be flagged as seeked")
	}
}

func TestSeekUnreachableTargetFallsBack(t *testing.T) {
	f, err := ParseFormula("1d20 + 5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := NewSeeker()

	// 30 > max of 25: exactly one honest evaluation, returned as-is
	out, err := s.Seek(f, Bindings{}, intPtr(30))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Attempts != 1 {
		t.Errorf("expected a single honest evaluation, got %d attempts", out.Attempts)
	}
	if out.Total < 6 || out.Total > 25 {
		t.Errorf("honest total %d outside achievable range [6, 25]", out.Total)
	}
	if out.Seeked {
		t.Errorf("fallback outcome must not be flagged as seeked")
	}

	// 3 < min of 6: same honest fallback on the low side
	out, err = s.Seek(f, Bindings{}, intPtr(3))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Attempts != 1 || out.Seeked {
		t.Errorf("expected one honest evaluation below min, got attempts=%d seeked=%v", out.Attempts, out.Seeked)
	}
}

func TestSeekDeterministicRetries(t *testing.T) {
	f, err := ParseFormula("1d20 + 5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// First evaluation misses (4+5=9), second hits (12+5=17)
	roller := NewQueueRoller(4, 12)
	s := NewSeeker(WithRoller(roller))

	out, err := s.Seek(f, Bindings{}, intPtr(17))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Total != 17 {
		t.Errorf("expected total 17, got %d", out.Total)
	}
	if out.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", out.Attempts)
	}
	if roller.Remaining() != 0 {
		t.Errorf("expected the whole queue consumed, %d faces left", roller.Remaining())
	}
}

func TestSeekRetryCapExhausted(t *testing.T) {
	f, err := ParseFormula("1d20")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	roller := NewQueueRoller(1, 2, 3)
	s := NewSeeker(WithRoller(roller), WithMaxAttempts(3))

	out, err := s.Seek(f, Bindings{}, intPtr(5))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !out.BestEffort {
		t.Fatalf("expected a best-effort outcome after cap exhaustion")
	}
	if out.Attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", out.Attempts)
	}
	if out.Total != 3 {
		t.Errorf("expected the last honest total 3, got %d", out.Total)
	}
	if out.Seeked {
		t.Errorf("best-effort outcome must not be flagged as seeked")
	}
}

func TestSeekDegenerateRange(t *testing.T) {
	// min == max: the loop is effectively a single check
	f, err := ParseFormula("1d1 + 2")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := NewSeeker()
	out, err := s.Seek(f, Bindings{}, intPtr(3))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out.Total != 3 || !out.Seeked || out.Attempts != 1 {
		t.Errorf("expected an immediate match, got total=%d seeked=%v attempts=%d", out.Total, out.Seeked, out.Attempts)
	}
}

func TestSeekUnboundVariable(t *testing.T) {
	f, err := ParseFormula("1d20 + @mod")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := NewSeeker()
	_, err = s.Seek(f, Bindings{}, intPtr(10))
	if !errors.Is(err, ErrUnboundVariable) {
		t.Fatalf("expected ErrUnboundVariable, got %v", err)
	}
}

func TestSeekVariablesInBounds(t *testing.T) {
	f, err := ParseFormula("1d20 + @mod")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	s := NewSeeker()
	out, err := s.Seek(f, Bindings{"mod": 7}, intPtr(27))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// 27 is the new max with mod 7; reachable only on a natural 20
	if out.Total != 27 {
		t.Errorf("expected total 27, got %d", out.Total)
	}
	if !out.HasNatural(20) {
		t.Errorf("total 27 requires a natural 20")
	}
}
