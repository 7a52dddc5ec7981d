package engine

import (
	"go.uber.org/zap"
)

// DefaultMaxAttempts bounds the seeking loop. A reachable target on a d20
// formula lands orders of magnitude sooner; the cap only matters for targets
// hit by astronomically rare face combinations in large dice pools.
const DefaultMaxAttempts = 10000

// Seeker re-rolls a formula until its total matches a requested target,
// falling back to a single honest evaluation when the target is absent or
// unreachable. Each call is independent and reentrant; the Seeker keeps no
// state across invocations.
type Seeker struct {
	roller      Roller
	maxAttempts int
	log         *zap.SugaredLogger
}

// SeekerOption customizes a Seeker.
type SeekerOption func(*Seeker)

// WithRoller swaps the random source (deterministic queues in tests).
func WithRoller(r Roller) SeekerOption {
	return func(s *Seeker) { s.roller = r }
}

// WithMaxAttempts overrides the retry cap. Zero or negative disables it,
// restoring the unbounded behavior of the naive algorithm.
func WithMaxAttempts(n int) SeekerOption {
	return func(s *Seeker) { s.maxAttempts = n }
}

// WithLogger attaches a logger for best-effort warnings.
func WithLogger(log *zap.SugaredLogger) SeekerOption {
	return func(s *Seeker) { s.log = log }
}

// NewSeeker builds a Seeker rolling crypto/rand faces with the default cap.
func NewSeeker(opts ...SeekerOption) *Seeker {
	s := &Seeker{
		roller:      CryptoRoller{},
		maxAttempts: DefaultMaxAttempts,
		log:         zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seek evaluates the formula until its total equals target.
//
// With no target it returns the deterministic best-case outcome (every die
// at its maximum face). With a target outside the formula's achievable
// [min, max] range it performs exactly one honest random evaluation and
// returns it unconditionally, without retrying. Otherwise it re-rolls until
// the total matches; every face has nonzero probability, so with the cap
// disabled this terminates with probability 1. With the cap enabled the
// last honest outcome comes back flagged BestEffort.
//
// An unbound variable in the formula is a configuration error and is
// returned immediately, never retried.
func (s *Seeker) Seek(f *Formula, b Bindings, target *int) (RollOutcome, error) {
	// Bounds are pure functions of the formula and bindings; computing them
	// first also surfaces unbound variables before any entropy is spent.
	min, err := f.Min(b)
	if err != nil {
		return RollOutcome{}, err
	}
	max, err := f.Max(b)
	if err != nil {
		return RollOutcome{}, err
	}

	if target == nil {
		return f.maxOutcome(b)
	}

	if *target > max || *target < min {
		out, err := f.Evaluate(b, s.roller)
		if err != nil {
			return RollOutcome{}, err
		}
		s.log.Debugw("target unreachable, returning honest roll",
			"formula", f.Raw, "target", *target, "min", min, "max", max, "total", out.Total)
		return out, nil
	}

	var out RollOutcome
	for attempt := 1; ; attempt++ {
		out, err = f.Evaluate(b, s.roller)
		if err != nil {
			return RollOutcome{}, err
		}
		out.Attempts = attempt

		if out.Total == *target {
			out.Seeked = true
			return out, nil
		}

		if s.maxAttempts > 0 && attempt >= s.maxAttempts {
			out.BestEffort = true
			s.log.Warnw("retry cap exhausted, returning best-effort roll",
				"formula", f.Raw, "target", *target, "attempts", attempt, "total", out.Total)
			return out, nil
		}
	}
}
