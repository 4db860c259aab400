package exec

import "time"

// Policy bounds the dispatch attempts for one logical request. It is
// immutable configuration, supplied at executor construction; nothing
// mutates it afterwards.
type Policy struct {
	// MaxAttempts is the attempt budget: the maximum number of dispatch
	// attempts for one logical request. Must be positive.
	// default: 3
	MaxAttempts int

	// Delay is the fixed pause between a failed transient attempt and
	// the next one. Must be non-negative.
	// default: 1 second
	Delay time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Delay:       1000 * time.Millisecond,
	}
}

// applyPolicy replaces out-of-range values with defaults instead of
// failing construction.
func applyPolicy(in Policy) Policy {
	out := DefaultPolicy()
	if in.MaxAttempts > 0 {
		out.MaxAttempts = in.MaxAttempts
	}
	if in.Delay >= 0 {
		out.Delay = in.Delay
	}
	return out
}
