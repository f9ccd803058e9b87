package component

import "time"

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// AttackTimer accumulates elapsed time and becomes ready once per Period.
// Consuming readiness subtracts one period, so overflow carries into the next cycle.
type AttackTimer struct {
	Period  time.Duration
	Elapsed time.Duration
}

// Tick adds dt to the accumulator. Negative dt is ignored.
func (t *AttackTimer) Tick(dt time.Duration) {
	if dt > 0 {
		t.Elapsed += dt
	}
}

// Ready reports true at most once per accumulated period and consumes it.
// A timer with a non-positive period is never ready.
func (t *AttackTimer) Ready() bool {
	if t.Period <= 0 || t.Elapsed < t.Period {
		return false
	}
	t.Elapsed -= t.Period
	return true
}

// Remaining is the time left until the next Ready.
func (t *AttackTimer) Remaining() time.Duration {
	if t.Elapsed >= t.Period {
		return 0
	}
	return t.Period - t.Elapsed
}
