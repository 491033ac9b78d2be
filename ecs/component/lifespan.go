package component

import "time"

// DefaultLifespanDuration is used when a projectile is spawned without an
// explicit lifespan.
const DefaultLifespanDuration = 400 * time.Millisecond

// Lifespan is a one-shot countdown. The entity owning it is despawned, with
// its children, on the tick the countdown completes.
type Lifespan struct {
	Duration time.Duration
	Elapsed  time.Duration
}

func NewLifespan(d time.Duration) Lifespan {
	if d < 0 {
		d = 0
	}
	return Lifespan{Duration: d}
}

func DefaultLifespan() Lifespan {
	return NewLifespan(DefaultLifespanDuration)
}

// Tick advances the countdown by dt and reports whether it has completed.
// Elapsed never exceeds Duration.
func (l *Lifespan) Tick(dt time.Duration) bool {
	if dt > 0 {
		l.Elapsed += dt
	}
	if l.Elapsed > l.Duration {
		l.Elapsed = l.Duration
	}
	return l.Finished()
}

func (l Lifespan) Finished() bool {
	return l.Elapsed >= l.Duration
}

func (l Lifespan) Remaining() time.Duration {
	return l.Duration - l.Elapsed
}

var LifespanComponent = NewComponent[Lifespan]()
