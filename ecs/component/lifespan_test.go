package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestLifespanTick(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		ticks    []time.Duration
		finished bool
		elapsed  time.Duration
	}{
		{"default_not_done", DefaultLifespanDuration, []time.Duration{100 * time.Millisecond}, false, 100 * time.Millisecond},
		{"exactly_at_duration", 400 * time.Millisecond, []time.Duration{200 * time.Millisecond, 200 * time.Millisecond}, true, 400 * time.Millisecond},
		{"overshoot_clamps", 50 * time.Millisecond, []time.Duration{40 * time.Millisecond, 40 * time.Millisecond}, true, 50 * time.Millisecond},
		{"negative_dt_ignored", 50 * time.Millisecond, []time.Duration{-time.Second, 10 * time.Millisecond}, false, 10 * time.Millisecond},
		{"zero_duration", 0, []time.Duration{0}, true, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLifespan(tc.duration)
			var done bool
			for _, dt := range tc.ticks {
				done = l.Tick(dt)
			}
			assert.Equal(t, tc.finished, done)
			assert.Equal(t, tc.elapsed, l.Elapsed)
			assert.Equal(t, tc.duration-tc.elapsed, l.Remaining())
		})
	}
}

func TestNewLifespanClampsNegative(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewLifespan(-time.Second).Duration)
	assert.Equal(t, DefaultLifespanDuration, DefaultLifespan().Duration)
}

func TestLifespanFinishesOnFirstTickReachingDuration(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := time.Duration(rapid.Int64Range(1, int64(2*time.Second)).Draw(t, "duration"))
		dt := time.Duration(rapid.Int64Range(1, int64(100*time.Millisecond)).Draw(t, "dt"))

		l := NewLifespan(d)
		var sum time.Duration
		for !l.Finished() {
			sum += dt
			done := l.Tick(dt)
			if done != (sum >= d) {
				t.Fatalf("finished=%v after %v of %v", done, sum, d)
			}
			if l.Elapsed > l.Duration {
				t.Fatalf("elapsed %v exceeds duration %v", l.Elapsed, l.Duration)
			}
		}
	})
}
