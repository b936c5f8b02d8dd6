package common

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	base := time.Unix(1000, 0)
	steps := []time.Duration{0, 16 * time.Millisecond, 3 * time.Second, 0}
	i := 0
	now := func() time.Time {
		base = base.Add(steps[min(i, len(steps)-1)])
		i++
		return base
	}

	c := NewClock(now)
	want := []float64{0.016, 3, 0}
	for _, w := range want {
		if got := c.Tick(); got != w {
			t.Fatalf("expected %v seconds, got %v", w, got)
		}
	}
}
