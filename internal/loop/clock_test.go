package loop

import (
	"testing"
	"time"
)

func TestAdvanceCountsFixedTicks(t *testing.T) {
	c := NewClock(50, 120, 10)
	start := time.Unix(0, 0)

	if n := c.Advance(start); n != 0 {
		t.Fatalf("Expected 0 ticks on the first call, got %d", n)
	}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"less than a tick", 10 * time.Millisecond, 0},
		{"completes the first tick", 10 * time.Millisecond, 1},
		{"exactly two ticks", 40 * time.Millisecond, 2},
		{"carry over", 30 * time.Millisecond, 1},
		{"carry completes", 10 * time.Millisecond, 1},
	}

	now := start
	for _, tc := range tests {
		now = now.Add(tc.elapsed)
		if got := c.Advance(now); got != tc.want {
			t.Errorf("%s: expected %d ticks, got %d", tc.name, tc.want, got)
		}
	}
}

func TestAdvanceCapsFrameSkip(t *testing.T) {
	c := NewClock(50, 120, 5)
	start := time.Unix(0, 0)
	c.Advance(start)

	if n := c.Advance(start.Add(10 * time.Second)); n != 5 {
		t.Errorf("Expected 5 ticks after a stall, got %d", n)
	}
	if n := c.Advance(start.Add(10*time.Second + 20*time.Millisecond)); n != 1 {
		t.Errorf("Expected the backlog dropped and normal pacing, got %d", n)
	}
}

func TestAdvanceIgnoresBackwardsTime(t *testing.T) {
	c := NewClock(50, 120, 5)
	start := time.Unix(100, 0)
	c.Advance(start)
	if n := c.Advance(start.Add(-time.Second)); n != 0 {
		t.Errorf("Expected 0 ticks when time goes backwards, got %d", n)
	}
}

func TestRenderDueCadence(t *testing.T) {
	c := NewClock(50, 100, 5)
	start := time.Unix(0, 0)

	if !c.RenderDue(start) {
		t.Fatal("Expected the first render to be due")
	}
	if c.RenderDue(start.Add(5 * time.Millisecond)) {
		t.Error("Expected no render 5ms later at 100Hz")
	}
	if !c.RenderDue(start.Add(10 * time.Millisecond)) {
		t.Error("Expected a render after 10ms")
	}
	if c.RenderDue(start.Add(15 * time.Millisecond)) {
		t.Error("Expected the interval to restart at the last render")
	}
}

func TestDefaultsForBadRates(t *testing.T) {
	c := NewClock(0, -1, 0)
	if c.TickDuration() != time.Second/DefaultTickRate {
		t.Errorf("Expected default tick duration, got %v", c.TickDuration())
	}
}

func TestRestartKeepsRenderPacing(t *testing.T) {
	c := NewClock(50, 100, 5)
	start := time.Unix(0, 0)
	c.Advance(start)
	c.Advance(start.Add(30 * time.Millisecond))
	c.RenderDue(start.Add(30 * time.Millisecond))

	c.Restart()
	if n := c.Advance(start.Add(time.Second)); n != 0 {
		t.Errorf("Expected restart to drop elapsed time, got %d ticks", n)
	}
	// 10ms was pending before the restart; it must not complete a tick now
	if n := c.Advance(start.Add(time.Second + 10*time.Millisecond)); n != 0 {
		t.Errorf("Expected empty accumulator after restart, got %d ticks", n)
	}
	if c.RenderDue(start.Add(35 * time.Millisecond)) {
		t.Error("Expected render pacing to survive a restart")
	}
}

func TestResetForgetsRender(t *testing.T) {
	c := NewClock(50, 100, 5)
	start := time.Unix(0, 0)
	c.RenderDue(start)
	c.Reset()
	if !c.RenderDue(start.Add(time.Millisecond)) {
		t.Error("Expected a render to be due after reset")
	}
}
