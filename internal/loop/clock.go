// Package loop paces a game loop: fixed-rate simulation ticks driven by an
// accumulator, and a separately capped render rate.
package loop

import "time"

// Defaults: 50 logical ticks and at most 120 renders per second.
const (
	DefaultTickRate     = 50
	DefaultRenderRate   = 120
	DefaultMaxFrameSkip = 10
)

// Clock accumulates wall-clock time and hands it out in fixed ticks.
type Clock struct {
	tick         time.Duration
	frame        time.Duration
	maxFrameSkip int

	accumulator time.Duration
	last        time.Time
	lastRender  time.Time
	started     bool
	rendered    bool
}

// NewClock creates a clock for tickRate updates and renderRate renders per
// second. maxFrameSkip bounds how many ticks a single Advance may return;
// time beyond that is dropped so a long stall does not snowball.
func NewClock(tickRate, renderRate, maxFrameSkip int) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	if renderRate <= 0 {
		renderRate = DefaultRenderRate
	}
	if maxFrameSkip <= 0 {
		maxFrameSkip = DefaultMaxFrameSkip
	}
	return &Clock{
		tick:         time.Second / time.Duration(tickRate),
		frame:        time.Second / time.Duration(renderRate),
		maxFrameSkip: maxFrameSkip,
	}
}

// TickDuration is the simulated time per tick.
func (c *Clock) TickDuration() time.Duration {
	return c.tick
}

// Advance adds the time elapsed since the previous call and returns how
// many ticks are now due. The first call only starts the clock.
func (c *Clock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	c.accumulator += elapsed

	ticks := 0
	for c.accumulator >= c.tick {
		if ticks == c.maxFrameSkip {
			c.accumulator = 0
			break
		}
		c.accumulator -= c.tick
		ticks++
	}
	return ticks
}

// RenderDue reports whether a frame should be drawn at now, and if so
// records now as the last render. The first call is always due.
func (c *Clock) RenderDue(now time.Time) bool {
	if c.rendered && now.Sub(c.lastRender) < c.frame {
		return false
	}
	c.rendered = true
	c.lastRender = now
	return true
}

// Restart drops accumulated tick time; the next Advance only restarts the
// clock. Render pacing is left alone.
func (c *Clock) Restart() {
	c.accumulator = 0
	c.started = false
}

// Reset forgets all accumulated time.
func (c *Clock) Reset() {
	c.accumulator = 0
	c.started = false
	c.rendered = false
}
