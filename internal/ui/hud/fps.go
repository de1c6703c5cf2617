// Package hud draws overlays that sit above the scene.
package hud

import (
	"fmt"
	"image/color"
	"time"

	"github.com/eerium/eerium/internal/render"
)

// maxFrameHistory bounds the timestamps kept for the average.
const maxFrameHistory = 60

// Config places the FPS overlay.
type Config struct {
	Position string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity  float64 // background panel opacity (0-1)
	TextSize float64
}

// DefaultConfig returns the stock overlay placement.
func DefaultConfig() Config {
	return Config{
		Position: "top-right",
		Opacity:  0.5,
		TextSize: 16,
	}
}

// FPSCounter measures the displayed frame rate over the last second and
// draws it as "FPS: n.n".
type FPSCounter struct {
	config  Config
	now     func() time.Time
	frames  []time.Time
	Visible bool
}

// NewFPSCounter creates a hidden counter. A nil now uses time.Now.
func NewFPSCounter(config Config, now func() time.Time) *FPSCounter {
	if now == nil {
		now = time.Now
	}
	return &FPSCounter{
		config: config,
		now:    now,
		frames: make([]time.Time, 0, maxFrameHistory+1),
	}
}

// Toggle flips visibility.
func (c *FPSCounter) Toggle() {
	c.Visible = !c.Visible
}

// Frame records that a frame was displayed.
func (c *FPSCounter) Frame() {
	now := c.now()
	c.frames = append(c.frames, now)

	cutoff := now.Add(-time.Second)
	drop := 0
	for drop < len(c.frames) && c.frames[drop].Before(cutoff) {
		drop++
	}
	if len(c.frames)-drop > maxFrameHistory {
		drop = len(c.frames) - maxFrameHistory
	}
	if drop > 0 {
		c.frames = append(c.frames[:0], c.frames[drop:]...)
	}
}

// FPS returns frame intervals per second across the recorded frames, or 0
// with fewer than two frames.
func (c *FPSCounter) FPS() float64 {
	if len(c.frames) < 2 {
		return 0
	}
	span := c.frames[len(c.frames)-1].Sub(c.frames[0]).Seconds()
	if span <= 0 {
		return 0
	}
	return float64(len(c.frames)-1) / span
}

// Text returns the overlay string.
func (c *FPSCounter) Text() string {
	return fmt.Sprintf("FPS: %.1f", c.FPS())
}

// Draw records a frame and, when visible, draws the overlay.
func (c *FPSCounter) Draw(surface render.Surface) {
	c.Frame()
	if !c.Visible {
		return
	}

	const padding = 10
	str := c.Text()
	tw, th := surface.MeasureText(str, c.config.TextSize)
	panelW, panelH := tw+2*padding, th+2*padding
	x, y := c.position(surface, panelW, panelH)

	alpha := uint8(c.config.Opacity * 255)
	surface.DrawFilledRect(x, y, panelW, panelH, color.NRGBA{20, 20, 30, alpha})
	surface.DrawText(str, x+padding, y+padding, color.RGBA{255, 255, 0, 255}, c.config.TextSize, render.AlignStart)
}

// position returns the top-left corner of the panel.
func (c *FPSCounter) position(surface render.Surface, w, h float64) (float64, float64) {
	const margin = 10
	sw, sh := surface.ViewportSize()

	switch c.config.Position {
	case "top-left":
		return margin, margin
	case "bottom-left":
		return margin, float64(sh) - h - margin
	case "bottom-right":
		return float64(sw) - w - margin, float64(sh) - h - margin
	default: // "top-right"
		return float64(sw) - w - margin, margin
	}
}
