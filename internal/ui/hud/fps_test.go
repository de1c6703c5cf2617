package hud

import (
	"math"
	"testing"
	"time"

	"github.com/eerium/eerium/internal/render/rendertest"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestFPSNeedsTwoFrames(t *testing.T) {
	clk := newFakeClock()
	c := NewFPSCounter(DefaultConfig(), clk.now)
	if fps := c.FPS(); fps != 0 {
		t.Errorf("Expected 0 with no frames, got %v", fps)
	}
	c.Frame()
	if fps := c.FPS(); fps != 0 {
		t.Errorf("Expected 0 with one frame, got %v", fps)
	}
}

func TestFPSSteadyRate(t *testing.T) {
	clk := newFakeClock()
	c := NewFPSCounter(DefaultConfig(), clk.now)
	for i := 0; i < 30; i++ {
		c.Frame()
		clk.advance(25 * time.Millisecond)
	}
	if fps := c.FPS(); math.Abs(fps-40) > 1e-9 {
		t.Errorf("Expected 40 FPS, got %v", fps)
	}
	if got := c.Text(); got != "FPS: 40.0" {
		t.Errorf("Expected 'FPS: 40.0', got '%s'", got)
	}
}

func TestFPSForgetsOldFrames(t *testing.T) {
	clk := newFakeClock()
	c := NewFPSCounter(DefaultConfig(), clk.now)
	for i := 0; i < 10; i++ {
		c.Frame()
		clk.advance(10 * time.Millisecond)
	}
	clk.advance(2 * time.Second)
	c.Frame()
	if fps := c.FPS(); fps != 0 {
		t.Errorf("Expected 0 after a stall, got %v", fps)
	}
	if len(c.frames) != 1 {
		t.Errorf("Expected 1 frame kept, got %d", len(c.frames))
	}
}

func TestFPSHistoryBounded(t *testing.T) {
	clk := newFakeClock()
	c := NewFPSCounter(DefaultConfig(), clk.now)
	for i := 0; i < 200; i++ {
		c.Frame()
		clk.advance(time.Millisecond)
	}
	if len(c.frames) != maxFrameHistory {
		t.Errorf("Expected %d frames kept, got %d", maxFrameHistory, len(c.frames))
	}
	if fps := c.FPS(); math.Abs(fps-1000) > 1e-6 {
		t.Errorf("Expected 1000 FPS, got %v", fps)
	}
}

func TestDrawHiddenRecordsFrameOnly(t *testing.T) {
	clk := newFakeClock()
	c := NewFPSCounter(DefaultConfig(), clk.now)
	rec := rendertest.NewRecorder(800, 600)
	c.Draw(rec)
	if len(rec.Calls) != 0 {
		t.Errorf("Expected no draw calls while hidden, got %v", rec.Calls)
	}
	if len(c.frames) != 1 {
		t.Errorf("Expected the frame recorded, got %d", len(c.frames))
	}
}

func TestDrawTopRight(t *testing.T) {
	clk := newFakeClock()
	c := NewFPSCounter(DefaultConfig(), clk.now)
	c.Toggle()
	rec := rendertest.NewRecorder(800, 600)
	c.Draw(rec)

	texts := rec.Texts()
	if len(texts) != 1 || texts[0] != "FPS: 0.0" {
		t.Fatalf("Expected 'FPS: 0.0', got %v", texts)
	}
	panel := rec.Filter(rendertest.OpFilledRect)
	if len(panel) != 1 {
		t.Fatalf("Expected one panel, got %d", len(panel))
	}
	if right := panel[0].X + panel[0].W; right != 790 {
		t.Errorf("Expected panel right edge at 790, got %v", right)
	}
	if panel[0].Y != 10 {
		t.Errorf("Expected panel at y 10, got %v", panel[0].Y)
	}
}

func TestDrawPositions(t *testing.T) {
	tests := []struct {
		position string
		x, y     func(w, h float64) float64
	}{
		{"top-left", func(w, h float64) float64 { return 10 }, func(w, h float64) float64 { return 10 }},
		{"bottom-left", func(w, h float64) float64 { return 10 }, func(w, h float64) float64 { return 600 - h - 10 }},
		{"bottom-right", func(w, h float64) float64 { return 800 - w - 10 }, func(w, h float64) float64 { return 600 - h - 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Position = tt.position
			c := NewFPSCounter(cfg, newFakeClock().now)
			c.Visible = true
			rec := rendertest.NewRecorder(800, 600)
			c.Draw(rec)
			p := rec.Filter(rendertest.OpFilledRect)[0]
			if p.X != tt.x(p.W, p.H) || p.Y != tt.y(p.W, p.H) {
				t.Errorf("Expected panel at (%v,%v), got (%v,%v)", tt.x(p.W, p.H), tt.y(p.W, p.H), p.X, p.Y)
			}
		})
	}
}
