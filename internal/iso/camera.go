package iso

// DefaultDeadzoneDivisor splits the viewport so the deadzone is the middle
// fifth on each axis.
const DefaultDeadzoneDivisor = 5.0

// Camera owns the world-to-screen offset and keeps a followed point inside a
// centered deadzone. Following is a rigid snap with no easing: when the
// point leaves the deadzone the offset moves by exactly the overshoot.
type Camera struct {
	offset  PixelCoord
	initial PixelCoord
	divisor float64
}

// NewCamera creates a camera at the given offset. A divisor <= 0 falls back
// to DefaultDeadzoneDivisor.
func NewCamera(offset PixelCoord, divisor float64) *Camera {
	if divisor <= 0 {
		divisor = DefaultDeadzoneDivisor
	}
	return &Camera{
		offset:  offset,
		initial: offset,
		divisor: divisor,
	}
}

// Offset returns the current offset.
func (c *Camera) Offset() PixelCoord {
	return c.offset
}

// Pan moves the offset by (dx, dy) pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.offset.X += dx
	c.offset.Y += dy
}

// Reset restores the offset the camera was created with.
func (c *Camera) Reset() {
	c.offset = c.initial
}

// Deadzone returns the central viewport region in which the camera does
// not react.
func (c *Camera) Deadzone(viewportW, viewportH float64) Rect {
	marginX := viewportW / c.divisor
	marginY := viewportH / c.divisor
	return Rect{
		Left:   (viewportW - marginX) / 2,
		Right:  (viewportW + marginX) / 2,
		Top:    (viewportH - marginY) / 2,
		Bottom: (viewportH + marginY) / 2,
	}
}

// Follow projects target with the current offset and shifts the offset so
// the projected point ends up inside the deadzone. Each axis is handled on
// its own. It reports whether the offset changed.
func (c *Camera) Follow(target TileCoord, proj Projection, viewportW, viewportH float64) bool {
	if viewportW <= 0 || viewportH <= 0 {
		return false
	}

	screen := proj.TileToPixel(target, c.offset)
	zone := c.Deadzone(viewportW, viewportH)
	if zone.Contains(screen) {
		return false
	}
	moved := false

	if screen.X < zone.Left {
		c.offset.X += zone.Left - screen.X
		moved = true
	} else if screen.X > zone.Right {
		c.offset.X += zone.Right - screen.X
		moved = true
	}

	if screen.Y < zone.Top {
		c.offset.Y += zone.Top - screen.Y
		moved = true
	} else if screen.Y > zone.Bottom {
		c.offset.Y += zone.Bottom - screen.Y
		moved = true
	}

	return moved
}
