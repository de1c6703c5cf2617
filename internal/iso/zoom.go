package iso

import "math"

// Default zoom parameters.
const (
	DefaultMinTileWidth  = 32.0
	DefaultMaxTileWidth  = 256.0
	DefaultTileWidth     = 64.0
	DefaultAspectRatio   = 0.45 // slightly flatter than 2:1
	DefaultZoomInFactor  = 1.1
	DefaultZoomOutFactor = 0.9
)

// ZoomLimits configures a Zoom.
type ZoomLimits struct {
	MinWidth     float64
	MaxWidth     float64
	DefaultWidth float64
	AspectRatio  float64
}

// DefaultZoomLimits returns the stock tile sizes.
func DefaultZoomLimits() ZoomLimits {
	return ZoomLimits{
		MinWidth:     DefaultMinTileWidth,
		MaxWidth:     DefaultMaxTileWidth,
		DefaultWidth: DefaultTileWidth,
		AspectRatio:  DefaultAspectRatio,
	}
}

// Zoom owns the current tile width. The height is always derived from the
// width through the fixed aspect ratio and the width never leaves
// [MinWidth, MaxWidth].
type Zoom struct {
	limits ZoomLimits
	width  float64
	height float64
}

// NewZoom creates a zoom controller at the default width.
func NewZoom(limits ZoomLimits) *Zoom {
	z := &Zoom{limits: limits}
	z.setWidth(limits.DefaultWidth)
	return z
}

// SetZoom sets the width to DefaultWidth*factor.
func (z *Zoom) SetZoom(factor float64) {
	if !validFactor(factor) {
		return
	}
	z.setWidth(z.limits.DefaultWidth * factor)
}

// ZoomIn multiplies the current width by factor (expected > 1).
func (z *Zoom) ZoomIn(factor float64) {
	if !validFactor(factor) {
		return
	}
	z.setWidth(z.width * factor)
}

// ZoomOut multiplies the current width by factor (expected < 1).
func (z *Zoom) ZoomOut(factor float64) {
	if !validFactor(factor) {
		return
	}
	z.setWidth(z.width * factor)
}

// Reset restores the default width.
func (z *Zoom) Reset() {
	z.setWidth(z.limits.DefaultWidth)
}

// Dimensions returns the current tile dimensions.
func (z *Zoom) Dimensions() Dimensions {
	return Dimensions{Width: z.width, Height: z.height}
}

// Projection returns a projection for the current dimensions.
func (z *Zoom) Projection() Projection {
	return NewProjection(z.Dimensions())
}

// Scale is the current width relative to the default width.
func (z *Zoom) Scale() float64 {
	return z.width / z.limits.DefaultWidth
}

// Limits returns the configured limits.
func (z *Zoom) Limits() ZoomLimits {
	return z.limits
}

func (z *Zoom) setWidth(w float64) {
	z.width = math.Max(z.limits.MinWidth, math.Min(z.limits.MaxWidth, w))
	z.height = z.width * z.limits.AspectRatio
}

func validFactor(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}
