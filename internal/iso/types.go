// Package iso implements the isometric coordinate system: the diamond
// projection between tile-space and pixel-space, the zoom controller that
// owns the tile dimensions, and the deadzone camera that owns the offset.
package iso

import "math"

// TileCoord is a position in continuous tile-space. Integer values are tile
// centers; the space is not bounded by the map extent.
type TileCoord struct {
	X, Y float64
}

// Add returns t + o.
func (t TileCoord) Add(o TileCoord) TileCoord {
	return TileCoord{X: t.X + o.X, Y: t.Y + o.Y}
}

// Sub returns t - o.
func (t TileCoord) Sub(o TileCoord) TileCoord {
	return TileCoord{X: t.X - o.X, Y: t.Y - o.Y}
}

// Len returns the Euclidean length of t treated as a vector.
func (t TileCoord) Len() float64 {
	return math.Hypot(t.X, t.Y)
}

// Round snaps both components to the nearest integer tile.
func (t TileCoord) Round() TileCoord {
	return TileCoord{X: math.Round(t.X), Y: math.Round(t.Y)}
}

// PixelCoord is a screen-space position: origin top-left, y grows downward.
type PixelCoord struct {
	X, Y float64
}

// Dimensions holds the on-screen size of one tile.
type Dimensions struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned screen rectangle given by its inclusive bounds.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether p lies inside r, bounds included.
func (r Rect) Contains(p PixelCoord) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}
