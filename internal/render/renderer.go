// Package render defines the backend-neutral contract between the game and
// the window/graphics library. Game code draws through Surface and reads
// input through EventSource; internal/render/ebiten implements both.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminated is returned from Game.Update to end the run loop cleanly.
var ErrTerminated = errors.New("render: terminated")

// Texture is an opaque handle to an image owned by the backend. A nil
// Texture means the asset is missing and the draw call should be skipped.
type Texture interface {
	Size() (width, height int)
}

// Align is the horizontal anchor of a text draw.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Surface is the drawing capability handed to game code for one frame.
type Surface interface {
	// Clear fills the whole surface.
	Clear(clr color.Color)

	// DrawFilledQuad draws a diamond inscribed in the w x h box centered
	// on (cx, cy).
	DrawFilledQuad(cx, cy, w, h float64, clr color.Color)

	// DrawTexturedQuad stretches tex over the w x h box centered on
	// (cx, cy). A nil tex draws nothing.
	DrawTexturedQuad(cx, cy, w, h float64, tex Texture)

	// DrawFilledRect fills an axis-aligned rectangle with its top-left
	// corner at (x, y).
	DrawFilledRect(x, y, w, h float64, clr color.Color)

	// DrawText draws a single line of text whose top edge is at y. Text
	// is skipped when no font is available.
	DrawText(str string, x, y float64, clr color.Color, size float64, align Align)

	// MeasureText returns the size of str at the given font size.
	MeasureText(str string, size float64) (width, height float64)

	// ViewportSize returns the surface size in pixels.
	ViewportSize() (width, height int)
}

// ResourceLoader creates textures.
type ResourceLoader interface {
	// LoadTexture decodes an image file.
	LoadTexture(path string) (Texture, error)

	// NewTexture uploads an in-memory image.
	NewTexture(img image.Image) Texture

	// SubTexture returns the region r of tex.
	SubTexture(tex Texture, r image.Rectangle) Texture
}

// Game is driven by an Engine.
type Game interface {
	// Update runs once per engine tick.
	Update() error

	// Draw is called once per displayed frame.
	Draw(screen Surface)

	// Layout accepts the window size and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the run loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// SetTickRate sets how many times per second Game.Update is called.
	SetTickRate(tps int)

	// RunGame blocks until the window closes or Update returns
	// ErrTerminated.
	RunGame(game Game) error
}
