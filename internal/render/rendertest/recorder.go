// Package rendertest provides an in-memory render.Surface for tests.
package rendertest

import (
	"image"
	"image/color"

	"github.com/eerium/eerium/internal/render"
)

// Op names the kind of a recorded call.
type Op string

const (
	OpClear        Op = "clear"
	OpFilledQuad   Op = "filled_quad"
	OpTexturedQuad Op = "textured_quad"
	OpFilledRect   Op = "filled_rect"
	OpText         Op = "text"
)

// Call is one recorded draw call.
type Call struct {
	Op         Op
	X, Y, W, H float64
	Color      color.Color
	Texture    render.Texture
	Text       string
	Align      render.Align
}

// Recorder implements render.Surface by remembering every call.
type Recorder struct {
	Width, Height int
	Calls         []Call

	// CharWidth is the advance used by MeasureText per rune, per unit of
	// font size.
	CharWidth float64
}

// NewRecorder creates a recorder with the given viewport.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height, CharWidth: 0.5}
}

func (r *Recorder) Clear(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: clr})
}

func (r *Recorder) DrawFilledQuad(cx, cy, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFilledQuad, X: cx, Y: cy, W: w, H: h, Color: clr})
}

func (r *Recorder) DrawTexturedQuad(cx, cy, w, h float64, tex render.Texture) {
	if tex == nil {
		return
	}
	r.Calls = append(r.Calls, Call{Op: OpTexturedQuad, X: cx, Y: cy, W: w, H: h, Texture: tex})
}

func (r *Recorder) DrawFilledRect(x, y, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFilledRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) DrawText(str string, x, y float64, clr color.Color, size float64, align render.Align) {
	r.Calls = append(r.Calls, Call{Op: OpText, X: x, Y: y, H: size, Color: clr, Text: str, Align: align})
}

func (r *Recorder) MeasureText(str string, size float64) (float64, float64) {
	return float64(len([]rune(str))) * size * r.CharWidth, size
}

func (r *Recorder) ViewportSize() (int, int) {
	return r.Width, r.Height
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Filter returns the calls of the given kind.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns the strings of all text calls.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Filter(OpText) {
		out = append(out, c.Text)
	}
	return out
}

// Texture is a fake render.Texture.
type Texture struct {
	Name          string
	Width, Height int

	// Region is the source rectangle of a texture made by SubTexture.
	Region image.Rectangle
}

func (t *Texture) Size() (int, int) {
	return t.Width, t.Height
}

// Loader is a fake render.ResourceLoader. Paths listed in Files load
// successfully; anything else fails.
type Loader struct {
	Files map[string]*Texture
}

func (l *Loader) LoadTexture(path string) (render.Texture, error) {
	if tex, ok := l.Files[path]; ok {
		return tex, nil
	}
	return nil, &missingError{path: path}
}

func (l *Loader) NewTexture(img image.Image) render.Texture {
	b := img.Bounds()
	return &Texture{Name: "generated", Width: b.Dx(), Height: b.Dy()}
}

func (l *Loader) SubTexture(tex render.Texture, r image.Rectangle) render.Texture {
	parent, _ := tex.(*Texture)
	name := "sub"
	if parent != nil {
		name = parent.Name + ":sub"
	}
	return &Texture{Name: name, Width: r.Dx(), Height: r.Dy(), Region: r}
}

type missingError struct {
	path string
}

func (e *missingError) Error() string {
	return "rendertest: no such file " + e.path
}
