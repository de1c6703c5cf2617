// Package ebiten implements the render contract on top of Ebitengine.
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/eerium/eerium/internal/render"
)

var whiteSubImage *ebiten.Image

// whitePixel returns a 1x1 white source for untextured triangles. The
// 3x3 backing image keeps linear filtering from sampling the edge.
func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Surface wraps an ebiten.Image as a render.Surface.
type Surface struct {
	img   *ebiten.Image
	fonts *Fonts
}

// NewSurface wraps img. fonts may be nil, in which case text is skipped.
func NewSurface(img *ebiten.Image, fonts *Fonts) *Surface {
	return &Surface{img: img, fonts: fonts}
}

// Clear fills the whole image.
func (s *Surface) Clear(clr color.Color) {
	s.img.Fill(clr)
}

// DrawFilledQuad draws a diamond from two triangles.
func (s *Surface) DrawFilledQuad(cx, cy, w, h float64, clr color.Color) {
	r, g, b, a := normalize(clr)
	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	vertices := []ebiten.Vertex{
		vertex(cx, cy-h/2), // top
		vertex(cx+w/2, cy), // right
		vertex(cx, cy+h/2), // bottom
		vertex(cx-w/2, cy), // left
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.img.DrawTriangles(vertices, indices, whitePixel(), opts)
}

// DrawTexturedQuad stretches tex over the box centered on (cx, cy).
func (s *Surface) DrawTexturedQuad(cx, cy, w, h float64, tex render.Texture) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		return
	}
	tw, th := t.Size()
	if tw == 0 || th == 0 {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(w/float64(tw), h/float64(th))
	opts.GeoM.Translate(cx-w/2, cy-h/2)
	opts.Filter = ebiten.FilterLinear
	s.img.DrawImage(t.img, opts)
}

// DrawFilledRect fills an axis-aligned rectangle.
func (s *Surface) DrawFilledRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// DrawText draws one line of text with its top edge at y.
func (s *Surface) DrawText(str string, x, y float64, clr color.Color, size float64, align render.Align) {
	face := s.fonts.Face(size)
	if face == nil {
		return
	}

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	switch align {
	case render.AlignCenter:
		opts.PrimaryAlign = text.AlignCenter
	case render.AlignEnd:
		opts.PrimaryAlign = text.AlignEnd
	default:
		opts.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.img, str, face, opts)
}

// MeasureText returns the advance and line height of str.
func (s *Surface) MeasureText(str string, size float64) (float64, float64) {
	face := s.fonts.Face(size)
	if face == nil {
		return 0, 0
	}
	return text.Measure(str, face, 0)
}

// ViewportSize returns the image size.
func (s *Surface) ViewportSize() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func normalize(clr color.Color) (r, g, b, a float32) {
	nrgba := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(nrgba.R) / 255, float32(nrgba.G) / 255, float32(nrgba.B) / 255, float32(nrgba.A) / 255
}
