package scene

import (
	"image/color"

	"github.com/eerium/eerium/internal/iso"
	"github.com/eerium/eerium/internal/render"
	"github.com/eerium/eerium/internal/world"
)

type textureSource interface {
	Texture(name string) render.Texture
}

var trunkColor = color.RGBA{139, 69, 19, 255}

// Prop sizes relative to the tile width.
const (
	treeScale = 0.6
	rockScale = 0.45
)

// drawObject draws one world object standing on its tile.
func drawObject(surface render.Surface, obj world.Object, proj iso.Projection, offset iso.PixelCoord, textures textureSource) {
	p := proj.TileToPixel(obj.Position(), offset)
	dims := proj.Dims

	switch obj.Kind {
	case world.KindActor:
		if obj.Actor == nil {
			return
		}
		surface.DrawFilledQuad(p.X, p.Y, dims.Width, dims.Height, obj.Actor.Color)
	case world.KindProp:
		drawProp(surface, obj.Prop.Kind, p, dims, textures)
	}
}

// drawProp stands a prop with its base a quarter tile below the tile
// center.
func drawProp(surface render.Surface, kind world.PropKind, p iso.PixelCoord, dims iso.Dimensions, textures textureSource) {
	scale := treeScale
	if kind == world.Rock {
		scale = rockScale
	}
	w := dims.Width * scale
	base := p.Y + dims.Height/4

	if tex := textures.Texture(kind.String()); tex != nil {
		tw, th := tex.Size()
		h := w
		if tw > 0 {
			h = w * float64(th) / float64(tw)
		}
		surface.DrawTexturedQuad(p.X, base-h/2, w, h, tex)
		return
	}

	switch kind {
	case world.Tree:
		// canopy square over a trunk, as tall as 1.6 canopies
		h := w * 1.6
		top := base - h
		surface.DrawFilledRect(p.X-w/8, top+w, w/4, h-w, trunkColor)
		surface.DrawFilledRect(p.X-w/2, top, w, w, kind.Color())
	default:
		h := w * 0.6
		surface.DrawFilledRect(p.X-w/2, base-h, w, h, kind.Color())
	}
}
