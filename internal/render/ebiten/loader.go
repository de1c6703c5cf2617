package ebiten

import (
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/eerium/eerium/internal/render"
)

// Texture wraps an ebiten.Image as a render.Texture.
type Texture struct {
	img *ebiten.Image
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// ResourceLoader implements render.ResourceLoader using Ebiten.
type ResourceLoader struct{}

// NewResourceLoader creates a new Ebiten-based resource loader.
func NewResourceLoader() render.ResourceLoader {
	return &ResourceLoader{}
}

// LoadTexture loads an image from the specified file path.
func (l *ResourceLoader) LoadTexture(path string) (render.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &Texture{img: img}, nil
}

// NewTexture uploads img to the GPU.
func (l *ResourceLoader) NewTexture(img image.Image) render.Texture {
	return &Texture{img: ebiten.NewImageFromImage(img)}
}

// SubTexture returns a view of r inside tex.
func (l *ResourceLoader) SubTexture(tex render.Texture, r image.Rectangle) render.Texture {
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return nil
	}
	return &Texture{img: t.img.SubImage(r).(*ebiten.Image)}
}
