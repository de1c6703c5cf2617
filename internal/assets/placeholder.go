package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PlaceholderWidth is the pixel width of generated textures. They are
// stretched to the tile size when drawn.
const PlaceholderWidth = 128

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}

	trunkColor = color.RGBA{96, 64, 36, 255}
)

// Diamond draws a shaded diamond filling a w x h image: the upper half is
// lit, the lower half shaded and the rim darkened. Pixels outside the
// diamond stay transparent.
func Diamond(base color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c, _ := colorful.MakeColor(opaque(base))
	light := c.BlendLab(white, 0.15)
	dark := c.BlendLab(black, 0.25)
	rim := c.BlendLab(black, 0.45)

	hw, hh := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := math.Abs(float64(x)+0.5-hw) / hw
			dy := math.Abs(float64(y)+0.5-hh) / hh
			d := dx + dy
			if d > 1 {
				continue
			}
			var shade colorful.Color
			switch {
			case d > 0.92:
				shade = rim
			case float64(y) < hh:
				shade = c.BlendLab(light, 1-float64(y)/hh)
			default:
				shade = c.BlendLab(dark, (float64(y)-hh)/hh)
			}
			if speckle(x, y) {
				shade = shade.BlendLab(black, 0.12)
			}
			img.SetRGBA(x, y, toRGBA(shade, base.A))
		}
	}
	return img
}

// Tree draws a trunk under a round canopy on a transparent w x h image.
func Tree(canopy, trunk color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fw, fh := float64(w), float64(h)

	trunkW, trunkTop := fw*0.16, fh*0.55
	fillRect(img, (fw-trunkW)/2, trunkTop, (fw+trunkW)/2, fh, trunk)

	c, _ := colorful.MakeColor(opaque(canopy))
	cx, cy, r := fw/2, fh*0.38, math.Min(fw, fh)*0.36
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			dist := math.Hypot(dx, dy) / r
			if dist > 1 {
				continue
			}
			// lit from the upper left
			t := clamp01(0.5 + (dx+dy)/(4*r))
			shade := c.BlendLab(white, 0.2*(1-t)).BlendLab(black, 0.3*t)
			img.SetRGBA(x, y, toRGBA(shade, canopy.A))
		}
	}
	return img
}

// Rock draws a flattened boulder on a transparent w x h image.
func Rock(base color.RGBA, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c, _ := colorful.MakeColor(opaque(base))
	fw, fh := float64(w), float64(h)
	cx, cy := fw/2, fh*0.6
	rx, ry := fw*0.42, fh*0.34
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			nx := (float64(x) + 0.5 - cx) / rx
			ny := (float64(y) + 0.5 - cy) / ry
			if nx*nx+ny*ny > 1 {
				continue
			}
			t := clamp01((ny + 1) / 2)
			shade := c.BlendLab(white, 0.25*(1-t)).BlendLab(black, 0.35*t)
			if speckle(x, y) {
				shade = shade.BlendLab(black, 0.15)
			}
			img.SetRGBA(x, y, toRGBA(shade, base.A))
		}
	}
	return img
}

// WritePNG saves img to dir/name.png, creating dir when needed.
func WritePNG(dir, name string, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, name+".png")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 float64, clr color.RGBA) {
	for y := int(y0); y < int(math.Ceil(y1)); y++ {
		for x := int(x0); x < int(math.Ceil(x1)); x++ {
			img.SetRGBA(x, y, clr)
		}
	}
}

// speckle is a fixed dither so generated textures are not flat.
func speckle(x, y int) bool {
	return (x*7+y*13)%23 == 0
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

func toRGBA(c colorful.Color, alpha uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: premul(r, alpha), G: premul(g, alpha), B: premul(b, alpha), A: alpha}
}

func premul(v, alpha uint8) uint8 {
	return uint8(uint16(v) * uint16(alpha) / 255)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
