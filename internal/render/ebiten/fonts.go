package ebiten

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the text face source used by every Surface.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFonts loads the font at path. An empty path uses the embedded Go
// Regular font.
func LoadFonts(path string) (*Fonts, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", path, err)
		}
		data = b
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &Fonts{source: src, faces: make(map[float64]*text.GoTextFace)}, nil
}

// Face returns a face of the given size rounded to whole pixels, or nil
// when f is nil or size is not finite.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	if f == nil || f.source == nil || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil
	}
	size = math.Max(1, math.Round(size))
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}
