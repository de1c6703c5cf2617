// Package world holds the tile map, its terrain generation rules and the
// scenery placed on it.
package world

import (
	"fmt"
	"image/color"
	"strings"
)

// Material is the terrain of a tile.
type Material int

const (
	Grass Material = iota
	Dirt
	Stone
	Water
)

var materialNames = [...]string{
	Grass: "grass",
	Dirt:  "dirt",
	Stone: "stone",
	Water: "water",
}

// Materials lists every material in declaration order.
func Materials() []Material {
	return []Material{Grass, Dirt, Stone, Water}
}

// String returns the material name, which is also its texture name.
func (m Material) String() string {
	if m < 0 || int(m) >= len(materialNames) {
		return fmt.Sprintf("material(%d)", int(m))
	}
	return materialNames[m]
}

// Color is the flat color used when a material has no texture.
func (m Material) Color() color.RGBA {
	switch m {
	case Grass:
		return color.RGBA{50, 200, 50, 255}
	case Dirt:
		return color.RGBA{150, 100, 50, 255}
	case Stone:
		return color.RGBA{150, 150, 150, 255}
	case Water:
		return color.RGBA{60, 110, 200, 255}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// ParseMaterial looks a material up by name.
func ParseMaterial(name string) (Material, error) {
	for i, n := range materialNames {
		if strings.EqualFold(n, name) {
			return Material(i), nil
		}
	}
	return Grass, fmt.Errorf("unknown material %q", name)
}

// UnmarshalText lets materials be written by name in config files.
func (m *Material) UnmarshalText(text []byte) error {
	parsed, err := ParseMaterial(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalText writes the material name.
func (m Material) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
