package world

import (
	"fmt"
	"math/rand"
)

// Tile is one cell of the map.
type Tile struct {
	Material Material
}

// TerrainRule gives a material a one-in-N chance of replacing the default.
type TerrainRule struct {
	Material Material `yaml:"material"`
	OneIn    int      `yaml:"one_in"`
}

// DefaultTerrainRules: 1 in 8 dirt, otherwise 1 in 7 stone.
func DefaultTerrainRules() []TerrainRule {
	return []TerrainRule{
		{Material: Dirt, OneIn: 8},
		{Material: Stone, OneIn: 7},
	}
}

// Map is a fixed-size rectangular grid of tiles. Tiles are assigned once by
// Generate and never edited afterwards.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// Generate builds a width x height map. Every cell starts as base; the
// rules are then rolled in order and the first success wins. Given the same
// rng state the result is identical.
func Generate(width, height int, base Material, rules []TerrainRule, rng *rand.Rand) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map size %dx%d", width, height)
	}
	for i, r := range rules {
		if r.OneIn <= 0 {
			return nil, fmt.Errorf("terrain rule %d (%s): one_in must be positive, got %d", i, r.Material, r.OneIn)
		}
	}

	m := &Map{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			tile := Tile{Material: base}
			for _, r := range rules {
				if rng.Intn(r.OneIn) == 0 {
					tile.Material = r.Material
					break
				}
			}
			m.tiles[row*width+col] = tile
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether (x, y) is a cell of the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// TileAt returns the tile at column x, row y.
func (m *Map) TileAt(x, y int) (Tile, bool) {
	if !m.InBounds(x, y) {
		return Tile{}, false
	}
	return m.tiles[y*m.width+x], true
}

// Each calls fn for every tile, row by row.
func (m *Map) Each(fn func(x, y int, t Tile)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fn(x, y, m.tiles[y*m.width+x])
		}
	}
}

// Count returns how many tiles use each material.
func (m *Map) Count() map[Material]int {
	counts := make(map[Material]int)
	for _, t := range m.tiles {
		counts[t.Material]++
	}
	return counts
}
