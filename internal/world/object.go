package world

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"

	"github.com/eerium/eerium/internal/actor"
	"github.com/eerium/eerium/internal/iso"
)

// PropKind is a kind of static scenery.
type PropKind int

const (
	Tree PropKind = iota
	Rock
)

func (k PropKind) String() string {
	switch k {
	case Tree:
		return "tree"
	case Rock:
		return "rock"
	default:
		return fmt.Sprintf("prop(%d)", int(k))
	}
}

// Color is the flat color used when a prop has no texture.
func (k PropKind) Color() color.RGBA {
	switch k {
	case Tree:
		return color.RGBA{30, 110, 40, 255}
	case Rock:
		return color.RGBA{120, 120, 128, 255}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// PropKinds lists every prop kind.
func PropKinds() []PropKind {
	return []PropKind{Tree, Rock}
}

// Prop is a piece of scenery standing on a tile.
type Prop struct {
	Kind PropKind
	Pos  iso.TileCoord
}

// ObjectKind tags the variant held by an Object.
type ObjectKind int

const (
	KindActor ObjectKind = iota
	KindProp
)

// Object is a drawable thing in the world. Exactly one of Actor or Prop is
// set, according to Kind.
type Object struct {
	Kind  ObjectKind
	Actor *actor.Actor
	Prop  Prop
}

// Position returns where the object stands in tile-space.
func (o Object) Position() iso.TileCoord {
	if o.Kind == KindActor && o.Actor != nil {
		return o.Actor.Position()
	}
	return o.Prop.Pos
}

// Depth orders objects back to front for an isometric view.
func (o Object) Depth() float64 {
	p := o.Position()
	return p.X + p.Y
}

// SortByDepth sorts objects back to front. Ties keep their input order.
func SortByDepth(objects []Object) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Depth() < objects[j].Depth()
	})
}

// PropCounts says how many of each prop to scatter.
type PropCounts struct {
	Trees int `yaml:"trees"`
	Rocks int `yaml:"rocks"`
}

// ScatterProps places props on distinct tiles of m, avoiding the cells in
// reserved. When the map runs out of free cells the remaining props are
// dropped.
func ScatterProps(m *Map, counts PropCounts, reserved []iso.TileCoord, rng *rand.Rand) []Prop {
	taken := make(map[[2]int]bool, len(reserved))
	for _, r := range reserved {
		taken[[2]int{int(r.X), int(r.Y)}] = true
	}

	free := make([][2]int, 0, m.Width()*m.Height())
	m.Each(func(x, y int, _ Tile) {
		if !taken[[2]int{x, y}] {
			free = append(free, [2]int{x, y})
		}
	})
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	kinds := make([]PropKind, 0, counts.Trees+counts.Rocks)
	for i := 0; i < counts.Trees; i++ {
		kinds = append(kinds, Tree)
	}
	for i := 0; i < counts.Rocks; i++ {
		kinds = append(kinds, Rock)
	}

	props := make([]Prop, 0, len(kinds))
	for i, k := range kinds {
		if i >= len(free) {
			break
		}
		cell := free[i]
		props = append(props, Prop{Kind: k, Pos: iso.TileCoord{X: float64(cell[0]), Y: float64(cell[1])}})
	}
	return props
}
