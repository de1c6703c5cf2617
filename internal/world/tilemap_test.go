package world

import (
	"math/rand"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestGenerateReproducible(t *testing.T) {
	a, err := Generate(10, 10, Grass, DefaultTerrainRules(), rand.New(rand.NewSource(1234)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(10, 10, Grass, DefaultTerrainRules(), rand.New(rand.NewSource(1234)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	a.Each(func(x, y int, ta Tile) {
		tb, _ := b.TileAt(x, y)
		if ta != tb {
			t.Errorf("Tile (%d,%d) differs: %v vs %v", x, y, ta.Material, tb.Material)
		}
	})
}

func TestGenerateRollOrder(t *testing.T) {
	// Replay the rolls by hand: dirt first, stone only if dirt failed.
	const seed = 77
	m, err := Generate(6, 4, Grass, DefaultTerrainRules(), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := Grass
			if rng.Intn(8) == 0 {
				want = Dirt
			} else if rng.Intn(7) == 0 {
				want = Stone
			}
			got, _ := m.TileAt(x, y)
			if got.Material != want {
				t.Errorf("Tile (%d,%d): expected %v, got %v", x, y, want, got.Material)
			}
		}
	}
}

func TestGenerateDistribution(t *testing.T) {
	m, err := Generate(100, 100, Grass, DefaultTerrainRules(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	counts := m.Count()
	total := 100 * 100
	if counts[Grass]+counts[Dirt]+counts[Stone] != total {
		t.Errorf("Expected only grass, dirt and stone, got %v", counts)
	}
	// Dirt should land near 1/8, stone near 7/8 * 1/7 = 1/8.
	for _, mat := range []Material{Dirt, Stone} {
		frac := float64(counts[mat]) / float64(total)
		if frac < 0.10 || frac > 0.15 {
			t.Errorf("Expected %v fraction near 0.125, got %v", mat, frac)
		}
	}
}

func TestGenerateRejectsBadInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Generate(0, 10, Grass, nil, rng); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := Generate(10, 10, Grass, []TerrainRule{{Material: Water, OneIn: 0}}, rng); err == nil {
		t.Error("Expected error for one_in 0")
	}
}

func TestTileAtBounds(t *testing.T) {
	m, _ := Generate(3, 2, Stone, nil, rand.New(rand.NewSource(1)))
	if _, ok := m.TileAt(3, 0); ok {
		t.Error("Expected (3,0) out of bounds")
	}
	if tile, ok := m.TileAt(2, 1); !ok || tile.Material != Stone {
		t.Errorf("Expected stone at (2,1), got %v (ok=%v)", tile.Material, ok)
	}
}

func TestMaterialNames(t *testing.T) {
	for _, mat := range Materials() {
		parsed, err := ParseMaterial(mat.String())
		if err != nil || parsed != mat {
			t.Errorf("Expected %v to parse back, got %v (%v)", mat, parsed, err)
		}
	}
	if _, err := ParseMaterial("lava"); err == nil {
		t.Error("Expected error for unknown material")
	}
}

func TestTerrainRuleYAML(t *testing.T) {
	var rules []TerrainRule
	data := []byte("- material: water\n  one_in: 20\n- material: Stone\n  one_in: 3\n")
	if err := yaml.Unmarshal(data, &rules); err != nil {
		t.Fatalf("Failed to parse rules: %v", err)
	}
	if len(rules) != 2 || rules[0].Material != Water || rules[1].Material != Stone || rules[0].OneIn != 20 {
		t.Errorf("Unexpected rules: %+v", rules)
	}
}
