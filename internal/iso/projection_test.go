package iso

import (
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func scenarioProjection() (Projection, PixelCoord) {
	return NewProjection(Dimensions{Width: 64, Height: 64 * DefaultAspectRatio}), PixelCoord{X: 400, Y: 150}
}

func TestTileToPixelScenario(t *testing.T) {
	proj, offset := scenarioProjection()

	tests := []struct {
		name string
		tile TileCoord
		want PixelCoord
	}{
		{"origin", TileCoord{0, 0}, PixelCoord{400, 150}},
		{"one east", TileCoord{1, 0}, PixelCoord{432, 164.4}},
		{"one south", TileCoord{0, 1}, PixelCoord{368, 164.4}},
		{"diagonal", TileCoord{1, 1}, PixelCoord{400, 178.8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := proj.TileToPixel(tc.tile, offset)
			if !approx(got.X, tc.want.X, eps) || !approx(got.Y, tc.want.Y, eps) {
				t.Errorf("Expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPixelToTileRoundedClick(t *testing.T) {
	proj, offset := scenarioProjection()

	got := proj.PixelToTile(PixelCoord{400, 150}, offset, true)
	if got != (TileCoord{0, 0}) {
		t.Errorf("Expected (0,0), got %+v", got)
	}

	// A few pixels off the center still picks the same tile.
	got = proj.PixelToTile(PixelCoord{436, 160}, offset, true)
	if got != (TileCoord{1, 0}) {
		t.Errorf("Expected (1,0), got %+v", got)
	}
}

func TestPixelToTileUnroundedKeepsFraction(t *testing.T) {
	proj, offset := scenarioProjection()

	got := proj.PixelToTile(PixelCoord{416, 157.2}, offset, false)
	if !approx(got.X, 0.5, eps) || !approx(got.Y, 0, eps) {
		t.Errorf("Expected (0.5,0), got %+v", got)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	zoom := NewZoom(DefaultZoomLimits())

	for i := 0; i < 10000; i++ {
		zoom.SetZoom(rng.Float64()*6 - 1)
		proj := zoom.Projection()
		offset := PixelCoord{X: rng.Float64()*4000 - 2000, Y: rng.Float64()*4000 - 2000}
		tile := TileCoord{X: rng.Float64()*200 - 100, Y: rng.Float64()*200 - 100}

		back := proj.PixelToTile(proj.TileToPixel(tile, offset), offset, false)
		if !approx(back.X, tile.X, 1e-4) || !approx(back.Y, tile.Y, 1e-4) {
			t.Fatalf("Round trip failed for %+v (dims %+v, offset %+v): got %+v", tile, proj.Dims, offset, back)
		}
	}
}

func TestTileCoordHelpers(t *testing.T) {
	a := TileCoord{3, 4}
	if a.Len() != 5 {
		t.Errorf("Expected length 5, got %v", a.Len())
	}
	if got := a.Sub(TileCoord{1, 1}); got != (TileCoord{2, 3}) {
		t.Errorf("Expected (2,3), got %+v", got)
	}
	if got := (TileCoord{1.5, -1.5}).Round(); got != (TileCoord{2, -2}) {
		t.Errorf("Expected (2,-2), got %+v", got)
	}
}
