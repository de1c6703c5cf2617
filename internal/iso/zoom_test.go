package iso

import (
	"math/rand"
	"testing"
)

func checkZoomInvariants(t *testing.T, z *Zoom) {
	t.Helper()
	d := z.Dimensions()
	l := z.Limits()
	if d.Width < l.MinWidth || d.Width > l.MaxWidth {
		t.Fatalf("Width %v escaped [%v, %v]", d.Width, l.MinWidth, l.MaxWidth)
	}
	if !approx(d.Height, d.Width*l.AspectRatio, 1e-12) {
		t.Fatalf("Expected height %v, got %v", d.Width*l.AspectRatio, d.Height)
	}
}

func TestZoomDefaults(t *testing.T) {
	z := NewZoom(DefaultZoomLimits())
	d := z.Dimensions()
	if d.Width != 64 {
		t.Errorf("Expected width 64, got %v", d.Width)
	}
	if !approx(d.Height, 28.8, eps) {
		t.Errorf("Expected height 28.8, got %v", d.Height)
	}
	if z.Scale() != 1 {
		t.Errorf("Expected scale 1, got %v", z.Scale())
	}
}

func TestSetZoomClamps(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{"identity", 1, 64},
		{"double", 2, 128},
		{"too small", 0.1, 32},
		{"too large", 10, 256},
		{"zero ignored", 0, 64},
		{"negative ignored", -3, 64},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			z := NewZoom(DefaultZoomLimits())
			z.SetZoom(tc.factor)
			if got := z.Dimensions().Width; got != tc.want {
				t.Errorf("Expected width %v, got %v", tc.want, got)
			}
			checkZoomInvariants(t, z)
		})
	}
}

func TestZoomInOutClampBothBounds(t *testing.T) {
	z := NewZoom(DefaultZoomLimits())
	for i := 0; i < 100; i++ {
		z.ZoomIn(DefaultZoomInFactor)
	}
	if got := z.Dimensions().Width; got != DefaultMaxTileWidth {
		t.Errorf("Expected max width, got %v", got)
	}

	// A shrinking factor passed to ZoomIn still respects the lower bound.
	z.ZoomIn(0.01)
	if got := z.Dimensions().Width; got != DefaultMinTileWidth {
		t.Errorf("Expected min width, got %v", got)
	}

	z.ZoomOut(100)
	if got := z.Dimensions().Width; got != DefaultMaxTileWidth {
		t.Errorf("Expected max width, got %v", got)
	}

	z.Reset()
	if got := z.Dimensions().Width; got != DefaultTileWidth {
		t.Errorf("Expected default width after reset, got %v", got)
	}
}

func TestZoomRandomSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	z := NewZoom(DefaultZoomLimits())
	for i := 0; i < 5000; i++ {
		if rng.Intn(2) == 0 {
			z.ZoomIn(1 + rng.Float64())
		} else {
			z.ZoomOut(rng.Float64())
		}
		checkZoomInvariants(t, z)
	}
}
