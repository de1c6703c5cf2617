package assets

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/eerium/eerium/internal/render/rendertest"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestTextureMissingReturnsNilAndWarnsOnce(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf)
	r := NewRegistry(&rendertest.Loader{}, logger)

	if tex := r.Texture("grass"); tex != nil {
		t.Errorf("Expected nil texture, got %v", tex)
	}
	r.Texture("grass")
	r.Texture("grass")

	if n := strings.Count(buf.String(), "texture missing"); n != 1 {
		t.Errorf("Expected one warning, got %d in %q", n, buf.String())
	}
}

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry(&rendertest.Loader{}, quietLogger())
	tex := &rendertest.Texture{Name: "grass", Width: 64, Height: 29}
	r.Register("grass", tex)
	r.Register("dirt", nil)

	if got := r.Texture("grass"); got != tex {
		t.Errorf("Expected registered texture, got %v", got)
	}
	if r.Has("dirt") {
		t.Error("Expected nil texture not to be registered")
	}
	if names := r.Names(); len(names) != 1 || names[0] != "grass" {
		t.Errorf("Expected [grass], got %v", names)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"grass.png", "stone.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	grass := &rendertest.Texture{Name: "grass"}
	loader := &rendertest.Loader{Files: map[string]*rendertest.Texture{
		filepath.Join(dir, "grass.png"): grass,
	}}
	r := NewRegistry(loader, quietLogger())

	// stone.png exists but the loader cannot decode it; dirt.png is absent.
	if n := r.LoadDir(dir, []string{"grass", "dirt", "stone"}); n != 1 {
		t.Errorf("Expected 1 texture loaded, got %d", n)
	}
	if r.Texture("grass") != grass {
		t.Error("Expected grass from the texture directory")
	}
	if r.Has("dirt") || r.Has("stone") {
		t.Errorf("Expected only grass registered, got %v", r.Names())
	}
}

func TestLoadAtlasRegistersTiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terrain.json")
	if err := os.WriteFile(path, []byte(testAtlasJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := &rendertest.Loader{Files: map[string]*rendertest.Texture{
		filepath.Join(dir, "terrain.png"): {Name: "sheet", Width: 256, Height: 128},
	}}
	r := NewRegistry(loader, quietLogger())

	if err := r.LoadAtlas(path); err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	stone, ok := r.Texture("stone").(*rendertest.Texture)
	if !ok {
		t.Fatal("Expected stone texture from the atlas")
	}
	if stone.Name != "sheet:sub" || stone.Width != 64 || stone.Height != 32 {
		t.Errorf("Expected 64x32 sub texture of sheet, got %+v", stone)
	}
	if stone.Region.Min.X != 128 || stone.Region.Min.Y != 32 {
		t.Errorf("Expected region at (128,32), got %v", stone.Region)
	}
}

func TestPopulatePrecedence(t *testing.T) {
	dir := t.TempDir()
	atlasPath := filepath.Join(dir, "terrain.json")
	if err := os.WriteFile(atlasPath, []byte(testAtlasJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "grass.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "dirt.png"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	loader := &rendertest.Loader{Files: map[string]*rendertest.Texture{
		filepath.Join(dir, "terrain.png"): {Name: "sheet", Width: 256, Height: 128},
		filepath.Join(dir, "grass.png"):   {Name: "loose-grass"},
		filepath.Join(dir, "dirt.png"):    {Name: "loose-dirt"},
	}}
	r := NewRegistry(loader, quietLogger())
	r.Populate(Options{TextureDir: dir, Atlas: atlasPath, Placeholders: true}, TextureNames())

	name := func(n string) string {
		tex, _ := r.Texture(n).(*rendertest.Texture)
		if tex == nil {
			return ""
		}
		return tex.Name
	}
	if got := name("grass"); got != "sheet:sub" {
		t.Errorf("Expected atlas grass, got %q", got)
	}
	if got := name("dirt"); got != "loose-dirt" {
		t.Errorf("Expected loose dirt, got %q", got)
	}
	for _, n := range []string{"water", "tree", "rock"} {
		if got := name(n); got != "generated" {
			t.Errorf("Expected generated %s, got %q", n, got)
		}
	}
}

func TestPopulateWithoutPlaceholders(t *testing.T) {
	r := NewRegistry(&rendertest.Loader{}, quietLogger())
	r.Populate(Options{Atlas: filepath.Join(t.TempDir(), "missing.json")}, TextureNames())
	if names := r.Names(); len(names) != 0 {
		t.Errorf("Expected empty registry, got %v", names)
	}
}
