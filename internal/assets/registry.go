// Package assets owns the textures the scene draws: files from a texture
// directory, tiles cut from a JSON sprite atlas, and generated placeholders
// for anything still missing.
package assets

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/eerium/eerium/internal/iso"
	"github.com/eerium/eerium/internal/render"
	"github.com/eerium/eerium/internal/world"
)

// Options says where textures come from.
type Options struct {
	TextureDir   string // <dir>/<name>.png
	Atlas        string // JSON atlas description
	Placeholders bool   // generate textures that are still missing
}

// Registry maps texture names to backend textures. It is created by the
// owner of the game and handed to whoever draws; there is no global
// instance.
type Registry struct {
	loader   render.ResourceLoader
	logger   *log.Logger
	textures map[string]render.Texture
	warned   map[string]bool
}

// NewRegistry creates an empty registry. A nil logger uses the default
// logger.
func NewRegistry(loader render.ResourceLoader, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.Default()
	}
	return &Registry{
		loader:   loader,
		logger:   logger,
		textures: make(map[string]render.Texture),
		warned:   make(map[string]bool),
	}
}

// TextureNames lists every texture the scene asks for.
func TextureNames() []string {
	var names []string
	for _, m := range world.Materials() {
		names = append(names, m.String())
	}
	for _, k := range world.PropKinds() {
		names = append(names, k.String())
	}
	return names
}

// Populate fills the registry for names. The atlas wins over loose files,
// and placeholders only fill what neither provided. Failures are logged,
// never returned: a texture that cannot be found is simply absent.
func (r *Registry) Populate(opts Options, names []string) {
	if opts.Atlas != "" {
		if err := r.LoadAtlas(opts.Atlas); err != nil {
			r.logger.Warn("atlas unavailable", "path", opts.Atlas, "error", err)
		}
	}
	if opts.TextureDir != "" {
		r.LoadDir(opts.TextureDir, names)
	}
	if opts.Placeholders {
		if n := r.GeneratePlaceholders(names); n > 0 {
			r.logger.Debug("generated placeholder textures", "count", n)
		}
	}
}

// Register stores tex under name, replacing any previous texture.
func (r *Registry) Register(name string, tex render.Texture) {
	if tex == nil {
		return
	}
	r.textures[name] = tex
	delete(r.warned, name)
}

// LoadFile loads one image file as name.
func (r *Registry) LoadFile(name, path string) error {
	tex, err := r.loader.LoadTexture(path)
	if err != nil {
		return err
	}
	r.Register(name, tex)
	r.logger.Debug("texture loaded", "name", name, "path", path)
	return nil
}

// LoadDir loads <dir>/<name>.png for every name not yet registered and
// returns how many loaded.
func (r *Registry) LoadDir(dir string, names []string) int {
	loaded := 0
	for _, name := range names {
		if r.Has(name) {
			continue
		}
		path := filepath.Join(dir, name+".png")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := r.LoadFile(name, path); err != nil {
			r.logger.Warn("texture unreadable", "name", name, "path", path, "error", err)
			continue
		}
		loaded++
	}
	return loaded
}

// LoadAtlas registers every named tile of the atlas at path.
func (r *Registry) LoadAtlas(path string) error {
	atlas, err := LoadAtlas(path, r.loader)
	if err != nil {
		return err
	}
	for name, tile := range atlas.TilesByName {
		r.Register(name, r.loader.SubTexture(atlas.Texture, atlas.TileRect(tile)))
	}
	r.logger.Info("atlas loaded", "name", atlas.Config.Name, "tiles", len(atlas.TilesByName))
	return nil
}

// GeneratePlaceholders creates textures for the names that are still
// missing and have a generator, and returns how many it made.
func (r *Registry) GeneratePlaceholders(names []string) int {
	made := 0
	for _, name := range names {
		if r.Has(name) {
			continue
		}
		img, ok := PlaceholderImage(name)
		if !ok {
			continue
		}
		r.Register(name, r.loader.NewTexture(img))
		made++
	}
	return made
}

// Texture returns the texture registered as name, or nil. The first miss
// for each name is logged.
func (r *Registry) Texture(name string) render.Texture {
	if tex, ok := r.textures[name]; ok {
		return tex
	}
	if !r.warned[name] {
		r.warned[name] = true
		r.logger.Warn("texture missing", "name", name)
	}
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.textures[name]
	return ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.textures))
	for name := range r.textures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlaceholderImage generates the stand-in image for a known texture name.
func PlaceholderImage(name string) (image.Image, bool) {
	if m, err := world.ParseMaterial(name); err == nil {
		h := int(math.Round(PlaceholderWidth * iso.DefaultAspectRatio))
		return Diamond(m.Color(), PlaceholderWidth, h), true
	}
	switch name {
	case world.Tree.String():
		return Tree(world.Tree.Color(), trunkColor, PlaceholderWidth/2, PlaceholderWidth/2), true
	case world.Rock.String():
		return Rock(world.Rock.Color(), PlaceholderWidth/2, PlaceholderWidth/3), true
	}
	return nil, false
}
