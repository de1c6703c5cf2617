// Package config holds the tunables of the game: window, loop pacing, grid
// geometry, actor motion, terrain rules and asset locations.
package config

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"

	"github.com/eerium/eerium/internal/actor"
	"github.com/eerium/eerium/internal/iso"
	"github.com/eerium/eerium/internal/loop"
	"github.com/eerium/eerium/internal/world"
)

// Config is the root configuration.
type Config struct {
	Seed    int64            `yaml:"seed"` // 0 means seed from the clock
	Window  WindowConfig     `yaml:"window"`
	Loop    LoopConfig       `yaml:"loop"`
	Grid    GridConfig       `yaml:"grid"`
	Actor   ActorConfig      `yaml:"actor"`
	Terrain TerrainConfig    `yaml:"terrain"`
	Props   world.PropCounts `yaml:"props"`
	Assets  AssetsConfig     `yaml:"assets"`
}

// WindowConfig describes the game window.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Resizable  bool   `yaml:"resizable"`
	FPSOverlay bool   `yaml:"fps_overlay"`
}

// LoopConfig paces the game loop.
type LoopConfig struct {
	TickRate     int `yaml:"tick_rate"`      // simulation ticks per second
	RenderRate   int `yaml:"render_rate"`    // render cap per second
	MaxFrameSkip int `yaml:"max_frame_skip"` // ticks per iteration before dropping time
}

// GridConfig describes the map and the isometric view of it.
type GridConfig struct {
	MapWidth         int     `yaml:"map_width"`
	MapHeight        int     `yaml:"map_height"`
	MinTileWidth     float64 `yaml:"min_tile_width"`
	MaxTileWidth     float64 `yaml:"max_tile_width"`
	DefaultTileWidth float64 `yaml:"default_tile_width"`
	AspectRatio      float64 `yaml:"aspect_ratio"`
	DeadzoneDivisor  float64 `yaml:"deadzone_divisor"`
	Offset           Point   `yaml:"offset"`
	ZoomInFactor     float64 `yaml:"zoom_in_factor"`
	ZoomOutFactor    float64 `yaml:"zoom_out_factor"`
	PanStep          float64 `yaml:"pan_step"`
	HoverColor       Color   `yaml:"hover_color"`
	Background       Color   `yaml:"background"`
}

// ActorConfig describes the player avatar.
type ActorConfig struct {
	Name  string  `yaml:"name"`
	Color Color   `yaml:"color"`
	Spawn Point   `yaml:"spawn"`
	Speed float64 `yaml:"speed"` // tiles per simulated second
	// TickDuration is the simulated time of one update; 0 uses one loop
	// tick.
	TickDuration float64 `yaml:"tick_duration"`
	MinDistance  float64 `yaml:"min_distance"`
}

// TerrainConfig drives map generation.
type TerrainConfig struct {
	Base  world.Material      `yaml:"base"`
	Rules []world.TerrainRule `yaml:"rules"`
}

// AssetsConfig locates textures and fonts on disk.
type AssetsConfig struct {
	TextureDir   string `yaml:"texture_dir"`
	Atlas        string `yaml:"atlas"`
	Font         string `yaml:"font"`
	Placeholders bool   `yaml:"placeholders"` // generate textures that fail to load
}

// Point is a 2D value written as {x: .., y: ..}.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Color is a straight-alpha color written as [r, g, b] or [r, g, b, a].
type Color color.NRGBA

// UnmarshalYAML accepts a 3 or 4 element sequence of 0-255 values.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var parts []int
	if err := value.Decode(&parts); err != nil {
		return fmt.Errorf("color must be a list of integers: %w", err)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color needs 3 or 4 components, got %d", len(parts))
	}
	if len(parts) == 3 {
		parts = append(parts, 255)
	}
	for _, p := range parts {
		if p < 0 || p > 255 {
			return fmt.Errorf("color component %d out of range 0-255", p)
		}
	}
	*c = Color{R: uint8(parts[0]), G: uint8(parts[1]), B: uint8(parts[2]), A: uint8(parts[3])}
	return nil
}

// MarshalYAML writes the color as a flow sequence.
func (c Color) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []uint8{c.R, c.G, c.B, c.A} {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprint(v)})
	}
	return node, nil
}

// NRGBA returns the color as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "Eerium",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		Loop: LoopConfig{
			TickRate:     loop.DefaultTickRate,
			RenderRate:   loop.DefaultRenderRate,
			MaxFrameSkip: loop.DefaultMaxFrameSkip,
		},
		Grid: GridConfig{
			MapWidth:         10,
			MapHeight:        10,
			MinTileWidth:     iso.DefaultMinTileWidth,
			MaxTileWidth:     iso.DefaultMaxTileWidth,
			DefaultTileWidth: iso.DefaultTileWidth,
			AspectRatio:      iso.DefaultAspectRatio,
			DeadzoneDivisor:  iso.DefaultDeadzoneDivisor,
			Offset:           Point{X: 400, Y: 150},
			ZoomInFactor:     iso.DefaultZoomInFactor,
			ZoomOutFactor:    iso.DefaultZoomOutFactor,
			PanStep:          16,
			HoverColor:       Color{255, 255, 255, 100},
			Background:       Color{64, 64, 64, 255},
		},
		Actor: ActorConfig{
			Name:        "Hannah",
			Color:       Color{255, 0, 255, 200},
			Speed:       actor.DefaultSpeed,
			MinDistance: actor.DefaultMinDistance,
		},
		Terrain: TerrainConfig{
			Base:  world.Grass,
			Rules: world.DefaultTerrainRules(),
		},
		Props: world.PropCounts{Trees: 6, Rocks: 4},
		Assets: AssetsConfig{
			TextureDir:   "resources/textures",
			Placeholders: true,
		},
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Loop.TickRate <= 0 || c.Loop.RenderRate <= 0 {
		return fmt.Errorf("loop rates must be positive, got tick %d render %d", c.Loop.TickRate, c.Loop.RenderRate)
	}
	g := c.Grid
	if g.MapWidth <= 0 || g.MapHeight <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", g.MapWidth, g.MapHeight)
	}
	if g.MinTileWidth <= 0 || g.MinTileWidth > g.MaxTileWidth {
		return fmt.Errorf("tile width bounds invalid: min %v max %v", g.MinTileWidth, g.MaxTileWidth)
	}
	if g.DefaultTileWidth <= 0 {
		return fmt.Errorf("default tile width must be positive, got %v", g.DefaultTileWidth)
	}
	if g.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %v", g.AspectRatio)
	}
	if g.DeadzoneDivisor < 1 {
		return fmt.Errorf("deadzone divisor must be at least 1, got %v", g.DeadzoneDivisor)
	}
	if g.ZoomInFactor <= 1 || g.ZoomOutFactor <= 0 || g.ZoomOutFactor >= 1 {
		return fmt.Errorf("zoom factors must satisfy in > 1 and 0 < out < 1, got %v and %v", g.ZoomInFactor, g.ZoomOutFactor)
	}
	if c.Actor.Speed <= 0 || c.Actor.TickDuration < 0 || c.Actor.MinDistance < 0 {
		return fmt.Errorf("actor motion invalid: speed %v tick %v min distance %v", c.Actor.Speed, c.Actor.TickDuration, c.Actor.MinDistance)
	}
	for i, r := range c.Terrain.Rules {
		if r.OneIn <= 0 {
			return fmt.Errorf("terrain rule %d: one_in must be positive, got %d", i, r.OneIn)
		}
	}
	if c.Props.Trees < 0 || c.Props.Rocks < 0 {
		return fmt.Errorf("prop counts must not be negative")
	}
	return nil
}

// ZoomLimits converts the grid settings for iso.NewZoom.
func (c *Config) ZoomLimits() iso.ZoomLimits {
	return iso.ZoomLimits{
		MinWidth:     c.Grid.MinTileWidth,
		MaxWidth:     c.Grid.MaxTileWidth,
		DefaultWidth: c.Grid.DefaultTileWidth,
		AspectRatio:  c.Grid.AspectRatio,
	}
}

// Motion converts the actor settings for actor.New. A zero tick duration
// becomes one loop tick.
func (c *Config) Motion() actor.Motion {
	tick := c.Actor.TickDuration
	if tick == 0 {
		tick = 1 / float64(c.Loop.TickRate)
	}
	return actor.Motion{
		Speed:        c.Actor.Speed,
		TickDuration: tick,
		MinDistance:  c.Actor.MinDistance,
	}
}
