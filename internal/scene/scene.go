// Package scene is the playable isometric grid: a generated tile map with
// scenery, one actor walking toward a target, a deadzone camera and a zoom.
package scene

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/eerium/eerium/internal/actor"
	"github.com/eerium/eerium/internal/assets"
	"github.com/eerium/eerium/internal/config"
	"github.com/eerium/eerium/internal/iso"
	"github.com/eerium/eerium/internal/render"
	"github.com/eerium/eerium/internal/world"
)

// Scene owns everything on the grid. It is driven by HandleEvent, Update
// and Render and touched only from the game loop.
type Scene struct {
	cfg      *config.Config
	registry *assets.Registry
	rng      *rand.Rand

	zoom   *iso.Zoom
	camera *iso.Camera
	actor  *actor.Actor
	tiles  *world.Map
	props  []world.Prop

	hover      iso.PixelCoord
	hoverValid bool

	viewW, viewH float64

	objects []world.Object // reused between frames
}

// New creates the scene and generates its first map.
func New(cfg *config.Config, registry *assets.Registry, rng *rand.Rand) (*Scene, error) {
	s := &Scene{
		cfg:      cfg,
		registry: registry,
		rng:      rng,
		zoom:     iso.NewZoom(cfg.ZoomLimits()),
		camera:   iso.NewCamera(iso.PixelCoord{X: cfg.Grid.Offset.X, Y: cfg.Grid.Offset.Y}, cfg.Grid.DeadzoneDivisor),
		actor: actor.New(
			cfg.Actor.Name,
			cfg.Actor.Color.NRGBA(),
			iso.TileCoord{X: cfg.Actor.Spawn.X, Y: cfg.Actor.Spawn.Y},
			cfg.Motion(),
		),
		viewW: float64(cfg.Window.Width),
		viewH: float64(cfg.Window.Height),
	}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset regenerates the map and props and puts the actor, camera, zoom and
// hover back to their starting state.
func (s *Scene) Reset() error {
	g := s.cfg.Grid
	tiles, err := world.Generate(g.MapWidth, g.MapHeight, s.cfg.Terrain.Base, s.cfg.Terrain.Rules, s.rng)
	if err != nil {
		return fmt.Errorf("failed to generate map: %w", err)
	}
	s.tiles = tiles

	s.actor.Reset()
	spawn := s.actor.Position().Round()
	s.props = world.ScatterProps(tiles, s.cfg.Props, []iso.TileCoord{spawn}, s.rng)

	s.camera.Reset()
	s.zoom.Reset()
	s.hoverValid = false

	log.Debug("scene reset", "map", fmt.Sprintf("%dx%d", g.MapWidth, g.MapHeight), "props", len(s.props), "terrain", tiles.Count())
	return nil
}

// HandleEvent applies one input event.
func (s *Scene) HandleEvent(ev render.Event) {
	switch ev.Kind {
	case render.EventKeyDown:
		s.handleKey(ev.Key)
	case render.EventMouseButtonDown:
		if ev.Button != render.MouseButtonLeft {
			return
		}
		click := iso.PixelCoord{X: ev.X, Y: ev.Y}
		tile := s.zoom.Projection().PixelToTile(click, s.camera.Offset(), true)
		s.actor.MoveTo(tile.X, tile.Y, true)
	case render.EventMouseMotion:
		s.hover = iso.PixelCoord{X: ev.X, Y: ev.Y}
		s.hoverValid = true
	case render.EventMouseWheel:
		switch {
		case ev.WheelY > 0:
			s.zoom.ZoomIn(s.cfg.Grid.ZoomInFactor)
		case ev.WheelY < 0:
			s.zoom.ZoomOut(s.cfg.Grid.ZoomOutFactor)
		}
	}
}

func (s *Scene) handleKey(key render.Key) {
	pan := s.cfg.Grid.PanStep
	switch key {
	case render.KeyUp:
		s.actor.MoveBy(-1, -1)
	case render.KeyDown:
		s.actor.MoveBy(1, 1)
	case render.KeyLeft:
		s.actor.MoveBy(-1, 1)
	case render.KeyRight:
		s.actor.MoveBy(1, -1)
	case render.KeyW:
		s.camera.Pan(0, pan)
	case render.KeyS:
		s.camera.Pan(0, -pan)
	case render.KeyA:
		s.camera.Pan(pan, 0)
	case render.KeyD:
		s.camera.Pan(-pan, 0)
	case render.KeyR:
		if err := s.Reset(); err != nil {
			log.Error("reset failed", "error", err)
		}
	}
}

// Update runs one fixed tick: the actor steps toward its target and the
// camera re-pins it inside the deadzone.
func (s *Scene) Update() {
	s.actor.Update()
	s.camera.Follow(s.actor.Position(), s.zoom.Projection(), s.viewW, s.viewH)
}

// SetViewport records the drawable size used by the camera.
func (s *Scene) SetViewport(w, h int) {
	s.viewW, s.viewH = float64(w), float64(h)
}

// Render draws the scene. It reads the camera offset but never changes it.
func (s *Scene) Render(surface render.Surface) {
	surface.Clear(s.cfg.Grid.Background.NRGBA())

	proj := s.zoom.Projection()
	offset := s.camera.Offset()
	dims := proj.Dims

	s.tiles.Each(func(x, y int, t world.Tile) {
		p := proj.TileToPixel(iso.TileCoord{X: float64(x), Y: float64(y)}, offset)
		if tex := s.registry.Texture(t.Material.String()); tex != nil {
			surface.DrawTexturedQuad(p.X, p.Y, dims.Width, dims.Height, tex)
			return
		}
		surface.DrawFilledQuad(p.X, p.Y, dims.Width, dims.Height, t.Material.Color())
	})

	s.objects = s.objects[:0]
	for _, p := range s.props {
		s.objects = append(s.objects, world.Object{Kind: world.KindProp, Prop: p})
	}
	s.objects = append(s.objects, world.Object{Kind: world.KindActor, Actor: s.actor})
	world.SortByDepth(s.objects)
	for _, obj := range s.objects {
		drawObject(surface, obj, proj, offset, s.registry)
	}

	s.drawLabel(surface, proj, offset)

	if s.hoverValid {
		tile := proj.PixelToTile(s.hover, offset, true)
		p := proj.TileToPixel(tile, offset)
		surface.DrawFilledQuad(p.X, p.Y, dims.Width, dims.Height, s.cfg.Grid.HoverColor.NRGBA())
	}
}

// labelSize is the name label font size at the default zoom.
const labelSize = 14

func (s *Scene) drawLabel(surface render.Surface, proj iso.Projection, offset iso.PixelCoord) {
	if s.actor.Name == "" {
		return
	}
	p := proj.TileToPixel(s.actor.Position(), offset)
	size := math.Round(labelSize * s.zoom.Scale())
	y := p.Y - proj.Dims.Height/2 - size - 2
	surface.DrawText(s.actor.Name, p.X, y, color.White, size, render.AlignCenter)
}

// Actor returns the player avatar.
func (s *Scene) Actor() *actor.Actor { return s.actor }

// Camera returns the camera.
func (s *Scene) Camera() *iso.Camera { return s.camera }

// Zoom returns the zoom controller.
func (s *Scene) Zoom() *iso.Zoom { return s.zoom }

// Map returns the current tile map.
func (s *Scene) Map() *world.Map { return s.tiles }

// Props returns the scenery of the current map.
func (s *Scene) Props() []world.Prop { return s.props }

// Hover returns the tile under the last known mouse position.
func (s *Scene) Hover() (iso.TileCoord, bool) {
	if !s.hoverValid {
		return iso.TileCoord{}, false
	}
	return s.zoom.Projection().PixelToTile(s.hover, s.camera.Offset(), true), true
}

// Viewport returns the size last given to SetViewport.
func (s *Scene) Viewport() (w, h float64) {
	return s.viewW, s.viewH
}
