// Package game ties the screens together: it owns the state machine that
// moves between the main menu, the help screen and the grid scene, and it
// paces scene ticks and renders with a loop.Clock.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/eerium/eerium/internal/config"
	"github.com/eerium/eerium/internal/loop"
	"github.com/eerium/eerium/internal/render"
	"github.com/eerium/eerium/internal/scene"
	"github.com/eerium/eerium/internal/ui/hud"
	"github.com/eerium/eerium/internal/ui/menu"
)

// Manager handles the overall game state, including menu and gameplay. It
// implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State

	MainMenu *menu.MainMenu
	Help     *menu.Help
	Scene    *scene.Scene
	FPS      *hud.FPSCounter

	input render.EventSource
	clock *loop.Clock
	now   func() time.Time

	// redraw forces the next Draw even when no render is due
	redraw bool
}

// NewManager creates a manager showing the main menu. A nil now uses
// time.Now.
func NewManager(cfg *config.Config, input render.EventSource, sc *scene.Scene, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	fps := hud.NewFPSCounter(hud.DefaultConfig(), now)
	fps.Visible = cfg.Window.FPSOverlay

	return &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		State:        StateMenu,
		MainMenu:     menu.NewMainMenu(cfg.Window.Title, "an isometric grid", menu.DefaultItems()),
		Help:         menu.NewHelp(),
		Scene:        sc,
		FPS:          fps,
		input:        input,
		clock:        loop.NewClock(cfg.Loop.TickRate, cfg.Loop.RenderRate, cfg.Loop.MaxFrameSkip),
		now:          now,
		redraw:       true,
	}
}

// Update drains pending input, then runs every scene tick that is due.
// It returns render.ErrTerminated once the player quits.
func (m *Manager) Update() error {
	for _, ev := range m.input.PollEvents() {
		m.handleEvent(ev)
		if m.State == StateQuit {
			log.Info("quit requested")
			return render.ErrTerminated
		}
	}

	if m.State != StatePlaying {
		// time spent outside the scene is not simulated
		m.clock.Restart()
		return nil
	}

	ticks := m.clock.Advance(m.now())
	for i := 0; i < ticks; i++ {
		m.Scene.Update()
	}
	return nil
}

func (m *Manager) handleEvent(ev render.Event) {
	if ev.Kind == render.EventKeyDown && ev.Key == render.KeyF3 {
		m.FPS.Toggle()
		m.redraw = true
		return
	}

	switch m.State {
	case StateMenu:
		if ev.Kind == render.EventKeyDown && ev.Key == render.KeyEscape {
			m.setState(StateQuit)
			return
		}
		switch m.MainMenu.HandleEvent(ev) {
		case menu.ActionStart:
			m.setState(StatePlaying)
		case menu.ActionHelp:
			m.setState(StateHelp)
		case menu.ActionQuit:
			m.setState(StateQuit)
		}
		m.redraw = true
	case StateHelp:
		if m.Help.HandleEvent(ev) {
			m.setState(StateMenu)
		}
	case StatePlaying:
		if ev.Kind == render.EventKeyDown && ev.Key == render.KeyEscape {
			m.setState(StateMenu)
			return
		}
		m.Scene.HandleEvent(ev)
	}
}

func (m *Manager) setState(s State) {
	if s == m.State {
		return
	}
	log.Debug("state change", "from", m.State, "to", s)
	if m.State == StatePlaying && s == StateMenu {
		m.MainMenu.Reset()
	}
	m.State = s
	m.redraw = true
}

// Draw draws the current screen when a render is due. A skipped Draw
// leaves the previous frame on screen.
func (m *Manager) Draw(screen render.Surface) {
	due := m.clock.RenderDue(m.now())
	if !due && !m.redraw {
		return
	}
	m.redraw = false

	switch m.State {
	case StateMenu:
		m.MainMenu.Draw(screen)
	case StateHelp:
		m.Help.Draw(screen)
	case StatePlaying:
		m.Scene.Render(screen)
	}
	m.FPS.Draw(screen)
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.redraw = true
	}
	m.Scene.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
