package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/eerium/eerium/internal/render"
)

// Engine implements render.Engine using Ebiten.
type Engine struct {
	fonts *Fonts
}

// NewEngine creates a new Ebiten-based game engine. fonts may be nil.
func NewEngine(fonts *Fonts) *Engine {
	return &Engine{fonts: fonts}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *Engine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// SetTickRate sets how often Update runs. Zero or less ties it to the
// display refresh rate.
func (e *Engine) SetTickRate(tps int) {
	if tps <= 0 {
		tps = ebiten.SyncWithFPS
	}
	ebiten.SetTPS(tps)
}

// RunGame runs the game loop with the provided game. The screen is kept
// between frames so a Game may skip drawing when nothing is due.
func (e *Engine) RunGame(game render.Game) error {
	ebiten.SetScreenClearedEveryFrame(false)
	return ebiten.RunGame(&gameAdapter{game: game, fonts: e.fonts})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game  render.Game
	fonts *Fonts
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminated) {
		return ebiten.Termination
	}
	return err
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(NewSurface(screen, a.fonts))
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
