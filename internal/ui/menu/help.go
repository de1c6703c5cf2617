package menu

import "github.com/eerium/eerium/internal/render"

// HelpLines lists the controls shown on the help screen.
func HelpLines() []string {
	return []string{
		"Arrow keys    step the actor one tile",
		"Left click    walk to the clicked tile",
		"Mouse wheel   zoom in and out",
		"W A S D       pan the view",
		"R             regenerate the map",
		"F3            toggle the FPS counter",
		"Escape        back to the menu",
	}
}

// Help is a static screen listing the controls.
type Help struct {
	Lines []string
}

// NewHelp creates the help screen.
func NewHelp() *Help {
	return &Help{Lines: HelpLines()}
}

// HandleEvent reports whether the player asked to leave the screen:
// Escape, Enter, Space or a left click.
func (h *Help) HandleEvent(ev render.Event) bool {
	switch ev.Kind {
	case render.EventKeyDown:
		return ev.Key == render.KeyEscape || ev.Key == render.KeyEnter || ev.Key == render.KeySpace
	case render.EventMouseButtonDown:
		return ev.Button == render.MouseButtonLeft
	}
	return false
}

// Draw renders the controls list.
func (h *Help) Draw(screen render.Surface) {
	screen.Clear(backgroundColor)
	w, sh := screen.ViewportSize()

	screen.DrawText("Controls", float64(w)/2, 50, titleColor, 36, render.AlignCenter)

	// left-align the block, centered as a whole
	widest := 0.0
	for _, line := range h.Lines {
		if lw, _ := screen.MeasureText(line, subtitleSize); lw > widest {
			widest = lw
		}
	}
	x := (float64(w) - widest) / 2
	y := 120.0
	for _, line := range h.Lines {
		screen.DrawText(line, x, y, itemColor, subtitleSize, render.AlignStart)
		y += subtitleSize + 10
	}

	screen.DrawText("Press Escape or Enter to return", float64(w)/2, float64(sh)-40, instructionColor, hintSize, render.AlignCenter)
}
