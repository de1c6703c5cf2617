// Package menu implements the main menu and the help screen.
package menu

import (
	"image/color"

	"github.com/eerium/eerium/internal/render"
)

// Action is what the player chose on the main menu.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Item is one selectable menu entry.
type Item struct {
	Label  string
	Action Action
}

// DefaultItems are the entries of the main menu.
func DefaultItems() []Item {
	return []Item{
		{Label: "Start Game", Action: ActionStart},
		{Label: "Help", Action: ActionHelp},
		{Label: "Quit", Action: ActionQuit},
	}
}

// Text sizes and spacing.
const (
	titleSize    = 48
	subtitleSize = 18
	itemSize     = 28
	itemSpacing  = 16
	hintSize     = 14
)

var (
	backgroundColor  = color.RGBA{20, 20, 30, 255}
	titleColor       = color.RGBA{255, 255, 255, 255}
	itemColor        = color.RGBA{200, 200, 255, 255}
	selectedColor    = color.RGBA{100, 255, 100, 255}
	instructionColor = color.RGBA{150, 150, 150, 255}
)

// MainMenu is a vertical list of items with keyboard and mouse selection.
type MainMenu struct {
	Title    string
	Subtitle string

	items    []Item
	selected int

	// item hit boxes from the last Draw, in screen pixels
	bounds []rect
}

// NewMainMenu creates a menu with the first item selected.
func NewMainMenu(title, subtitle string, items []Item) *MainMenu {
	return &MainMenu{
		Title:    title,
		Subtitle: subtitle,
		items:    items,
	}
}

// Selected returns the index of the highlighted item.
func (m *MainMenu) Selected() int {
	return m.selected
}

// Reset highlights the first item again.
func (m *MainMenu) Reset() {
	m.selected = 0
}

// Items returns the menu entries.
func (m *MainMenu) Items() []Item {
	return m.items
}

// HandleEvent applies one input event and returns the activated action,
// if any. Up and Down wrap around; Enter or Space activate the selection;
// the mouse highlights the item under it and a left click activates it.
func (m *MainMenu) HandleEvent(ev render.Event) Action {
	if len(m.items) == 0 {
		return ActionNone
	}

	switch ev.Kind {
	case render.EventKeyDown:
		switch ev.Key {
		case render.KeyUp:
			m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
		case render.KeyDown:
			m.selected = (m.selected + 1) % len(m.items)
		case render.KeyEnter, render.KeySpace:
			return m.items[m.selected].Action
		}
	case render.EventMouseMotion:
		if i := m.itemAt(ev.X, ev.Y); i >= 0 {
			m.selected = i
		}
	case render.EventMouseButtonDown:
		if ev.Button != render.MouseButtonLeft {
			return ActionNone
		}
		if i := m.itemAt(ev.X, ev.Y); i >= 0 {
			m.selected = i
			return m.items[i].Action
		}
	}
	return ActionNone
}

// Draw renders the menu centered on the surface and remembers where each
// item landed for mouse hit testing.
func (m *MainMenu) Draw(screen render.Surface) {
	screen.Clear(backgroundColor)
	w, h := screen.ViewportSize()
	cx := float64(w) / 2

	y := float64(h) / 5
	screen.DrawText(m.Title, cx, y, titleColor, titleSize, render.AlignCenter)
	y += titleSize + 8
	if m.Subtitle != "" {
		screen.DrawText(m.Subtitle, cx, y, instructionColor, subtitleSize, render.AlignCenter)
	}

	y = float64(h) / 2
	m.bounds = m.bounds[:0]
	for i, item := range m.items {
		clr := itemColor
		if i == m.selected {
			clr = selectedColor
		}
		tw, th := screen.MeasureText(item.Label, itemSize)
		screen.DrawText(item.Label, cx, y, clr, itemSize, render.AlignCenter)
		m.bounds = append(m.bounds, rect{x: cx - tw/2, y: y, w: tw, h: th})
		y += th + itemSpacing
	}

	screen.DrawText("Up/Down to choose, Enter or click to select", cx, float64(h)-40, instructionColor, hintSize, render.AlignCenter)
}

func (m *MainMenu) itemAt(x, y float64) int {
	for i, b := range m.bounds {
		if pointInRect(x, y, b) {
			return i
		}
	}
	return -1
}

// Helper types and functions

type rect struct {
	x, y, w, h float64
}

func pointInRect(px, py float64, r rect) bool {
	return px >= r.x && px <= r.x+r.w && py >= r.y && py <= r.y+r.h
}
