package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/eerium/eerium/internal/render"
)

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// InputManager turns Ebiten's per-tick input state into discrete events.
type InputManager struct {
	lastX, lastY int
	primed       bool
	keys         []ebiten.Key
}

// NewInputManager creates a new Ebiten-based event source.
func NewInputManager() *InputManager {
	return &InputManager{}
}

// PollEvents returns this tick's events: cursor motion first, then button
// presses, the wheel, and finally key presses. Ebiten only exposes the
// state per tick, so that order stands in for arrival order.
func (m *InputManager) PollEvents() []render.Event {
	var events []render.Event

	x, y := ebiten.CursorPosition()
	if m.primed && (x != m.lastX || y != m.lastY) {
		events = append(events, render.MotionEvent(float64(x), float64(y)))
	}
	m.lastX, m.lastY = x, y
	m.primed = true

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			events = append(events, render.ButtonEvent(mouseButtonFromEbiten(b), float64(x), float64(y)))
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		events = append(events, render.WheelEvent(dy))
	}

	m.keys = inpututil.AppendJustPressedKeys(m.keys[:0])
	for _, k := range m.keys {
		if key := keyFromEbiten(k); key != render.KeyUnknown {
			events = append(events, render.KeyEvent(key))
		}
	}

	return events
}

// keyFromEbiten converts an ebiten.Key to a render.Key.
func keyFromEbiten(key ebiten.Key) render.Key {
	switch key {
	case ebiten.KeyArrowUp:
		return render.KeyUp
	case ebiten.KeyArrowDown:
		return render.KeyDown
	case ebiten.KeyArrowLeft:
		return render.KeyLeft
	case ebiten.KeyArrowRight:
		return render.KeyRight
	case ebiten.KeyW:
		return render.KeyW
	case ebiten.KeyA:
		return render.KeyA
	case ebiten.KeyS:
		return render.KeyS
	case ebiten.KeyD:
		return render.KeyD
	case ebiten.KeyR:
		return render.KeyR
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return render.KeyEnter
	case ebiten.KeySpace:
		return render.KeySpace
	case ebiten.KeyEscape:
		return render.KeyEscape
	case ebiten.KeyF3:
		return render.KeyF3
	default:
		return render.KeyUnknown
	}
}

// mouseButtonFromEbiten converts an ebiten.MouseButton to a render.MouseButton.
func mouseButtonFromEbiten(button ebiten.MouseButton) render.MouseButton {
	switch button {
	case ebiten.MouseButtonRight:
		return render.MouseButtonRight
	case ebiten.MouseButtonMiddle:
		return render.MouseButtonMiddle
	default:
		return render.MouseButtonLeft
	}
}
