package render

import "fmt"

// Key is a keyboard key the game reacts to.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR
	KeyEnter
	KeySpace
	KeyEscape
	KeyF3
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeyR:       "r",
	KeyEnter:   "enter",
	KeySpace:   "space",
	KeyEscape:  "escape",
	KeyF3:      "f3",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// MouseButton is a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// EventKind tags the variant held by an Event.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventMouseMotion
	EventMouseButtonDown
	EventMouseWheel
)

// Event is one discrete input event. Which fields are meaningful depends on
// Kind: Key for key-down, X/Y for mouse motion, Button/X/Y for button-down
// and WheelY for the wheel.
type Event struct {
	Kind   EventKind
	Key    Key
	Button MouseButton
	X, Y   float64
	WheelY float64
}

// KeyEvent builds a key-down event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// MotionEvent builds a cursor-moved event.
func MotionEvent(x, y float64) Event {
	return Event{Kind: EventMouseMotion, X: x, Y: y}
}

// ButtonEvent builds a button-pressed event at (x, y).
func ButtonEvent(b MouseButton, x, y float64) Event {
	return Event{Kind: EventMouseButtonDown, Button: b, X: x, Y: y}
}

// WheelEvent builds a vertical wheel event. Positive dy scrolls up.
func WheelEvent(dy float64) Event {
	return Event{Kind: EventMouseWheel, WheelY: dy}
}

func (e Event) String() string {
	switch e.Kind {
	case EventKeyDown:
		return fmt.Sprintf("KeyDown(%s)", e.Key)
	case EventMouseMotion:
		return fmt.Sprintf("MouseMotion(%g,%g)", e.X, e.Y)
	case EventMouseButtonDown:
		return fmt.Sprintf("MouseButtonDown(%d,%g,%g)", e.Button, e.X, e.Y)
	case EventMouseWheel:
		return fmt.Sprintf("MouseWheel(%g)", e.WheelY)
	default:
		return fmt.Sprintf("Event(%d)", int(e.Kind))
	}
}

// EventSource delivers the input events of one loop iteration in order.
type EventSource interface {
	PollEvents() []Event
}
