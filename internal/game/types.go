package game

// State is the screen the Manager is showing.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateHelp
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateHelp:
		return "help"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
