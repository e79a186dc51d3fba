package state

// FocusArea identifies which column receives navigation and action keys.
type FocusArea int

const (
	FocusSessions FocusArea = iota
	FocusWindows
	FocusPanes
)

// Next returns the cyclic successor: Sessions→Windows→Panes→Sessions.
func (f FocusArea) Next() FocusArea {
	switch f {
	case FocusSessions:
		return FocusWindows
	case FocusWindows:
		return FocusPanes
	default:
		return FocusSessions
	}
}

// Prev returns the cyclic predecessor.
func (f FocusArea) Prev() FocusArea {
	switch f {
	case FocusSessions:
		return FocusPanes
	case FocusPanes:
		return FocusWindows
	default:
		return FocusSessions
	}
}

func (f FocusArea) String() string {
	switch f {
	case FocusSessions:
		return "sessions"
	case FocusWindows:
		return "windows"
	case FocusPanes:
		return "panes"
	default:
		return "unknown"
	}
}
