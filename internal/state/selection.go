package state

// NoSelection is the cursor value when the underlying list is empty.
const NoSelection = -1

// Selection tracks the highlighted index within one list. The cursor is
// NoSelection exactly when the list it covers is empty; otherwise it stays
// within [0, len).
type Selection struct {
	Cursor int
}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{Cursor: NoSelection}
}

// Active reports whether anything is selected.
func (s Selection) Active() bool {
	return s.Cursor != NoSelection
}

// Next advances the cursor with wrap-around. Empty lists are a no-op; an
// unset cursor lands on the first item.
func (s *Selection) Next(length int) {
	if length == 0 {
		return
	}
	if s.Cursor == NoSelection || s.Cursor >= length-1 {
		s.Cursor = 0
		return
	}
	s.Cursor++
}

// Prev moves the cursor backwards, wrapping to the last item. Empty lists
// are a no-op; an unset cursor lands on the first item.
func (s *Selection) Prev(length int) {
	if length == 0 {
		return
	}
	if s.Cursor == NoSelection {
		s.Cursor = 0
		return
	}
	if s.Cursor == 0 {
		s.Cursor = length - 1
		return
	}
	s.Cursor--
}

// Repair reconciles the cursor after the underlying list was replaced. A
// cursor that still fits the new length is preserved; one past the end
// clamps to the new last item rather than resetting to the top, so a delete
// in the middle of a list does not jump the highlight back to the start.
func (s *Selection) Repair(length int) {
	switch {
	case length == 0:
		s.Cursor = NoSelection
	case s.Cursor == NoSelection:
		s.Cursor = 0
	case s.Cursor >= length:
		s.Cursor = length - 1
	}
}
