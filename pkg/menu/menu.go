// Package menu holds the list selection state behind the game menu.
package menu

import "fmt"

// Handle identifies the sub-application an entry launches.
type Handle string

type Entry struct {
	Label  string
	Handle Handle
}

// State is a cursor over a fixed catalog. The cursor saturates at both ends,
// it never wraps.
type State struct {
	entries  []Entry
	selected int
}

// New copies entries into a new State with the first entry selected.
func New(entries []Entry) *State {
	e := make([]Entry, len(entries))
	copy(e, entries)
	return &State{entries: e}
}

func (s *State) Len() int { return len(s.entries) }

// Entries returns a copy of the catalog.
func (s *State) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Selected returns the selected index, or false if the catalog is empty.
func (s *State) Selected() (int, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.selected, true
}

// Select moves the cursor to i. An index outside the catalog panics.
func (s *State) Select(i int) {
	if i < 0 || i >= len(s.entries) {
		panic(fmt.Sprintf("menu: selection %d outside catalog of %d entries", i, len(s.entries)))
	}
	s.selected = i
}

func (s *State) MoveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

func (s *State) MoveDown() {
	if s.selected < len(s.entries)-1 {
		s.selected++
	}
}

// Activate returns the handle of the selected entry, or false if there is
// nothing to select.
func (s *State) Activate() (Handle, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[s.selected].Handle, true
}
