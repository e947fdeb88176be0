// Package visibility tracks which records currently render their secret
// value unmasked.
//
// The state is keyed by record id, scoped to the session, never persisted,
// and cleared on every list refresh and on session teardown. Toggling one
// record never affects another.
package visibility

import "sync"

// Set is the per-session visibility state.
type Set struct {
	mu      sync.Mutex
	visible map[string]bool
}

func NewSet() *Set {
	return &Set{visible: map[string]bool{}}
}

// Toggle flips the record's visibility and returns the new state.
func (s *Set) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.visible[id] {
		delete(s.visible, id)
		return false
	}
	s.visible[id] = true
	return true
}

// Visible reports whether the record currently renders unmasked.
func (s *Set) Visible(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible[id]
}

// Reset masks everything again.
func (s *Set) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = map[string]bool{}
}
