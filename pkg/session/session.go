package session

import (
	"sync"

	"github.com/abidraza5594/SecurePass/pkg/identity"
)

// State is the two-valued resolution of the current identity. While
// Loading is true no record access may happen; once resolved, a nil
// Identity means absent and the consuming surface must leave protected
// views.
type State struct {
	Loading  bool
	Identity *identity.Identity
}

// Absent reports a resolved state with no identity.
func (s State) Absent() bool {
	return !s.Loading && s.Identity == nil
}

// Session is the explicit, injectable session context. It is initialized
// once at process start (in the loading state), resolved by the identity
// provider on every change, and torn down on sign-out.
type Session struct {
	mu    sync.RWMutex
	state State
	subs  map[int]func(State)
	next  int
}

// New creates a session in the loading state.
func New() *Session {
	return &Session{
		state: State{Loading: true},
		subs:  map[int]func(State){},
	}
}

// Current returns the latest resolution.
func (s *Session) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn for every future resolution change and invokes it
// immediately with the current state. The returned cancel removes the
// subscription.
func (s *Session) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	key := s.next
	s.next++
	s.subs[key] = fn
	state := s.state
	s.mu.Unlock()

	fn(state)

	return func() {
		s.mu.Lock()
		delete(s.subs, key)
		s.mu.Unlock()
	}
}

// Resolve pushes a new identity resolution. A nil id resolves to absent.
func (s *Session) Resolve(id *identity.Identity) {
	s.set(State{Identity: id})
}

// SignOut resolves the session to absent.
func (s *Session) SignOut() {
	s.Resolve(nil)
}

func (s *Session) set(state State) {
	s.mu.Lock()
	s.state = state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
