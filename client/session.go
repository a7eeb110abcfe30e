package client

import (
	"sync"

	"hotel-booking/models"
)

// Identity is the session context: who is signed in and what role they
// hold. The role only decides which actions a view offers; the server
// re-checks authorization on every request.
type Identity struct {
	ID        uint
	Role      string
	FirstName string
	LastName  string
}

func (i Identity) DisplayName() string {
	switch {
	case i.FirstName == "":
		return i.LastName
	case i.LastName == "":
		return i.FirstName
	default:
		return i.FirstName + " " + i.LastName
	}
}

func (i Identity) IsAdmin() bool { return i.Role == models.RoleAdmin }

// Session holds the current identity and notifies subscribers whenever
// it changes. It replaces ad-hoc storage polling: views subscribe once
// and are pushed every login/logout instead of re-reading shared state.
type Session struct {
	mu       sync.RWMutex
	identity *Identity
	token    string
	nextID   int
	subs     map[int]func(*Identity)
}

func NewSession() *Session {
	return &Session{subs: map[int]func(*Identity){}}
}

// Current returns the signed-in identity, if any.
func (s *Session) Current() (Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// Token returns the bearer token for the current session, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set installs a new identity (login) and notifies subscribers.
func (s *Session) Set(identity Identity, token string) {
	s.mu.Lock()
	s.identity = &identity
	s.token = token
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(&identity)
	}
}

// Clear drops the identity (logout) and notifies subscribers with nil.
func (s *Session) Clear() {
	s.mu.Lock()
	s.identity = nil
	s.token = ""
	subs := s.snapshotSubs()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers fn to run on every identity change. The returned
// function unsubscribes.
func (s *Session) Subscribe(fn func(*Identity)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// snapshotSubs must be called with mu held.
func (s *Session) snapshotSubs() []func(*Identity) {
	out := make([]func(*Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
