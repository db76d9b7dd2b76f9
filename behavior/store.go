package behavior

import "sync"

// Store is the single shared cell holding the current Behavior.
// Behavior values are immutable, so handing out the stored value is a copy.
type Store struct {
	mux     sync.Mutex
	initial Behavior
	current Behavior
}

func NewStore(initial Behavior) *Store {
	if initial == nil {
		initial = Default()
	}
	return &Store{initial: initial, current: initial}
}

func (s *Store) Snapshot() Behavior {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.current
}

// Replace swaps in b and returns the previous behavior.
// A nil b restores the initial behavior.
func (s *Store) Replace(b Behavior) Behavior {
	if b == nil {
		b = s.initial
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	prev := s.current
	s.current = b
	return prev
}

// Reset restores the behavior the store was created with.
func (s *Store) Reset() Behavior {
	return s.Replace(s.initial)
}
