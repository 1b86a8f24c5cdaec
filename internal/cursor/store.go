package cursor

import "sync"

// Listener is notified with the new variant after every change.
type Listener func(Variant)

// Store holds the single active cursor variant for one page. It is passed by
// reference to every region that reacts to hover.
type Store struct {
	mu        sync.RWMutex
	variant   Variant
	nextID    int
	listeners map[int]Listener
}

// NewStore returns a store holding Default.
func NewStore() *Store {
	return &Store{
		variant:   Default,
		listeners: make(map[int]Listener),
	}
}

// Get returns the active variant.
func (s *Store) Get() Variant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.variant
}

// Set parses token and stores the result; unknown tokens store Default.
func (s *Store) Set(token string) {
	s.put(ParseVariant(token))
}

// Enter is called when the pointer enters a region that wants variant v.
func (s *Store) Enter(v Variant) {
	s.put(ParseVariant(string(v)))
}

// Leave is called when the pointer leaves a hover region.
func (s *Store) Leave() {
	s.put(Default)
}

// Reset returns the store to Default, as on mount.
func (s *Store) Reset() {
	s.put(Default)
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) put(v Variant) {
	s.mu.Lock()
	if s.variant == v {
		s.mu.Unlock()
		return
	}
	s.variant = v
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(v)
	}
}
