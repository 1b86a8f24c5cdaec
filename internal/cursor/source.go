package cursor

import (
	"sync"

	"github.com/folio-dev/folio/internal/motion"
)

// PointerBus fans raw pointer moves out to subscribers. It is the
// PointerSource a session feeds from its inbound events.
type PointerBus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(motion.Point)
}

// NewPointerBus returns an empty bus.
func NewPointerBus() *PointerBus {
	return &PointerBus{subs: make(map[int]func(motion.Point))}
}

// SubscribePointer implements PointerSource.
func (b *PointerBus) SubscribePointer(fn func(motion.Point)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers p to every subscriber.
func (b *PointerBus) Publish(p motion.Point) {
	b.mu.RLock()
	subs := make([]func(motion.Point), 0, len(b.subs))
	for _, fn := range b.subs {
		subs = append(subs, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subs {
		fn(p)
	}
}

// Len returns the number of live subscribers.
func (b *PointerBus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
