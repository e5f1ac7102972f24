// Package pointer fans out pointer positions to scoped subscribers.
package pointer

import "sync"

// Position is a terminal cell.
type Position struct {
	X, Y int
}

// Hub delivers pointer positions to registered listeners. Listeners are
// called synchronously on the publishing goroutine.
type Hub struct {
	mu    sync.Mutex
	next  int
	subs  map[int]func(Position)
	last  Position
	moved bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subs: map[int]func(Position){}}
}

// Subscribe registers fn and returns the function that removes it. The
// returned function is safe to call more than once. A listener that joins
// after the pointer moved immediately receives the last position.
func (h *Hub) Subscribe(fn func(Position)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	last, moved := h.last, h.moved
	h.mu.Unlock()

	if moved {
		fn(last)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Publish sends p to every listener.
func (h *Hub) Publish(p Position) {
	h.mu.Lock()
	h.last, h.moved = p, true
	fns := make([]func(Position), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(p)
	}
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
