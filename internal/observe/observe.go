// Package observe provides subscriptions to size changes.
//
// Every Subscribe returns an Unsubscribe handle. Calling it more than once is safe,
// and callers release it on teardown.
package observe

import (
	"maps"
	"slices"
	"sync"
)

// Size is a box size in cells.
type Size struct {
	Width  int
	Height int
}

// Unsubscribe releases a subscription. It is idempotent.
type Unsubscribe func()

// Once wraps fn so that only its first call has an effect.
func Once(fn func()) Unsubscribe {
	var once sync.Once
	return func() {
		once.Do(fn)
	}
}

// Nop is an Unsubscribe that does nothing.
func Nop() {}

// SizeSource reports size changes of an observed box.
type SizeSource interface {
	Subscribe(fn func(Size)) Unsubscribe
}

// Sizer is implemented by sources that already know their current size.
type Sizer interface {
	Current() (Size, bool)
}

// Hub is a SizeSource fed by explicit Emit calls.
// The TUI feeds it from window size messages; tests use it to fake resizes.
type Hub struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]func(Size)
	current Size
	known   bool
}

// NewHub creates a hub with no known size.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(Size))}
}

// Subscribe registers fn for every subsequent Emit.
func (h *Hub) Subscribe(fn func(Size)) Unsubscribe {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return Once(func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	})
}

// Emit records size and notifies every subscriber.
// Subscribers run on the caller's goroutine, outside the hub's lock.
func (h *Hub) Emit(size Size) {
	h.mu.Lock()
	h.current = size
	h.known = true
	subs := make([]func(Size), 0, len(h.subs))
	for _, id := range slices.Sorted(maps.Keys(h.subs)) {
		subs = append(subs, h.subs[id])
	}
	h.mu.Unlock()

	for _, fn := range subs {
		fn(size)
	}
}

// Current returns the last emitted size.
func (h *Hub) Current() (Size, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current, h.known
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
