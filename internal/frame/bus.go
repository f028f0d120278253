package frame

import (
	"maps"
	"slices"
	"sync"

	"github.com/young1lin/pillrow/internal/observe"
)

// Window identifies one window (a host or a frame). Windows compare by identity.
type Window struct {
	name string
}

// NewWindow creates a new window identity. The name is for logs only.
func NewWindow(name string) *Window {
	return &Window{name: name}
}

func (w *Window) String() string {
	if w == nil {
		return "<nil>"
	}
	return w.name
}

// Event is a message delivered to a window, with the window that sent it.
type Event struct {
	Source *Window
	Data   []byte
}

// Bus is the message channel of one window.
type Bus struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Event)
}

// NewBus creates a bus with no listeners.
func NewBus() *Bus {
	return &Bus{listeners: make(map[int]func(Event))}
}

// Listen registers fn for every message posted after this call.
func (b *Bus) Listen(fn func(Event)) observe.Unsubscribe {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	return observe.Once(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.listeners, id)
	})
}

// Post delivers data from source to every listener, in registration order.
func (b *Bus) Post(source *Window, data []byte) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.listeners))
	for _, id := range slices.Sorted(maps.Keys(b.listeners)) {
		fns = append(fns, b.listeners[id])
	}
	b.mu.Unlock()

	ev := Event{Source: source, Data: data}
	for _, fn := range fns {
		fn(ev)
	}
}

// Listeners returns the number of registered listeners.
func (b *Bus) Listeners() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners)
}
