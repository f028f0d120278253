package frame

import (
	"log/slog"
	"sync"

	"github.com/young1lin/pillrow/internal/observe"
)

// Slot is the area a host reserves for an embedded frame.
// Its width always fills the host; only the height follows the frame.
type Slot struct {
	mu       sync.Mutex
	height   int
	onChange func(height int)
}

// NewSlot creates a zero-height slot. onChange, if not nil, is called after each
// height update.
func NewSlot(onChange func(height int)) *Slot {
	return &Slot{onChange: onChange}
}

// Width is the slot's width, relative to the host.
func (s *Slot) Width() string {
	return "100%"
}

// Height returns the current height in cells.
func (s *Slot) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

func (s *Slot) setHeight(h int) {
	s.mu.Lock()
	s.height = h
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn(h)
	}
}

// Host is the embedding side. It sizes Slot from messages sent by Frame.
type Host struct {
	Frame *Window
	Slot  *Slot
	Log   *slog.Logger
}

// Attach listens on bus until the returned handle is called.
func (h *Host) Attach(bus *Bus) observe.Unsubscribe {
	return bus.Listen(h.handle)
}

func (h *Host) handle(ev Event) {
	log := h.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	// Other frames post similar messages to the same window.
	if ev.Source != h.Frame {
		log.Debug("frame message dropped", "reason", "foreign source", "source", ev.Source.String())
		return
	}
	msg, err := Decode(ev.Data)
	if err != nil {
		log.Debug("frame message dropped", "reason", err)
		return
	}
	h.Slot.setHeight(msg.Height)
}
