package frame

import (
	"log/slog"

	"github.com/young1lin/pillrow/internal/observe"
)

// Reporter is the embedded side: it posts its own size to the parent window.
type Reporter struct {
	// Self is the embedded window.
	Self *Window
	// Top returns the top-level window. An error (the top window is out of
	// reach) counts as being embedded.
	Top func() (*Window, error)
	// Parent is the message channel of the embedding window.
	Parent *Bus
	// Measure returns the size of the whole document, margins included.
	Measure func() (observe.Size, error)
	// Log receives dropped-post diagnostics; nil discards them.
	Log *slog.Logger
}

// Embedded reports whether Self is not the top-level window.
func (r *Reporter) Embedded() bool {
	if r.Top == nil {
		return true
	}
	top, err := r.Top()
	if err != nil {
		return true
	}
	return top != r.Self
}

// Start posts the current size once, then again after every change reported by
// resizes. It does nothing when not embedded. The returned handle stops reporting.
func (r *Reporter) Start(resizes observe.SizeSource) observe.Unsubscribe {
	if !r.Embedded() {
		return observe.Nop
	}
	r.Report()
	return resizes.Subscribe(func(observe.Size) {
		r.Report()
	})
}

// Report measures the document and posts one size-change message.
func (r *Reporter) Report() {
	size, err := r.Measure()
	if err != nil {
		r.logger().Debug("frame size not reported", "err", err)
		return
	}
	data, err := NewSizeChange(size).Marshal()
	if err != nil {
		r.logger().Debug("frame size not reported", "err", err)
		return
	}
	r.Parent.Post(r.Self, data)
}

func (r *Reporter) logger() *slog.Logger {
	if r.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Log
}
