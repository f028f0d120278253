//go:generate mockgen -source=reactor.go -destination=mock_publisher_test.go -package=reactor_test

// Package reactor keeps a pill layout in step with its container.
//
// A Reactor recomputes the layout whenever the observed container changes size or
// the pills, toggles or mode change, and publishes each result. Size changes are
// debounced; the trailing recompute always sees the latest size, so a settled
// layout matches a fresh computation.
package reactor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/observe"
	"github.com/young1lin/pillrow/internal/pill"
)

// DefaultDebounce is roughly one frame at 60Hz.
const DefaultDebounce = 16 * time.Millisecond

// Snapshot is one published layout together with the inputs it was planned from.
type Snapshot struct {
	Seq      uint64
	Width    int
	Mode     layout.Mode
	Pills    []pill.Pill
	Toggles  pill.ToggleSet
	Elements []layout.Element
}

// Publisher receives layouts. Publish must not block and must not call back into
// the Reactor.
type Publisher interface {
	Publish(Snapshot)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(Snapshot)

// Publish calls f.
func (f PublisherFunc) Publish(s Snapshot) { f(s) }

// PlanFunc plans a layout; layout.Plan by default.
type PlanFunc func(pills []pill.Pill, toggles pill.ToggleSet, width int, mode layout.Mode, oracle layout.WidthOracle) []layout.Element

// Option configures a Reactor.
type Option func(*Reactor)

// WithDebounce sets the quiet period before a resize is laid out. Zero lays out
// every resize synchronously.
func WithDebounce(d time.Duration) Option {
	return func(r *Reactor) { r.debounce = d }
}

// WithPlanner replaces the planning function.
func WithPlanner(fn PlanFunc) Option {
	return func(r *Reactor) { r.plan = fn }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reactor) { r.log = l }
}

// WithMode sets the initial packing mode.
func WithMode(m layout.Mode) Option {
	return func(r *Reactor) { r.mode = m }
}

// WithToggles sets the initial toggle set.
func WithToggles(t pill.ToggleSet) Option {
	return func(r *Reactor) { r.toggles = t.Clone() }
}

// Reactor owns the layout inputs and republishes the layout when they change.
type Reactor struct {
	oracle   layout.WidthOracle
	pub      Publisher
	plan     PlanFunc
	debounce time.Duration
	log      *slog.Logger

	mu       sync.Mutex
	pills    []pill.Pill
	toggles  pill.ToggleSet
	mode     layout.Mode
	width    int
	hasWidth bool
	unsub    observe.Unsubscribe
	timer    *time.Timer
	gen      uint64
	mount    uint64
	seq      uint64
	last     Snapshot
	closed   bool
}

// New creates a Reactor measuring pills with oracle and publishing to pub.
// A nil oracle makes every layout pass a no-op until one is set.
func New(oracle layout.WidthOracle, pub Publisher, opts ...Option) *Reactor {
	r := &Reactor{
		oracle:   oracle,
		pub:      pub,
		plan:     layout.Plan,
		debounce: DefaultDebounce,
		log:      slog.New(slog.DiscardHandler),
		unsub:    observe.Nop,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mount starts observing src, releasing any previously observed container.
// The previous container's width is forgotten, so nothing is laid out until src
// reports a size. When src already knows its size, the first layout is computed
// and published before Mount returns.
func (r *Reactor) Mount(src observe.SizeSource) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	prev := r.unsub
	r.unsub = observe.Nop
	r.stopTimerLocked()
	r.mount++
	epoch := r.mount
	r.width, r.hasWidth = 0, false
	r.mu.Unlock()

	// Released outside the lock: a source may be delivering a resize right now.
	// Such a late resize carries the old epoch and is dropped.
	prev()

	unsub := src.Subscribe(func(size observe.Size) { r.resize(epoch, size) })

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		unsub()
		return
	}
	r.unsub = unsub
	if sizer, ok := src.(observe.Sizer); ok {
		if size, known := sizer.Current(); known {
			r.width, r.hasWidth = size.Width, true
			r.relayoutLocked("mount")
		}
	}
}

// Close stops observing and drops any pending resize. Later calls do nothing.
func (r *Reactor) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.stopTimerLocked()
	unsub := r.unsub
	r.unsub = observe.Nop
	r.mu.Unlock()

	unsub()
}

// SetPills replaces the pill list and relays out.
func (r *Reactor) SetPills(pills []pill.Pill) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pills = append([]pill.Pill(nil), pills...)
	r.relayoutLocked("pills")
}

// SetToggles replaces the toggle set and relays out.
func (r *Reactor) SetToggles(t pill.ToggleSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toggles = t.Clone()
	r.relayoutLocked("toggles")
}

// Toggle flips one pill's toggle state, relays out, and reports the new state.
func (r *Reactor) Toggle(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	on := r.toggles.Toggle(id)
	r.relayoutLocked("toggle")
	return on
}

// SetMode switches the packing mode and relays out.
func (r *Reactor) SetMode(m layout.Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = m
	r.relayoutLocked("mode")
}

// SetOracle replaces the width oracle, e.g. after the pill styles change.
func (r *Reactor) SetOracle(o layout.WidthOracle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.oracle = o
	r.relayoutLocked("oracle")
}

// Toggles returns a copy of the current toggle set.
func (r *Reactor) Toggles() pill.ToggleSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.toggles.Clone()
}

// Mode returns the current packing mode.
func (r *Reactor) Mode() layout.Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Last returns the most recently published snapshot.
func (r *Reactor) Last() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.seq > 0
}

// resize is the size source callback for the container mounted at epoch.
func (r *Reactor) resize(epoch uint64, size observe.Size) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || epoch != r.mount {
		return
	}

	first := !r.hasWidth
	r.width, r.hasWidth = size.Width, true
	if first || r.debounce <= 0 {
		r.relayoutLocked("resize")
		return
	}

	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.debounce, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		// A newer resize, Mount or Close has superseded this timer.
		if r.closed || gen != r.gen {
			return
		}
		r.timer = nil
		r.relayoutLocked("resize")
	})
}

func (r *Reactor) stopTimerLocked() {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Reactor) relayoutLocked(reason string) {
	if r.closed {
		return
	}
	if r.oracle == nil || !r.hasWidth {
		r.log.Debug("layout skipped: container not measured", "reason", reason)
		return
	}

	elements := r.plan(r.pills, r.toggles, r.width, r.mode, r.oracle)
	r.seq++
	r.last = Snapshot{
		Seq:      r.seq,
		Width:    r.width,
		Mode:     r.mode,
		Pills:    r.pills,
		Toggles:  r.toggles.Clone(),
		Elements: elements,
	}
	r.log.Debug("layout published", "reason", reason, "seq", r.seq, "width", r.width,
		"mode", r.mode.String(), "elements", len(elements))
	if r.pub != nil {
		r.pub.Publish(r.last)
	}
}
