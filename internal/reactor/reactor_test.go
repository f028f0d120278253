package reactor_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/observe"
	"github.com/young1lin/pillrow/internal/pill"
	"github.com/young1lin/pillrow/internal/reactor"
)

var testPills = []pill.Pill{
	{ID: "a", Value: "Short"},
	{ID: "b", Value: "Short2"},
	{ID: "c", Value: "LongLongLong"},
}

// widths reserves 10 cells per pill, 5 more for c, and 5 more for toggled pills.
var widths = layout.WidthFunc(func(p pill.Pill, toggled bool) int {
	w := 10
	if p.ID == "c" {
		w += 5
	}
	if toggled {
		w += 5
	}
	return w
})

// recorder collects published snapshots from any goroutine.
type recorder struct {
	mu    sync.Mutex
	snaps []reactor.Snapshot
}

func (r *recorder) Publish(s reactor.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) all() []reactor.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]reactor.Snapshot(nil), r.snaps...)
}

func (r *recorder) last(t *testing.T) reactor.Snapshot {
	t.Helper()
	all := r.all()
	require.NotEmpty(t, all)
	return all[len(all)-1]
}

// countingPlanner wraps layout.Plan and counts invocations.
type countingPlanner struct {
	n atomic.Int64
}

func (c *countingPlanner) plan(pills []pill.Pill, toggles pill.ToggleSet, width int, mode layout.Mode, oracle layout.WidthOracle) []layout.Element {
	c.n.Add(1)
	return layout.Plan(pills, toggles, width, mode, oracle)
}

func TestMountWithKnownSizePublishesBeforeReturning(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	r := reactor.New(widths, rec, reactor.WithDebounce(time.Hour))
	defer r.Close()
	r.SetPills(testPills)
	assert.Empty(t, rec.all(), "nothing to lay out before the container is measured")

	hub := observe.NewHub()
	hub.Emit(observe.Size{Width: 25, Height: 10})
	r.Mount(hub)

	snap := rec.last(t)
	assert.Equal(t, uint64(1), snap.Seq)
	assert.Equal(t, 25, snap.Width)
	assert.Equal(t, layout.PlanDefault(testPills, pill.ToggleSet{}, 25, widths), snap.Elements)
}

func TestFirstResizeIsNotDebounced(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	r := reactor.New(widths, rec, reactor.WithDebounce(time.Hour))
	defer r.Close()
	r.SetPills(testPills)

	hub := observe.NewHub()
	r.Mount(hub)
	assert.Empty(t, rec.all())

	hub.Emit(observe.Size{Width: 40})
	require.Len(t, rec.all(), 1)
	assert.Equal(t, 40, rec.last(t).Width)
}

func TestMissingOracleSkipsLayout(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	r := reactor.New(nil, rec, reactor.WithDebounce(0))
	defer r.Close()
	hub := observe.NewHub()
	r.Mount(hub)
	r.SetPills(testPills)
	hub.Emit(observe.Size{Width: 40})
	assert.Empty(t, rec.all())

	r.SetOracle(widths)
	require.Len(t, rec.all(), 1)
	assert.Equal(t, 40, rec.last(t).Width)
}

func TestInputChangesRelayoutImmediately(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	hub := observe.NewHub()
	hub.Emit(observe.Size{Width: 30})
	r := reactor.New(widths, rec, reactor.WithDebounce(time.Hour))
	defer r.Close()
	r.Mount(hub)

	r.SetPills(testPills)
	assert.Len(t, rec.last(t).Pills, 3)

	assert.True(t, r.Toggle("a"))
	snap := rec.last(t)
	assert.True(t, snap.Toggles.Has("a"))
	assert.Equal(t, layout.PlanDefault(testPills, pill.NewToggleSet("a"), 30, widths), snap.Elements)

	r.SetMode(layout.ModeBinPacking)
	snap = rec.last(t)
	assert.Equal(t, layout.ModeBinPacking, snap.Mode)
	assert.Equal(t, layout.PlanBinPacked(testPills, pill.NewToggleSet("a"), 30, widths), snap.Elements)
	assert.Equal(t, layout.ModeBinPacking, r.Mode())

	r.SetToggles(pill.NewToggleSet("b", "c"))
	assert.Equal(t, []string{"b", "c"}, rec.last(t).Toggles.IDs())
	assert.Equal(t, []string{"b", "c"}, r.Toggles().IDs())

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, rec.last(t).Seq, last.Seq)
}

func TestPublishedTogglesDoNotAlias(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	hub := observe.NewHub()
	hub.Emit(observe.Size{Width: 30})
	r := reactor.New(widths, rec, reactor.WithToggles(pill.NewToggleSet("a")))
	defer r.Close()
	r.SetPills(testPills)
	r.Mount(hub)

	before := rec.last(t)
	r.Toggle("b")
	assert.False(t, before.Toggles.Has("b"))
}

func TestSynchronousResizeWithoutDebounce(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	hub := observe.NewHub()
	r := reactor.New(widths, rec, reactor.WithDebounce(0))
	defer r.Close()
	r.SetPills(testPills)
	r.Mount(hub)

	for _, w := range []int{20, 30, 40} {
		hub.Emit(observe.Size{Width: w})
		assert.Equal(t, w, rec.last(t).Width)
	}
}

func TestDebouncedResizeSettlesOnLatestWidth(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	planner := &countingPlanner{}
	hub := observe.NewHub()
	r := reactor.New(widths, rec,
		reactor.WithDebounce(20*time.Millisecond),
		reactor.WithPlanner(planner.plan))
	defer r.Close()
	r.SetPills(testPills)
	r.Mount(hub)

	// First size is laid out at once, the burst that follows is coalesced.
	for w := 10; w <= 60; w++ {
		hub.Emit(observe.Size{Width: w})
	}

	require.Eventually(t, func() bool {
		all := rec.all()
		return len(all) > 0 && all[len(all)-1].Width == 60
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, layout.PlanDefault(testPills, pill.ToggleSet{}, 60, widths), rec.last(t).Elements)
	assert.Less(t, planner.n.Load(), int64(51))
}

func TestCloseStopsRelayout(t *testing.T) {
	t.Parallel()

	planner := &countingPlanner{}
	hub := observe.NewHub()
	r := reactor.New(widths, &recorder{},
		reactor.WithDebounce(10*time.Millisecond),
		reactor.WithPlanner(planner.plan))
	r.SetPills(testPills)
	r.Mount(hub)
	hub.Emit(observe.Size{Width: 30})
	hub.Emit(observe.Size{Width: 35}) // pending when Close runs

	r.Close()
	r.Close()
	before := planner.n.Load()

	hub.Emit(observe.Size{Width: 50})
	r.SetPills(testPills)
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, before, planner.n.Load())
	assert.Equal(t, 0, hub.Subscribers())
}

func TestRemountReleasesPreviousContainer(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	first := observe.NewHub()
	second := observe.NewHub()
	r := reactor.New(widths, rec, reactor.WithDebounce(0))
	defer r.Close()
	r.SetPills(testPills)

	r.Mount(first)
	first.Emit(observe.Size{Width: 20})
	r.Mount(second)
	assert.Equal(t, 0, first.Subscribers())
	assert.Equal(t, 1, second.Subscribers())

	first.Emit(observe.Size{Width: 99})
	assert.Equal(t, 20, rec.last(t).Width)

	second.Emit(observe.Size{Width: 45})
	assert.Equal(t, 45, rec.last(t).Width)
}

func TestRemountForgetsPreviousWidth(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	measured := observe.NewHub()
	unmeasured := observe.NewHub()
	r := reactor.New(widths, rec, reactor.WithDebounce(0))
	defer r.Close()
	r.SetPills(testPills)

	r.Mount(measured)
	measured.Emit(observe.Size{Width: 100})
	require.Len(t, rec.all(), 1)

	r.Mount(unmeasured)
	r.SetPills(testPills[:1])
	r.Toggle(testPills[0].ID)
	r.SetMode(layout.ModeBinPacking)
	assert.Len(t, rec.all(), 1, "no layout until the new container is measured")

	unmeasured.Emit(observe.Size{Width: 30})
	require.Len(t, rec.all(), 2)
	last := rec.last(t)
	assert.Equal(t, 30, last.Width)
	assert.Len(t, last.Pills, 1)
}

func TestMountAfterCloseDoesNotSubscribe(t *testing.T) {
	t.Parallel()

	hub := observe.NewHub()
	r := reactor.New(widths, &recorder{})
	r.Close()
	r.Mount(hub)
	assert.Equal(t, 0, hub.Subscribers())
}

func TestPublishesToPublisher(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pub := NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any()).Do(func(s reactor.Snapshot) {
		assert.Equal(t, uint64(1), s.Seq)
		assert.Equal(t, 30, s.Width)
		assert.NoError(t, layout.Validate(s.Elements))
	}).Times(1)

	hub := observe.NewHub()
	hub.Emit(observe.Size{Width: 30})
	r := reactor.New(widths, pub, reactor.WithDebounce(0))
	defer r.Close()
	r.Mount(hub)
}

func TestMailboxPublisher(t *testing.T) {
	t.Parallel()

	mb := reactor.NewMailbox()
	hub := observe.NewHub()
	r := reactor.New(widths, mb, reactor.WithDebounce(0))
	defer r.Close()
	r.Mount(hub)
	r.SetPills(testPills)
	for _, w := range []int{10, 20, 30} {
		hub.Emit(observe.Size{Width: w})
	}

	snap := <-mb.C()
	assert.Equal(t, 30, snap.Width)
}
