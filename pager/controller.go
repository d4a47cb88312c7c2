package pager

// Direction of travel when showing a pane.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// Axis is the scroll axis of the display surface.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Surface is the host scroll mechanism the controller drives. The controller
// registers itself as the surface's adjacency provider (Before/After) and
// receives offset samples, drag transitions, and animation-finished events
// back through OffsetChanged, SetDragging, WillTransition and
// DidFinishAnimating.
type Surface interface {
	// Show makes pane the displayed pane. With animated false the surface
	// snaps immediately, discarding any prior display state; with animated
	// true it runs its transition and later reports DidFinishAnimating.
	Show(pane Pane, dir Direction, animated bool)
	// PageWidth is the width of one page in the surface's offset units.
	PageWidth() float64
	// Frontmost reports the pane currently occupying the display slot.
	Frontmost() Pane
}

// SurfaceFactory builds a surface for an axis. The controller calls it once
// at construction and again whenever the axis changes, since an axis change
// tears down and recreates the surface wrapper.
type SurfaceFactory func(axis Axis, c *Controller) Surface

// Controller orchestrates the pane list, data source, and tracker, and
// bridges tracker decisions back into "set the currently displayed pane".
// All state is owned here; collaborators only read the index and submit
// events. Everything runs synchronously on one event loop; no locking.
type Controller struct {
	source  DataSource
	panes   PaneList
	tracker *Tracker
	factory SurfaceFactory
	surface Surface
	axis    Axis

	pending []Pane // destination of an in-flight animated transition

	indexObservers  []func(old, new int)
	scrollObservers []func(position float64)
	logf            func(format string, args ...any)
}

func NewController(factory SurfaceFactory) *Controller {
	c := &Controller{
		source:  emptySource{},
		tracker: NewTracker(),
		factory: factory,
		axis:    AxisHorizontal,
	}
	c.surface = factory(c.axis, c)
	return c
}

// SetLogf installs a debug log sink for contract violations (out-of-range
// default index). Silent by default; never fatal.
func (c *Controller) SetLogf(logf func(format string, args ...any)) {
	c.logf = logf
}

// OnIndexChanged registers an observer for index changes. Observers run
// synchronously in registration order, in the order events occur.
func (c *Controller) OnIndexChanged(fn func(old, new int)) {
	c.indexObservers = append(c.indexObservers, fn)
}

// OnScroll registers an observer for scroll-progress samples (fractional
// pane position across the whole sequence). Same ordering guarantee as
// OnIndexChanged.
func (c *Controller) OnScroll(fn func(position float64)) {
	c.scrollObservers = append(c.scrollObservers, fn)
}

// SetDataSource assigns the data source and reloads. Assigning the identical
// reference is a no-op; comparison is by identity, not content. A nil source
// falls back to the built-in empty source.
func (c *Controller) SetDataSource(ds DataSource) {
	if ds == nil {
		ds = emptySource{}
	}
	if ds == c.source {
		return
	}
	c.source = ds
	c.Reload()
}

// Reload fetches panes and the default index from the data source. When the
// source answers with no panes, or with a default index outside the fetched
// list, nothing changes: the current list, index, and displayed pane all
// stay as they were. That is a routine race with in-flight gestures, not an
// error. On success the pane list is swapped, the tracker is reset to the
// default index, and the surface shows that pane without animation.
func (c *Controller) Reload() {
	panes := c.source.Panes(c)
	def := c.source.DefaultIndex(c)
	if panes == nil {
		return
	}
	if def < 0 || def >= len(panes) {
		c.debugf("pager: default index %d outside [0,%d), reload ignored", def, len(panes))
		return
	}
	old := c.tracker.Index()
	c.panes = NewPaneList(panes...)
	c.pending = nil
	c.tracker.Reset(def)
	c.surface.Show(c.panes.At(def), DirectionForward, false)
	if def != old {
		c.notifyIndex(old, def)
	}
}

// CurrentIndex returns the current page index. ok is false when no list is
// loaded.
func (c *Controller) CurrentIndex() (int, bool) {
	idx := c.tracker.Index()
	return idx, idx >= 0
}

// CurrentPane returns the pane at the current index, or nil.
func (c *Controller) CurrentPane() Pane {
	return c.panes.At(c.tracker.Index())
}

func (c *Controller) Len() int { return c.panes.Len() }

// PaneAt returns the pane at index i, or nil when i is out of range.
func (c *Controller) PaneAt(i int) Pane { return c.panes.At(i) }

// Before and After expose the adjacency protocol to the surface so it can
// pre-load neighbors.
func (c *Controller) Before(p Pane) Pane { return c.panes.Before(p) }
func (c *Controller) After(p Pane) Pane  { return c.panes.After(p) }

// JumpTo displays the pane at index. Out-of-range indexes are ignored. A
// non-animated jump updates the index immediately; an animated jump leaves
// the index to the surface's completion event.
func (c *Controller) JumpTo(index int, animated bool) {
	if index < 0 || index >= c.panes.Len() {
		return
	}
	cur := c.tracker.Index()
	if index == cur {
		return
	}
	dir := DirectionForward
	if index < cur {
		dir = DirectionBackward
	}
	c.surface.Show(c.panes.At(index), dir, animated)
	if !animated {
		c.tracker.SetIndex(index)
		c.notifyIndex(cur, index)
	}
}

// Axis returns the current scroll axis.
func (c *Controller) Axis() Axis { return c.axis }

// Surface returns the active surface wrapper.
func (c *Controller) Surface() Surface { return c.surface }

// SetAxis tears down the surface wrapper, recreates it for the new axis, and
// reloads. Any in-flight gesture state is discarded.
func (c *Controller) SetAxis(axis Axis) {
	c.axis = axis
	c.tracker.SetDragging(false)
	c.surface = c.factory(axis, c)
	c.Reload()
}

// SetDragging forwards the surface's drag-state transitions to the tracker.
func (c *Controller) SetDragging(dragging bool) {
	c.tracker.SetDragging(dragging)
}

// OffsetChanged feeds one raw offset sample from the surface through the
// tracker and delivers the resulting notification, if any, in sample order.
func (c *Controller) OffsetChanged(raw float64) {
	obs := c.tracker.Observe(raw, c.surface.PageWidth(), c.panes.Len())
	switch {
	case obs.IndexChanged:
		c.notifyIndex(obs.OldIndex, obs.Index)
	case obs.Progress:
		for _, fn := range c.scrollObservers {
			fn(obs.Position)
		}
	}
}

// WillTransition is the surface's notice that an animated transition toward
// the given panes has begun. The index is not touched here; it either already
// moved during the drag or will be corrected on completion.
func (c *Controller) WillTransition(to []Pane) {
	c.pending = to
}

// InTransition reports whether an animated transition is in flight.
func (c *Controller) InTransition() bool { return len(c.pending) > 0 }

// DidFinishAnimating is the surface's completion event. It is a correction
// mechanism, not the primary one: only when the transition actually completed
// (finished and completed both true), and no drag is active, is the index set
// to the position of the now-frontmost pane, covering programmatic jumps and
// settle landings the offset math did not register. completed false never
// changes the index.
func (c *Controller) DidFinishAnimating(finished, completed bool, previous []Pane) {
	if finished {
		c.pending = nil
	}
	if !finished || !completed || c.tracker.Dragging() {
		return
	}
	front := c.surface.Frontmost()
	if front == nil {
		return
	}
	idx := c.panes.IndexOf(front)
	if idx < 0 {
		return
	}
	old := c.tracker.Index()
	if idx == old {
		return
	}
	c.tracker.SetIndex(idx)
	c.notifyIndex(old, idx)
}

func (c *Controller) notifyIndex(old, new int) {
	for _, fn := range c.indexObservers {
		fn(old, new)
	}
}

func (c *Controller) debugf(format string, args ...any) {
	if c.logf != nil {
		c.logf(format, args...)
	}
}
