package pager

// boundaryEpsilon pads the crossing thresholds so a sample sitting exactly on
// a page multiple cannot flap the index on float noise.
const boundaryEpsilon = 1e-9

// Observation is the outcome of feeding one offset sample to a Tracker.
// Exactly one of IndexChanged or Progress is set; a suppressed sample sets
// neither.
type Observation struct {
	IndexChanged bool
	OldIndex     int
	Index        int
	Progress     bool
	Position     float64
}

// Tracker converts the surface's continuous offset stream into a discrete
// current page index. The surface's "finished animating" callback is
// unreliable for drag-originated transitions: it can fire when a drag
// reverses mid-gesture without crossing a boundary, and can miss boundaries
// during fast multi-page flicks. The tracker therefore derives the index from
// the offset samples themselves while a drag is active; completion-callback
// correction is the Controller's job.
type Tracker struct {
	index      int // -1 when no list is loaded
	prevOffset float64
	hasPrev    bool
	dragging   bool
}

func NewTracker() *Tracker {
	return &Tracker{index: -1}
}

// Index returns the current page index, or -1 when unset.
func (t *Tracker) Index() int { return t.index }

func (t *Tracker) Dragging() bool { return t.dragging }

// SetDragging records the surface's drag state. Boundary crossings are only
// detected while a drag is active; programmatic and settle animations must
// not trigger them.
func (t *Tracker) SetDragging(dragging bool) { t.dragging = dragging }

// Reset prepares the tracker for a freshly loaded pane list: the previous
// offset is discarded and any drag in flight is forgotten, in one step, so no
// later sample is judged against stale state.
func (t *Tracker) Reset(index int) {
	t.index = index
	t.prevOffset = 0
	t.hasPrev = false
	t.dragging = false
}

// SetIndex overrides the tracked index. Used for completion correction and
// explicit jumps, never for raw offset noise.
func (t *Tracker) SetIndex(index int) { t.index = index }

// Observe feeds one raw offset sample. width is the page width in offset
// units; count is the pane list length, passed in on every sample so a reload
// mid-gesture cannot leave a stale bound in play. The raw offset follows the
// surface's one-page-lead convention: the current pane rests at offset width,
// leaving room to scroll either direction.
func (t *Tracker) Observe(raw, width float64, count int) Observation {
	if count == 0 || width <= 0 || t.index < 0 {
		return Observation{}
	}

	pageOffset := float64(t.index)*width + (raw - width)
	position := pageOffset / width

	if t.dragging {
		// First sample of a drag has no previous offset; tie-break forward.
		forward := !t.hasPrev || pageOffset > t.prevOffset
		if forward {
			if next := t.index + 1; next < count && position >= float64(next)-boundaryEpsilon {
				old := t.index
				t.index = next
				// A crossing consumes the sample: no progress emission, no
				// previous-offset update.
				return Observation{IndexChanged: true, OldIndex: old, Index: next}
			}
		} else {
			if next := t.index - 1; next >= 0 && position <= float64(next)+boundaryEpsilon {
				old := t.index
				t.index = next
				return Observation{IndexChanged: true, OldIndex: old, Index: next}
			}
		}
	}

	// The surface can fire the same offset callback more than once; emit one
	// progress observation per distinct offset.
	if t.hasPrev && pageOffset == t.prevOffset {
		return Observation{}
	}
	t.prevOffset = pageOffset
	t.hasPrev = true
	return Observation{Progress: true, Position: position}
}
