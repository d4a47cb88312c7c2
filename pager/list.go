package pager

// PaneList is an ordered sequence of panes. Insertion order is display order.
// Lists are replaced wholesale on reload and never mutated in place, so a
// value can be copied and compared freely. Suppliers must not include two
// panes with the same ID; adjacency lookups are identity-based and take the
// first match.
type PaneList struct {
	panes []Pane
}

func NewPaneList(panes ...Pane) PaneList {
	out := make([]Pane, len(panes))
	copy(out, panes)
	return PaneList{panes: out}
}

func (l PaneList) Len() int { return len(l.panes) }

// At returns the pane at index i, or nil when i is out of range.
func (l PaneList) At(i int) Pane {
	if i < 0 || i >= len(l.panes) {
		return nil
	}
	return l.panes[i]
}

// IndexOf returns the position of p by identity, or -1 when p is nil or not
// in the list.
func (l PaneList) IndexOf(p Pane) int {
	if p == nil {
		return -1
	}
	id := p.ID()
	for i, candidate := range l.panes {
		if candidate.ID() == id {
			return i
		}
	}
	return -1
}

// Before returns the pane immediately preceding p in display order. It
// returns nil when p is first, nil, or not in the list; an absent pane is a
// routine condition, not an error.
func (l PaneList) Before(p Pane) Pane {
	idx := l.IndexOf(p)
	if idx <= 0 {
		return nil
	}
	return l.panes[idx-1]
}

// After returns the pane immediately following p in display order, or nil
// when p is last, nil, or not in the list.
func (l PaneList) After(p Pane) Pane {
	idx := l.IndexOf(p)
	if idx < 0 || idx+1 >= len(l.panes) {
		return nil
	}
	return l.panes[idx+1]
}
