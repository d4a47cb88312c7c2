package pager

import (
	"testing"
	"time"
)

// completingSurface lands animated shows immediately, standing in for a real
// surface whose tween has finished.
type completingSurface struct {
	fakeSurface
	c *Controller
}

func (s *completingSurface) Show(p Pane, dir Direction, animated bool) {
	s.fakeSurface.Show(p, dir, animated)
	if animated {
		s.c.DidFinishAnimating(true, true, nil)
	}
}

func newAutoScrollFixture(wrap bool, ids ...string) (*Controller, *AutoScroller) {
	cs := &completingSurface{fakeSurface: fakeSurface{width: 100}}
	c := NewController(func(Axis, *Controller) Surface { return cs })
	cs.c = c
	c.SetDataSource(&fakeSource{panes: stubPanes(ids...), def: 0})
	return c, NewAutoScroller(c, 50*time.Millisecond, wrap)
}

func TestAutoScrollerAdvances(t *testing.T) {
	c, a := newAutoScrollFixture(true, "a", "b", "c")
	if a.Running() {
		t.Fatalf("scroller should start stopped")
	}
	if a.Start() == nil {
		t.Fatalf("start should schedule a tick")
	}
	if !a.Running() {
		t.Fatalf("scroller should be running after start")
	}

	msg := AutoScrollMsg{Generation: 1}
	if cmd := a.Advance(msg); cmd == nil {
		t.Fatalf("advance should reschedule")
	}
	if idx, _ := c.CurrentIndex(); idx != 1 {
		t.Fatalf("index mismatch after advance: %d", idx)
	}
}

func TestAutoScrollerWrapsAtEnd(t *testing.T) {
	c, a := newAutoScrollFixture(true, "a", "b")
	a.Start()
	a.Advance(AutoScrollMsg{Generation: 1})
	a.Advance(AutoScrollMsg{Generation: 1})
	if idx, _ := c.CurrentIndex(); idx != 0 {
		t.Fatalf("expected wraparound to 0, got %d", idx)
	}
	if !a.Running() {
		t.Fatalf("wrapping scroller should keep running")
	}
}

func TestAutoScrollerStopsAtEndWithoutWrap(t *testing.T) {
	c, a := newAutoScrollFixture(false, "a", "b")
	a.Start()
	a.Advance(AutoScrollMsg{Generation: 1})
	if cmd := a.Advance(AutoScrollMsg{Generation: 1}); cmd != nil {
		t.Fatalf("end of sequence should stop the timer")
	}
	if a.Running() {
		t.Fatalf("scroller should have stopped")
	}
	if idx, _ := c.CurrentIndex(); idx != 1 {
		t.Fatalf("index mismatch: %d", idx)
	}
}

func TestAutoScrollerDropsStaleTicks(t *testing.T) {
	c, a := newAutoScrollFixture(true, "a", "b")
	a.Start()
	a.Stop()
	if cmd := a.Advance(AutoScrollMsg{Generation: 1}); cmd != nil {
		t.Fatalf("stopped scroller should drop ticks")
	}

	a.Start() // generation 2
	if cmd := a.Advance(AutoScrollMsg{Generation: 1}); cmd != nil {
		t.Fatalf("stale generation should be dropped")
	}
	if idx, _ := c.CurrentIndex(); idx != 0 {
		t.Fatalf("stale tick moved the index: %d", idx)
	}
}

func TestAutoScrollerIntermissionFloor(t *testing.T) {
	_, a := newAutoScrollFixture(true, "a")
	a.SetIntermission(0)
	if a.Intermission() != 50*time.Millisecond {
		t.Fatalf("non-positive intermission should be ignored")
	}
	if NewAutoScroller(nil, 0, false).Intermission() != 5*time.Second {
		t.Fatalf("default intermission mismatch")
	}
}
