package pager

import "testing"

func TestTrackerIgnoresSamplesBeforeReset(t *testing.T) {
	tr := NewTracker()
	if got := tr.Observe(150, 100, 3); got != (Observation{}) {
		t.Fatalf("expected empty observation before reset, got %+v", got)
	}
	if tr.Index() != -1 {
		t.Fatalf("index should stay unset, got %d", tr.Index())
	}
}

func TestTrackerGuardsDegenerateInput(t *testing.T) {
	tr := NewTracker()
	tr.Reset(0)
	if got := tr.Observe(150, 100, 0); got != (Observation{}) {
		t.Fatalf("empty list should suppress observation, got %+v", got)
	}
	if got := tr.Observe(150, 0, 3); got != (Observation{}) {
		t.Fatalf("zero width should suppress observation, got %+v", got)
	}
	if tr.Index() != 0 {
		t.Fatalf("index changed on degenerate input: %d", tr.Index())
	}
}

func TestTrackerEmitsFractionalProgress(t *testing.T) {
	tr := NewTracker()
	tr.Reset(0)
	got := tr.Observe(125, 100, 3)
	if !got.Progress || got.IndexChanged {
		t.Fatalf("expected progress observation, got %+v", got)
	}
	if got.Position != 0.25 {
		t.Fatalf("position mismatch: %v", got.Position)
	}
}

func TestTrackerSuppressesDuplicateOffsets(t *testing.T) {
	tr := NewTracker()
	tr.Reset(1)
	first := tr.Observe(130, 100, 3)
	if !first.Progress {
		t.Fatalf("first sample should emit progress, got %+v", first)
	}
	second := tr.Observe(130, 100, 3)
	if second != (Observation{}) {
		t.Fatalf("repeated offset should be suppressed, got %+v", second)
	}
	third := tr.Observe(131, 100, 3)
	if !third.Progress {
		t.Fatalf("distinct offset should emit again, got %+v", third)
	}
}

func TestTrackerForwardCrossingDuringDrag(t *testing.T) {
	tr := NewTracker()
	tr.Reset(0)
	tr.SetDragging(true)

	if got := tr.Observe(150, 100, 3); !got.Progress || got.Position != 0.5 {
		t.Fatalf("mid-page sample should be progress, got %+v", got)
	}
	got := tr.Observe(200, 100, 3)
	if !got.IndexChanged || got.OldIndex != 0 || got.Index != 1 {
		t.Fatalf("expected crossing 0 -> 1, got %+v", got)
	}
	if got.Progress {
		t.Fatalf("crossing should consume the sample, got %+v", got)
	}

	// The surface recenters after a crossing, so the next raw sample is back
	// near rest.
	after := tr.Observe(100, 100, 3)
	if !after.Progress || after.Position != 1.0 {
		t.Fatalf("post-recenter sample mismatch: %+v", after)
	}
	if tr.Index() != 1 {
		t.Fatalf("index mismatch: %d", tr.Index())
	}
}

func TestTrackerBackwardCrossingDuringDrag(t *testing.T) {
	tr := NewTracker()
	tr.Reset(1)
	tr.SetDragging(true)

	// First sample tie-breaks forward, so it cannot cross backward.
	if got := tr.Observe(80, 100, 3); !got.Progress {
		t.Fatalf("first sample should be progress, got %+v", got)
	}
	if got := tr.Observe(50, 100, 3); !got.Progress || got.Position != 0.5 {
		t.Fatalf("mid-page sample mismatch: %+v", got)
	}
	got := tr.Observe(0, 100, 3)
	if !got.IndexChanged || got.OldIndex != 1 || got.Index != 0 {
		t.Fatalf("expected crossing 1 -> 0, got %+v", got)
	}
}

func TestTrackerFirstSampleTieBreaksForward(t *testing.T) {
	tr := NewTracker()
	tr.Reset(0)
	tr.SetDragging(true)
	got := tr.Observe(200, 100, 2)
	if !got.IndexChanged || got.Index != 1 {
		t.Fatalf("boundary on first sample should cross forward, got %+v", got)
	}
}

func TestTrackerNoCrossingWithoutDrag(t *testing.T) {
	tr := NewTracker()
	tr.Reset(0)
	got := tr.Observe(200, 100, 3)
	if got.IndexChanged {
		t.Fatalf("settle samples must not cross, got %+v", got)
	}
	if !got.Progress || got.Position != 1.0 {
		t.Fatalf("expected progress at boundary, got %+v", got)
	}
	if tr.Index() != 0 {
		t.Fatalf("index mismatch: %d", tr.Index())
	}
}

func TestTrackerClampsAtSequenceEdges(t *testing.T) {
	tr := NewTracker()
	tr.Reset(1)
	tr.SetDragging(true)
	// Forward past the last pane: no index 2 exists.
	if got := tr.Observe(200, 100, 2); got.IndexChanged {
		t.Fatalf("crossing past last pane, got %+v", got)
	}

	tr.Reset(0)
	tr.SetDragging(true)
	tr.Observe(90, 100, 2)
	// Backward past the first pane: no index -1 exists.
	if got := tr.Observe(0, 100, 2); got.IndexChanged {
		t.Fatalf("crossing past first pane, got %+v", got)
	}
}

func TestTrackerEpsilonAbsorbsFloatNoise(t *testing.T) {
	tr := NewTracker()
	tr.Reset(0)
	tr.SetDragging(true)
	tr.Observe(1.5, 1, 2)
	// A hair short of the boundary, inside the epsilon band, still crosses.
	got := tr.Observe(2-5e-10, 1, 2)
	if !got.IndexChanged || got.Index != 1 {
		t.Fatalf("expected epsilon crossing, got %+v", got)
	}
}

func TestTrackerResetClearsDragAndHistory(t *testing.T) {
	tr := NewTracker()
	tr.Reset(0)
	tr.SetDragging(true)
	tr.Observe(150, 100, 3)
	tr.Reset(2)
	if tr.Dragging() {
		t.Fatalf("reset should clear drag state")
	}
	// With history cleared the first sample tie-breaks forward again.
	got := tr.Observe(100, 100, 4)
	if !got.Progress || got.Position != 2.0 {
		t.Fatalf("post-reset sample mismatch: %+v", got)
	}
}
