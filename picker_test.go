package main

import (
	"fmt"
	"testing"

	"github.com/jask/jaskdeck/deck"
	"github.com/jask/jaskdeck/pager"
	"github.com/jask/jaskdeck/strip"
)

func jumpController(titles ...string) *pager.Controller {
	c := pager.NewController(func(axis pager.Axis, c *pager.Controller) pager.Surface {
		return strip.New(axis, c)
	})
	slides := make([]*deck.Slide, len(titles))
	for i, title := range titles {
		slides[i] = deck.NewSlide(fmt.Sprintf("s%d", i), "d1", i, title, "", "#cba6f7")
	}
	c.SetDataSource(deck.NewSource(deck.Deck{ID: "d1"}, slides))
	return c
}

func TestRankSlidesEmptyQueryKeepsDeckOrder(t *testing.T) {
	c := jumpController("Gamma", "Alpha", "Beta")
	matches := rankSlides("", c)
	if len(matches) != 3 {
		t.Fatalf("match count mismatch: %d", len(matches))
	}
	for i, m := range matches {
		if m.index != i {
			t.Fatalf("empty query reordered slides: %v", matches)
		}
	}
}

func TestRankSlidesSubstringFirst(t *testing.T) {
	c := jumpController("Alpha", "Beta", "Gamma")
	matches := rankSlides("bet", c)
	if matches[0].index != 1 {
		t.Fatalf("substring match should rank first: %v", matches)
	}
}

func TestRankSlidesFuzzyFallback(t *testing.T) {
	c := jumpController("Roadmap", "Numbers", "Closing")
	matches := rankSlides("raodmap", c)
	if matches[0].title != "Roadmap" {
		t.Fatalf("fuzzy ranking mismatch: %v", matches)
	}
}

func TestJumpStateCursorAndSelection(t *testing.T) {
	c := jumpController("Alpha", "Beta")
	j := newJumpState(c)
	if got := j.selected(); got != 0 {
		t.Fatalf("initial selection mismatch: %d", got)
	}
	j.cursor = 1
	if got := j.selected(); got != 1 {
		t.Fatalf("cursor selection mismatch: %d", got)
	}

	// A query edit snaps the cursor back to the best match.
	j.query = "beta"
	j.rerank(c)
	if j.cursor != 0 {
		t.Fatalf("rerank should reset the cursor: %d", j.cursor)
	}
	if got := j.selected(); got != 1 {
		t.Fatalf("best match should be Beta, got %d", got)
	}
}

func TestJumpStateEmptyDeck(t *testing.T) {
	j := newJumpState(jumpController())
	if got := j.selected(); got != -1 {
		t.Fatalf("empty deck should have no selection: %d", got)
	}
}
