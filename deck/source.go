package deck

import "github.com/jask/jaskdeck/pager"

// Source adapts a loaded deck to the pager's data-source contract: panes are
// the deck's slides in position order and the default index is the stored
// reading position. Each load produces a fresh Source value, so assigning it
// to a controller always triggers a reload.
type Source struct {
	deck   Deck
	slides []*Slide
}

func NewSource(d Deck, slides []*Slide) *Source {
	return &Source{deck: d, slides: slides}
}

func (s *Source) Deck() Deck { return s.deck }

func (s *Source) Panes(*pager.Controller) []pager.Pane {
	if len(s.slides) == 0 {
		return nil
	}
	panes := make([]pager.Pane, len(s.slides))
	for i, sl := range s.slides {
		panes[i] = sl
	}
	return panes
}

// DefaultIndex clamps the stored position into the slide range; a deck whose
// slides shrank since the position was saved still opens on its last slide.
func (s *Source) DefaultIndex(*pager.Controller) int {
	idx := s.deck.LastIndex
	if idx < 0 {
		return 0
	}
	if n := len(s.slides); idx >= n && n > 0 {
		return n - 1
	}
	return idx
}
