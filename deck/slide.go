package deck

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskdeck/widgets"
)

// Deck is one ordered collection of slides.
type Deck struct {
	ID        string
	Title     string
	Slides    int
	LastIndex int
	CreatedAt time.Time
}

// Slide is one unit of presentable content. It implements pager.Pane: the id
// is a uuid assigned at creation and never changes, which gives the pager the
// stable identity its adjacency lookups require.
type Slide struct {
	id     string
	DeckID string
	Pos    int
	Name   string
	Body   string
	Accent string
}

// NewSlide builds a slide with an already-assigned id. The store is the usual
// caller; tests use it to build fixtures without a database.
func NewSlide(id, deckID string, pos int, name, body, accent string) *Slide {
	return &Slide{id: id, DeckID: deckID, Pos: pos, Name: name, Body: body, Accent: accent}
}

func (s *Slide) ID() string    { return s.id }
func (s *Slide) Title() string { return s.Name }

func (s *Slide) View(width, height int) string {
	return widgets.SlideCard{
		Title:  s.Name,
		Body:   s.Body,
		Accent: lipgloss.Color(s.Accent),
	}.Render(width, height)
}
