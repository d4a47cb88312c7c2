package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskdeck/deck"
	"github.com/jask/jaskdeck/pager"
)

// ---------------------------------------------------------------------------
// Deck picker
// ---------------------------------------------------------------------------

type deckItem struct {
	deck deck.Deck
}

func (i deckItem) FilterValue() string { return i.deck.Title }

type deckDelegate struct{}

func (d deckDelegate) Height() int  { return 1 }
func (d deckDelegate) Spacing() int { return 0 }

func (d deckDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d deckDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(deckItem)
	if !ok {
		return
	}
	line := fmt.Sprintf("%s %s", it.deck.Title,
		headerDimStyle.Render(fmt.Sprintf("(%d slides)", it.deck.Slides)))
	if index == m.Index() {
		line = cursorStyle.Render("> ") + line
	} else {
		line = "  " + line
	}
	fmt.Fprint(w, line)
}

func newDeckList() list.Model {
	l := list.New(nil, deckDelegate{}, 40, 12)
	l.Title = "Decks"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.TitleBar = lipgloss.NewStyle().Padding(0, 0, 1, 0)
	return l
}

func deckItems(decks []deck.Deck) []list.Item {
	items := make([]list.Item, len(decks))
	for i, d := range decks {
		items[i] = deckItem{deck: d}
	}
	return items
}

// ---------------------------------------------------------------------------
// Jump-to-slide overlay
// ---------------------------------------------------------------------------

const jumpMaxRows = 8

type jumpMatch struct {
	index int
	title string
	score int
}

type jumpState struct {
	query   string
	cursor  int
	matches []jumpMatch
}

func newJumpState(c *pager.Controller) jumpState {
	j := jumpState{}
	j.rerank(c)
	return j
}

// rerank recomputes the match order and moves the cursor back to the best
// match. A query edit invalidates any manual cursor position.
func (j *jumpState) rerank(c *pager.Controller) {
	j.matches = rankSlides(j.query, c)
	j.cursor = 0
}

// selected returns the slide index under the cursor, or -1 when there are no
// matches.
func (j jumpState) selected() int {
	if j.cursor < 0 || j.cursor >= len(j.matches) {
		return -1
	}
	return j.matches[j.cursor].index
}

// rankSlides orders all slides by closeness to the query: substring matches
// first, then by edit distance to the title. An empty query keeps deck order.
func rankSlides(query string, c *pager.Controller) []jumpMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]jumpMatch, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		p := c.PaneAt(i)
		if p == nil {
			continue
		}
		title := p.Title()
		score := 0
		if q != "" {
			lt := strings.ToLower(title)
			if strings.Contains(lt, q) {
				score = 0
			} else {
				score = levenshtein.ComputeDistance(q, lt)
			}
		}
		out = append(out, jumpMatch{index: i, title: title, score: score})
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].score < out[b].score })
	return out
}

func (j jumpState) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Jump to slide"))
	b.WriteString("\n")
	b.WriteString(cursorStyle.Render("/ ") + j.query + cursorStyle.Render("▌"))
	b.WriteString("\n\n")
	if len(j.matches) == 0 {
		b.WriteString(statusStyle.Render("no slides"))
	}
	for row, match := range j.matches {
		if row >= jumpMaxRows {
			break
		}
		line := fmt.Sprintf("%2d  %s", match.index+1, match.title)
		if row == j.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if row < len(j.matches)-1 && row < jumpMaxRows-1 {
			b.WriteString("\n")
		}
	}
	return modalStyle.Render(b.String())
}
