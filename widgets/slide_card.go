package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SlideCard renders one slide: a bordered card with an accent-colored title
// and the body centered in the remaining space.
type SlideCard struct {
	Title  string
	Body   string
	Accent lipgloss.Color
}

func (c SlideCard) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	accent := c.Accent
	if accent == "" {
		accent = lipgloss.Color("#cba6f7")
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2).
		Width(max(1, width-2)).
		Height(max(1, height-2))

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(c.Title)
	body := strings.TrimRight(c.Body, "\n")
	inner := title
	if body != "" {
		inner += "\n\n" + body
	}
	innerWidth := max(1, width-6)
	innerHeight := max(1, height-4)
	content := lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center, inner)
	return frame.Render(content)
}
