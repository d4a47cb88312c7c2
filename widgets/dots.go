package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dots renders a page-position indicator. Position is the fractional pane
// position across the sequence, so the active dot follows a drag in real
// time; the dot nearest Position is highlighted.
type Dots struct {
	Count    int
	Position float64
	Active   lipgloss.Color
	Inactive lipgloss.Color
}

func (d Dots) Render(width int) string {
	if d.Count <= 0 {
		return ""
	}
	active := int(math.Round(d.Position))
	if active < 0 {
		active = 0
	}
	if active >= d.Count {
		active = d.Count - 1
	}
	activeStyle := lipgloss.NewStyle().Foreground(d.Active)
	inactiveStyle := lipgloss.NewStyle().Foreground(d.Inactive)
	dots := make([]string, d.Count)
	for i := range dots {
		if i == active {
			dots[i] = activeStyle.Render("●")
		} else {
			dots[i] = inactiveStyle.Render("○")
		}
	}
	row := strings.Join(dots, " ")
	if width <= 0 {
		return row
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}
