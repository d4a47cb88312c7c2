package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskdeck/widgets"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	// A store that never opened is fatal; anything later surfaces on the
	// footer instead.
	if m.err != nil && m.store == nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render("error: "+m.err.Error()))
	}

	base := strings.Join([]string{
		m.renderHeader(),
		m.renderBody(),
		m.renderDots(),
		m.renderFooter(),
	}, "\n")

	switch m.state {
	case statePicker:
		return overlayCentered(base, modalStyle.Render(m.picker.View()), m.width, m.height)
	case stateJump:
		return overlayCentered(base, m.jump.view(), m.width, m.height)
	}
	return base
}

func (m model) renderHeader() string {
	title := "jaskdeck"
	if m.source != nil {
		title = m.source.Deck().Title
	}
	left := titleStyle.Render(truncate(title, m.width/2))

	var right string
	if idx, ok := m.controller.CurrentIndex(); ok {
		pos := fmt.Sprintf("%d/%d", idx+1, m.controller.Len())
		if m.auto.Running() {
			pos = "▶ " + pos
		}
		right = headerDimStyle.Render(pos)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m model) renderBody() string {
	if m.state == stateLoading {
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			statusStyle.Render("opening deck database…"))
	}
	s := m.strip()
	if s == nil || m.controller.Len() == 0 {
		return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center,
			statusStyle.Render("no slides in this deck"))
	}
	return s.View()
}

func (m model) renderDots() string {
	return widgets.Dots{
		Count:    m.controller.Len(),
		Position: m.progress.position,
		Active:   colorAccent,
		Inactive: colorSurface2,
	}.Render(m.width)
}

func (m model) renderFooter() string {
	if m.err != nil {
		return errorStyle.Render(truncate("error: "+m.err.Error(), m.width))
	}
	if m.state == statePicker || m.state == stateJump {
		return m.help.View(m.modalKeys)
	}
	return m.help.View(m.keys)
}
