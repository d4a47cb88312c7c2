package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdeck/pager"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if s := m.strip(); s != nil {
			s.SetSize(msg.Width, m.bodyHeight())
		}
		m.picker.SetSize(minInt(msg.Width-6, 48), minInt(m.bodyHeight(), 14))
		m.help.Width = msg.Width
		return m, nil

	case storeReadyMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.store = msg.store
		m.picker.SetItems(deckItems(msg.decks))
		if len(msg.decks) == 0 {
			m.state = stateDeck
			return m, nil
		}
		return m, loadSlidesCmd(m.store, msg.decks[0])

	case decksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.picker.SetItems(deckItems(msg.decks))
		return m, nil

	case slidesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.source = msg.source
		m.controller.SetDataSource(msg.source)
		if idx, ok := m.controller.CurrentIndex(); ok {
			m.lastSavedIndex = idx
		}
		m.state = stateDeck
		if m.cfg.Present.AutoPlay && !m.auto.Running() {
			return m, m.auto.Start()
		}
		return m, nil

	case pager.AutoScrollMsg:
		cmd := m.auto.Advance(msg)
		return m.withSave(tea.Batch(cmd, m.pump()))

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil

	case tea.MouseMsg:
		if m.state != stateDeck {
			return m, nil
		}
		if s := m.strip(); s != nil {
			return m.withSave(s.Update(msg))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Animation frames and other surface-internal messages.
	if s := m.strip(); s != nil {
		return m.withSave(s.Update(msg))
	}
	return m, nil
}

// withSave appends a position write when the current index has moved since the
// last save.
func (m model) withSave(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	idx, ok := m.controller.CurrentIndex()
	if !ok || m.store == nil || m.source == nil || idx == m.lastSavedIndex {
		return m, cmd
	}
	m.lastSavedIndex = idx
	return m, tea.Batch(cmd, saveIndexCmd(m.store, m.source.Deck().ID, idx))
}

// pump collects the frame command of a controller-driven animation.
func (m model) pump() tea.Cmd {
	if s := m.strip(); s != nil {
		return s.Pump()
	}
	return nil
}

func (m model) quit() tea.Cmd {
	if m.store != nil && m.source != nil {
		if idx, ok := m.controller.CurrentIndex(); ok {
			return tea.Sequence(saveIndexCmd(m.store, m.source.Deck().ID, idx), tea.Quit)
		}
	}
	return tea.Quit
}

// ---------------------------------------------------------------------------
// Key dispatch
// ---------------------------------------------------------------------------

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case statePicker:
		return m.handlePickerKey(msg)
	case stateJump:
		return m.handleJumpKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Next):
		if s := m.strip(); s != nil {
			return m.withSave(s.Animate(pager.DirectionForward))
		}

	case key.Matches(msg, m.keys.Prev):
		if s := m.strip(); s != nil {
			return m.withSave(s.Animate(pager.DirectionBackward))
		}

	case key.Matches(msg, m.keys.First):
		m.controller.JumpTo(0, true)
		return m.withSave(m.pump())

	case key.Matches(msg, m.keys.Last):
		m.controller.JumpTo(m.controller.Len()-1, true)
		return m.withSave(m.pump())

	case key.Matches(msg, m.keys.Jump):
		if m.controller.Len() > 0 {
			m.state = stateJump
			m.jump = newJumpState(m.controller)
		}
		return m, nil

	case key.Matches(msg, m.keys.Decks):
		if m.store != nil {
			m.state = statePicker
			return m, refreshDecksCmd(m.store)
		}
		return m, nil

	case key.Matches(msg, m.keys.AutoPlay):
		if m.auto.Running() {
			m.auto.Stop()
			return m, nil
		}
		return m, m.auto.Start()

	case key.Matches(msg, m.keys.Axis):
		axis := pager.AxisVertical
		if m.controller.Axis() == pager.AxisVertical {
			axis = pager.AxisHorizontal
		}
		m.controller.SetAxis(axis)
		if s := m.strip(); s != nil {
			s.SetSize(m.width, m.bodyHeight())
		}
		return m, nil
	}
	return m, nil
}

func (m model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.Close):
		m.state = stateDeck
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		it, ok := m.picker.SelectedItem().(deckItem)
		if !ok {
			return m, nil
		}
		m.state = stateDeck
		if m.source != nil && it.deck.ID == m.source.Deck().ID {
			return m, nil
		}
		m.auto.Stop()
		return m, loadSlidesCmd(m.store, it.deck)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// handleJumpKey edits the jump query. Printable keys type into the query, so
// only ctrl+c quits from here.
func (m model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, m.quit()

	case key.Matches(msg, m.keys.Close):
		m.state = stateDeck
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		idx := m.jump.selected()
		m.state = stateDeck
		if idx >= 0 {
			m.controller.JumpTo(idx, true)
			return m.withSave(m.pump())
		}
		return m, nil

	case msg.Type == tea.KeyUp:
		if m.jump.cursor > 0 {
			m.jump.cursor--
		}
		return m, nil

	case msg.Type == tea.KeyDown:
		if m.jump.cursor < len(m.jump.matches)-1 {
			m.jump.cursor++
		}
		return m, nil

	case msg.Type == tea.KeyBackspace:
		if len(m.jump.query) > 0 {
			runes := []rune(m.jump.query)
			m.jump.query = string(runes[:len(runes)-1])
			m.jump.rerank(m.controller)
		}
		return m, nil

	case msg.Type == tea.KeySpace:
		m.jump.query += " "
		m.jump.rerank(m.controller)
		return m, nil

	case msg.Type == tea.KeyRunes:
		m.jump.query += string(msg.Runes)
		m.jump.rerank(m.controller)
		return m, nil
	}
	return m, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
