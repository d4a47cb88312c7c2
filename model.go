package main

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdeck/deck"
	"github.com/jask/jaskdeck/pager"
	"github.com/jask/jaskdeck/strip"
)

// ---------------------------------------------------------------------------
// App model
// ---------------------------------------------------------------------------

type appState int

const (
	stateLoading appState = iota
	stateDeck
	statePicker
	stateJump
)

// scrollProgress is held by pointer so the controller's observers keep writing
// into it across Bubble Tea's value copies of the model.
type scrollProgress struct {
	position float64
}

type model struct {
	cfg       appConfig
	keys      keyMap
	modalKeys modalKeyMap
	help      help.Model

	width  int
	height int

	store      *deck.Store
	controller *pager.Controller
	auto       *pager.AutoScroller
	progress   *scrollProgress
	source     *deck.Source

	state  appState
	picker list.Model
	jump   jumpState

	// lastSavedIndex suppresses redundant position writes.
	lastSavedIndex int

	err error
}

func newModel(cfg appConfig) model {
	progress := &scrollProgress{}
	controller := pager.NewController(func(axis pager.Axis, c *pager.Controller) pager.Surface {
		return strip.New(axis, c)
	})
	controller.OnScroll(func(position float64) {
		progress.position = position
	})
	controller.OnIndexChanged(func(old, new int) {
		progress.position = float64(new)
	})

	auto := pager.NewAutoScroller(controller,
		time.Duration(cfg.Present.IntermissionSeconds)*time.Second,
		cfg.Present.Wrap)

	return model{
		cfg:            cfg,
		keys:           newKeyMap(),
		modalKeys:      modalKeyMap{newKeyMap()},
		help:           help.New(),
		controller:     controller,
		auto:           auto,
		progress:       progress,
		picker:         newDeckList(),
		state:          stateLoading,
		lastSavedIndex: -1,
	}
}

func (m model) Init() tea.Cmd {
	return openStoreCmd(m.cfg.Database.Path)
}

// strip returns the active strip surface. The surface is always a *strip.Strip
// because the controller factory only ever builds one.
func (m model) strip() *strip.Strip {
	s, _ := m.controller.Surface().(*strip.Strip)
	return s
}

// bodyHeight is the strip viewport height: total minus header, dots row, and
// footer.
func (m model) bodyHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}
