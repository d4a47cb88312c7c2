package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdeck/deck"
)

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type storeReadyMsg struct {
	store *deck.Store
	decks []deck.Deck
	err   error
}

type decksLoadedMsg struct {
	decks []deck.Deck
	err   error
}

type slidesLoadedMsg struct {
	source *deck.Source
	err    error
}

type savedMsg struct {
	err error
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

func refreshDecksCmd(store *deck.Store) tea.Cmd {
	return func() tea.Msg {
		decks, err := store.Decks()
		return decksLoadedMsg{decks: decks, err: err}
	}
}

func loadSlidesCmd(store *deck.Store, d deck.Deck) tea.Cmd {
	return func() tea.Msg {
		slides, err := store.Slides(d.ID)
		if err != nil {
			return slidesLoadedMsg{err: err}
		}
		return slidesLoadedMsg{source: deck.NewSource(d, slides)}
	}
}

func saveIndexCmd(store *deck.Store, deckID string, index int) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: store.SaveLastIndex(deckID, index)}
	}
}
