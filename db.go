package main

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskdeck/deck"
)

// openStoreCmd bootstraps the deck database: creates the parent directory,
// opens and migrates the store, and lists the available decks in one shot so
// the UI comes up with everything it needs.
func openStoreCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return storeReadyMsg{err: err}
		}
		store, err := deck.Open(path)
		if err != nil {
			return storeReadyMsg{err: err}
		}
		decks, err := store.Decks()
		if err != nil {
			store.Close()
			return storeReadyMsg{err: err}
		}
		return storeReadyMsg{store: store, decks: decks}
	}
}
