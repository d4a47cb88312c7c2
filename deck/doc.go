// Package deck holds the slide-deck domain: decks and slides, the sqlite
// store that persists them, and the adapter exposing a loaded deck to the
// pager's data-source contract.
package deck
