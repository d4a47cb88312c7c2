package deck

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "decks.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreSeedsWelcomeDeck(t *testing.T) {
	s := openTestStore(t)
	decks, err := s.Decks()
	if err != nil {
		t.Fatalf("decks: %v", err)
	}
	if len(decks) != 1 || decks[0].Title != "Welcome" {
		t.Fatalf("expected seeded welcome deck, got %+v", decks)
	}
	if decks[0].Slides != len(welcomeSlides) {
		t.Fatalf("slide count mismatch: %d", decks[0].Slides)
	}
	slides, err := s.Slides(decks[0].ID)
	if err != nil {
		t.Fatalf("slides: %v", err)
	}
	for i, sl := range slides {
		if sl.Pos != i {
			t.Fatalf("slide %d out of order: pos=%d", i, sl.Pos)
		}
		if sl.ID() == "" {
			t.Fatalf("slide %d missing id", i)
		}
	}
}

func TestStoreDeckAndSlideRoundTrip(t *testing.T) {
	s := openTestStore(t)
	d, err := s.CreateDeck("Quarterly Review")
	if err != nil {
		t.Fatalf("create deck: %v", err)
	}
	if _, err := s.AddSlide(d.ID, "Intro", "hello", "#cba6f7"); err != nil {
		t.Fatalf("add slide: %v", err)
	}
	if _, err := s.AddSlide(d.ID, "Numbers", "42", "#89b4fa"); err != nil {
		t.Fatalf("add slide: %v", err)
	}

	slides, err := s.Slides(d.ID)
	if err != nil {
		t.Fatalf("slides: %v", err)
	}
	if len(slides) != 2 {
		t.Fatalf("slide count mismatch: %d", len(slides))
	}
	if slides[0].Name != "Intro" || slides[0].Pos != 0 {
		t.Fatalf("first slide mismatch: %+v", slides[0])
	}
	if slides[1].Name != "Numbers" || slides[1].Pos != 1 {
		t.Fatalf("second slide mismatch: %+v", slides[1])
	}
	if slides[1].Accent != "#89b4fa" {
		t.Fatalf("accent mismatch: %s", slides[1].Accent)
	}
}

func TestStoreSavesLastIndex(t *testing.T) {
	s := openTestStore(t)
	decks, _ := s.Decks()
	deckID := decks[0].ID

	if err := s.SaveLastIndex(deckID, 2); err != nil {
		t.Fatalf("save: %v", err)
	}
	decks, _ = s.Decks()
	if decks[0].LastIndex != 2 {
		t.Fatalf("last index mismatch: %d", decks[0].LastIndex)
	}

	// Negative positions clamp to zero rather than poisoning the row.
	if err := s.SaveLastIndex(deckID, -4); err != nil {
		t.Fatalf("save: %v", err)
	}
	decks, _ = s.Decks()
	if decks[0].LastIndex != 0 {
		t.Fatalf("negative index should clamp: %d", decks[0].LastIndex)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decks.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.CreateDeck("Second"); err != nil {
		t.Fatalf("create: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	decks, err := s.Decks()
	if err != nil {
		t.Fatalf("decks: %v", err)
	}
	// Welcome seed plus the created deck; no reseeding on reopen.
	if len(decks) != 2 {
		t.Fatalf("deck count mismatch after reopen: %d", len(decks))
	}
}
