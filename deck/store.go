package deck

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists decks and slides in sqlite. Schema is managed by embedded
// migrations so a database created by any older build upgrades in place.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the deck database at path, applies pending
// migrations, and seeds the built-in welcome deck when the database is empty.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, fmt.Errorf("open deck db: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.seedIfEmpty(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migrate setup: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Decks returns all decks in creation order, with slide counts.
func (s *Store) Decks() ([]Deck, error) {
	rows, err := s.db.Query(`
		SELECT d.id, d.title, d.last_index, d.created_at, COUNT(sl.id)
		FROM decks d
		LEFT JOIN slides sl ON sl.deck_id = d.id
		GROUP BY d.id
		ORDER BY d.created_at, d.title`)
	if err != nil {
		return nil, fmt.Errorf("query decks: %w", err)
	}
	defer rows.Close()

	var out []Deck
	for rows.Next() {
		var d Deck
		var created string
		if err := rows.Scan(&d.ID, &d.Title, &d.LastIndex, &created, &d.Slides); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		d.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", created)
		out = append(out, d)
	}
	return out, rows.Err()
}

// Slides returns the slides of a deck ordered by position.
func (s *Store) Slides(deckID string) ([]*Slide, error) {
	rows, err := s.db.Query(`
		SELECT id, deck_id, position, title, body, accent
		FROM slides WHERE deck_id = ? ORDER BY position`, deckID)
	if err != nil {
		return nil, fmt.Errorf("query slides: %w", err)
	}
	defer rows.Close()

	var out []*Slide
	for rows.Next() {
		var sl Slide
		if err := rows.Scan(&sl.id, &sl.DeckID, &sl.Pos, &sl.Name, &sl.Body, &sl.Accent); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		out = append(out, &sl)
	}
	return out, rows.Err()
}

// CreateDeck inserts a new empty deck and returns it.
func (s *Store) CreateDeck(title string) (Deck, error) {
	d := Deck{ID: uuid.NewString(), Title: title, CreatedAt: time.Now()}
	if _, err := s.db.Exec(`INSERT INTO decks (id, title) VALUES (?, ?)`, d.ID, d.Title); err != nil {
		return Deck{}, fmt.Errorf("insert deck: %w", err)
	}
	return d, nil
}

// AddSlide appends a slide to the end of a deck.
func (s *Store) AddSlide(deckID, title, body, accent string) (*Slide, error) {
	var next int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(position)+1, 0) FROM slides WHERE deck_id = ?`, deckID).Scan(&next)
	if err != nil {
		return nil, fmt.Errorf("next position: %w", err)
	}
	sl := &Slide{id: uuid.NewString(), DeckID: deckID, Pos: next, Name: title, Body: body, Accent: accent}
	_, err = s.db.Exec(`
		INSERT INTO slides (id, deck_id, position, title, body, accent)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sl.id, sl.DeckID, sl.Pos, sl.Name, sl.Body, sl.Accent)
	if err != nil {
		return nil, fmt.Errorf("insert slide: %w", err)
	}
	return sl, nil
}

// SaveLastIndex records the reading position for a deck so reopening resumes
// where the viewer left off.
func (s *Store) SaveLastIndex(deckID string, index int) error {
	if index < 0 {
		index = 0
	}
	if _, err := s.db.Exec(`UPDATE decks SET last_index = ? WHERE id = ?`, index, deckID); err != nil {
		return fmt.Errorf("save last index: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Seed data
// ---------------------------------------------------------------------------

var welcomeSlides = []struct {
	title  string
	body   string
	accent string
}{
	{"Welcome to jaskdeck", "A paging deck viewer for the terminal.\n\nDrag with the mouse, or use h/l to flip pages.", "#cba6f7"},
	{"Navigation", "h / l    previous / next slide\ng / G    first / last slide\n/        jump to a slide by title", "#89b4fa"},
	{"Decks", "Press d to open the deck picker.\n\nDecks live in a local sqlite database;\nyour position in each deck is remembered.", "#a6e3a1"},
	{"Presenting", "Press p to auto-advance on a timer.\nPress o to flip between horizontal and vertical paging.", "#fab387"},
}

func (s *Store) seedIfEmpty() error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM decks`).Scan(&n); err != nil {
		return fmt.Errorf("count decks: %w", err)
	}
	if n > 0 {
		return nil
	}
	d, err := s.CreateDeck("Welcome")
	if err != nil {
		return err
	}
	for _, sl := range welcomeSlides {
		if _, err := s.AddSlide(d.ID, sl.title, sl.body, sl.accent); err != nil {
			return err
		}
	}
	return nil
}
