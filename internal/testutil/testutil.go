package testutil

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wblg/bookquiz/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// SeedCatalog inserts a small fixture catalog and returns the book ids keyed
// by title. Layout:
//
//	"Pan Tadeusz" (genre "epic", author, year) with extracts 1..3
//	"Quo Vadis" (no genre, no author, no year) with extracts 1..2
//	"Lalka" with no extracts
func SeedCatalog(t *testing.T, database *db.DB) map[string]int64 {
	exec := func(query string, args ...any) {
		_, err := database.Exec(query, args...)
		require.NoError(t, err)
	}

	exec(`INSERT INTO genre (name) VALUES ('epic')`)
	exec(`INSERT INTO book (title, author, year, genre_id) VALUES ('Pan Tadeusz', 'Adam Mickiewicz', 1834, 1)`)
	exec(`INSERT INTO book (title, author, year, genre_id) VALUES ('Quo Vadis', NULL, NULL, NULL)`)
	exec(`INSERT INTO book (title, author, year, genre_id) VALUES ('Lalka', 'Boleslaw Prus', 1890, NULL)`)

	ids := map[string]int64{}
	for _, title := range []string{"Pan Tadeusz", "Quo Vadis", "Lalka"} {
		var id int64
		require.NoError(t, database.QueryRow(`SELECT book_id FROM book WHERE title = ?`, title).Scan(&id))
		ids[title] = id
	}

	for no := 1; no <= 3; no++ {
		exec(`INSERT INTO extract (book_id, extract_no, extract_title) VALUES (?, ?, ?)`,
			ids["Pan Tadeusz"], no, "Book "+strconv.Itoa(no))
	}
	for no := 1; no <= 2; no++ {
		exec(`INSERT INTO extract (book_id, extract_no, extract_title) VALUES (?, ?, NULL)`,
			ids["Quo Vadis"], no)
	}
	return ids
}

// SeedSession inserts a session row directly.
func SeedSession(t *testing.T, database *db.DB, token string) {
	now := time.Now().UTC()
	_, err := database.Exec(`INSERT INTO session (session_id, created_at, last_activity_at) VALUES (?, ?, ?)`,
		token, now, now)
	require.NoError(t, err)
}
