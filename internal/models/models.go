package models

import "time"

// Session identifies an anonymous client across requests. The token is the
// primary key and is opaque to the server beyond equality checks.
type Session struct {
	SessionID      string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// Book is a catalog entry. Author, Year and Genre are coalesced at the storage
// boundary, so a missing value arrives as "" or 0.
type Book struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
}

// BookOverview is a catalog entry with aggregate chapter counts for one session.
type BookOverview struct {
	Book
	Chapters          int `json:"chapters"`
	CompletedChapters int `json:"completed_chapters"`
}

// Extract is a chapter of a book, ordered by No within its book.
type Extract struct {
	ID     int64  `json:"extract_id"`
	BookID int64  `json:"book_id"`
	No     int    `json:"extract_no"`
	Title  string `json:"extract_title"`
}

// GameResult is one recorded quiz attempt. Rows are append-only; repeated
// attempts for the same (session, book, extract) each get their own row.
type GameResult struct {
	ID          int64     `json:"result_id"`
	SessionID   string    `json:"session_id"`
	BookID      int64     `json:"book_id"`
	ExtractID   int64     `json:"extract_id"`
	PuzzleType  string    `json:"puzzle_type"`
	Score       int       `json:"score"`
	DurationSec int       `json:"duration_sec"`
	PlayedAt    time.Time `json:"played_at"`
}

// ResultFilter scopes latest-result queries. BookID of 0 means all books.
type ResultFilter struct {
	SessionID string
	BookID    int64
}

// ProgressCounts holds the raw aggregates behind a progress report.
type ProgressCounts struct {
	MaxExtractNo      int
	CompletedExtracts int
	TotalExtracts     int
}

// Progress is the completion report for one (session, book) pair.
type Progress struct {
	BookID            int64   `json:"book_id"`
	MaxExtractNo      int     `json:"max_extract_no"`
	CompletedExtracts int     `json:"completed_extracts"`
	TotalExtracts     int     `json:"total_extracts"`
	ProgressPercent   float64 `json:"progress_percent"`
}

// BookStats are the chapter totals attached to a book summary.
type BookStats struct {
	TotalExtracts     int `json:"total_extracts"`
	CompletedExtracts int `json:"completed_extracts"`
}

// ChapterSummary annotates one extract with the session's completion state.
// LatestResult is nil when the chapter has never been played.
type ChapterSummary struct {
	ExtractID    int64       `json:"extract_id"`
	ExtractNo    int         `json:"extract_no"`
	Title        string      `json:"title"`
	Completed    bool        `json:"completed"`
	LatestResult *GameResult `json:"latest_result,omitempty"`
}

// BookSummary joins book metadata, stats and the ordered chapter list.
type BookSummary struct {
	Book     Book             `json:"book"`
	Stats    BookStats        `json:"stats"`
	Chapters []ChapterSummary `json:"chapters"`
}
