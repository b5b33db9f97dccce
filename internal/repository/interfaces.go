package repository

import (
	"context"
	"time"

	"github.com/wblg/bookquiz/internal/models"
)

// SessionRepository handles session data access
type SessionRepository interface {
	Insert(ctx context.Context, session models.Session) error
	// Touch updates last_activity_at for the matching session and reports
	// whether a row matched the token.
	Touch(ctx context.Context, token string, t time.Time) (bool, error)
}

// BookRepository handles read-only catalog data access
type BookRepository interface {
	// ListWithProgress returns all books ordered by id with chapter counts.
	// With an empty sessionID the completed count is always 0.
	ListWithProgress(ctx context.Context, sessionID string) ([]models.BookOverview, error)
	Get(ctx context.Context, bookID int64) (*models.Book, error)
	ListByTitle(ctx context.Context) ([]models.Book, error)
	ExtractsForBook(ctx context.Context, bookID int64) ([]models.Extract, error)
	// ExtractsAll returns every extract ordered by (book_id, extract_no).
	ExtractsAll(ctx context.Context) ([]models.Extract, error)
}

// ResultRepository handles quiz result data access
type ResultRepository interface {
	Insert(ctx context.Context, result models.GameResult) (int64, error)
	// LatestPerExtract returns the newest result per (book_id, extract_id)
	// for the filtered session, newest meaning maximum played_at with
	// result_id as tiebreak.
	LatestPerExtract(ctx context.Context, filter models.ResultFilter) ([]models.GameResult, error)
	ProgressCounts(ctx context.Context, sessionID string, bookID int64) (*models.ProgressCounts, error)
}
