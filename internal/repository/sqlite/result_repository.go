package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

type resultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new ResultRepository implementation
func NewResultRepository(db *sql.DB) repository.ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Insert(ctx context.Context, result models.GameResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("inserting result: session=%s, book_id=%d, extract_id=%d, puzzle_type=%s",
		result.SessionID, result.BookID, result.ExtractID, result.PuzzleType)

	res, err := r.db.ExecContext(ctx, `
INSERT INTO game_result (session_id, book_id, extract_id, puzzle_type, score, duration_sec, played_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
`, result.SessionID, result.BookID, result.ExtractID, result.PuzzleType, result.Score, result.DurationSec, result.PlayedAt)
	if err != nil {
		log.Error("failed to insert result: %v", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		log.Error("failed to get result id: %v", err)
		return 0, err
	}
	log.Debug("result inserted: id=%d", id)
	return id, nil
}

func (r *resultRepository) LatestPerExtract(ctx context.Context, filter models.ResultFilter) ([]models.GameResult, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("fetching latest results: session=%s, book_id=%d", filter.SessionID, filter.BookID)

	// Group-wise maximum: rank each session row within its (book, extract)
	// group by played_at, breaking ties on result_id so equal timestamps
	// resolve to the most recently inserted row.
	inner := sqlBuilder.Select(
		"result_id", "session_id", "book_id", "extract_id",
		"puzzle_type", "score", "duration_sec", "played_at",
		"ROW_NUMBER() OVER (PARTITION BY book_id, extract_id ORDER BY played_at DESC, result_id DESC) AS rn",
	).
		From("game_result").
		Where(squirrel.Eq{"session_id": filter.SessionID})

	if filter.BookID != 0 {
		inner = inner.Where(squirrel.Eq{"book_id": filter.BookID})
	}

	innerSQL, args, err := inner.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	query := fmt.Sprintf(`
SELECT result_id, session_id, book_id, extract_id, puzzle_type, score, duration_sec, played_at
FROM (%s)
WHERE rn = 1
ORDER BY book_id ASC, extract_id ASC
`, innerSQL)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query latest results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var g models.GameResult
		if err := rows.Scan(&g.ID, &g.SessionID, &g.BookID, &g.ExtractID, &g.PuzzleType, &g.Score, &g.DurationSec, &g.PlayedAt); err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		results = append(results, g)
	}
	log.Debug("found %d latest results", len(results))
	return results, rows.Err()
}

func (r *resultRepository) ProgressCounts(ctx context.Context, sessionID string, bookID int64) (*models.ProgressCounts, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	log.Debug("computing progress counts: session=%s, book_id=%d", sessionID, bookID)

	var counts models.ProgressCounts

	// Completed extracts are results joined back to the extract table; results
	// are matched on extract_id alone, mirroring how completion is recorded.
	err := r.db.QueryRowContext(ctx, `
SELECT COALESCE(MAX(e.extract_no), 0), COUNT(DISTINCT e.extract_id)
FROM game_result gr
JOIN extract e ON e.extract_id = gr.extract_id
WHERE gr.session_id = ? AND gr.book_id = ?
`, sessionID, bookID).Scan(&counts.MaxExtractNo, &counts.CompletedExtracts)
	if err != nil {
		log.Error("failed to compute completion counts: %v", err)
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
SELECT COUNT(*) FROM extract WHERE book_id = ?
`, bookID).Scan(&counts.TotalExtracts)
	if err != nil {
		log.Error("failed to count extracts: %v", err)
		return nil, err
	}

	log.Debug("progress counts: max_no=%d, completed=%d, total=%d",
		counts.MaxExtractNo, counts.CompletedExtracts, counts.TotalExtracts)
	return &counts, nil
}
