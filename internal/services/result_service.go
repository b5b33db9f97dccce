package services

import (
	"context"
	"time"

	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

// ResultService handles quiz result recording and retrieval
type ResultService interface {
	// SaveResult validates and persists one quiz attempt, returning the
	// generated result id. Every call inserts a new row.
	SaveResult(ctx context.Context, sessionID string, result models.GameResult) (int64, error)
	// LatestResults returns the newest result per chapter for the session,
	// optionally scoped to one book (bookID 0 means all books).
	LatestResults(ctx context.Context, sessionID string, bookID int64) ([]models.GameResult, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
}

// NewResultService creates a new ResultService
func NewResultService(resultRepo repository.ResultRepository) ResultService {
	return &resultService{resultRepo: resultRepo}
}

func (s *resultService) SaveResult(ctx context.Context, sessionID string, result models.GameResult) (int64, error) {
	log := logger.FromContext(ctx)
	log.Debug("saving result: book_id=%d, extract_id=%d", result.BookID, result.ExtractID)

	if result.BookID <= 0 {
		return 0, errors.NewValidationError("book_id", "must be a positive id")
	}
	if result.ExtractID <= 0 {
		return 0, errors.NewValidationError("extract_id", "must be a positive id")
	}
	if result.PuzzleType == "" {
		return 0, errors.NewValidationError("puzzle_type", "cannot be empty")
	}

	result.SessionID = sessionID
	if result.PlayedAt.IsZero() {
		result.PlayedAt = time.Now().UTC()
	} else {
		result.PlayedAt = result.PlayedAt.UTC()
	}

	id, err := s.resultRepo.Insert(ctx, result)
	if err != nil {
		log.Error("failed to insert result: %v", err)
		return 0, errors.NewInternalError(err)
	}
	if id == 0 {
		log.Error("result insert returned no generated id")
		return 0, errors.NewInternalError(nil)
	}
	return id, nil
}

func (s *resultService) LatestResults(ctx context.Context, sessionID string, bookID int64) ([]models.GameResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing latest results: book_id=%d", bookID)

	results, err := s.resultRepo.LatestPerExtract(ctx, models.ResultFilter{SessionID: sessionID, BookID: bookID})
	if err != nil {
		log.Error("failed to fetch latest results: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return results, nil
}
