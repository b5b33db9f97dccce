package services

import (
	"context"
	"math"

	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

// ProgressService computes per-book completion progress
type ProgressService interface {
	GetProgress(ctx context.Context, sessionID string, bookID int64) (*models.Progress, error)
}

type progressService struct {
	resultRepo repository.ResultRepository
}

// NewProgressService creates a new ProgressService
func NewProgressService(resultRepo repository.ResultRepository) ProgressService {
	return &progressService{resultRepo: resultRepo}
}

func (s *progressService) GetProgress(ctx context.Context, sessionID string, bookID int64) (*models.Progress, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing progress: book_id=%d", bookID)

	counts, err := s.resultRepo.ProgressCounts(ctx, sessionID, bookID)
	if err != nil {
		log.Error("failed to compute progress counts: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// A book with no extracts reports exactly 0, never a division result.
	var percent float64
	if counts.TotalExtracts > 0 {
		percent = roundTo2(float64(counts.CompletedExtracts) / float64(counts.TotalExtracts) * 100)
	}

	return &models.Progress{
		BookID:            bookID,
		MaxExtractNo:      counts.MaxExtractNo,
		CompletedExtracts: counts.CompletedExtracts,
		TotalExtracts:     counts.TotalExtracts,
		ProgressPercent:   percent,
	}, nil
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
