package services

import (
	"context"

	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

// SummaryService assembles per-book chapter summaries with latest results
type SummaryService interface {
	BookSummary(ctx context.Context, sessionID string, bookID int64) (*models.BookSummary, error)
	// AllBooksSummary returns a summary for every book, ordered by title.
	AllBooksSummary(ctx context.Context, sessionID string) ([]models.BookSummary, error)
}

type summaryService struct {
	bookRepo   repository.BookRepository
	resultRepo repository.ResultRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(bookRepo repository.BookRepository, resultRepo repository.ResultRepository) SummaryService {
	return &summaryService{bookRepo: bookRepo, resultRepo: resultRepo}
}

func (s *summaryService) BookSummary(ctx context.Context, sessionID string, bookID int64) (*models.BookSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("assembling book summary: book_id=%d", bookID)

	book, err := s.bookRepo.Get(ctx, bookID)
	if err != nil {
		log.Error("failed to get book: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if book == nil {
		return nil, errors.NewNotFoundError("book", bookID)
	}

	extracts, err := s.bookRepo.ExtractsForBook(ctx, bookID)
	if err != nil {
		log.Error("failed to list extracts: %v", err)
		return nil, errors.NewInternalError(err)
	}

	latest, err := s.resultRepo.LatestPerExtract(ctx, models.ResultFilter{SessionID: sessionID, BookID: bookID})
	if err != nil {
		log.Error("failed to fetch latest results: %v", err)
		return nil, errors.NewInternalError(err)
	}

	byExtract := make(map[int64]models.GameResult, len(latest))
	for _, r := range latest {
		byExtract[r.ExtractID] = r
	}

	summary := &models.BookSummary{
		Book:     *book,
		Chapters: make([]models.ChapterSummary, 0, len(extracts)),
	}
	summary.Stats.TotalExtracts = len(extracts)
	for _, e := range extracts {
		ch := models.ChapterSummary{
			ExtractID: e.ID,
			ExtractNo: e.No,
			Title:     e.Title,
		}
		if r, ok := byExtract[e.ID]; ok {
			r := r
			ch.Completed = true
			ch.LatestResult = &r
			summary.Stats.CompletedExtracts++
		}
		summary.Chapters = append(summary.Chapters, ch)
	}
	return summary, nil
}

func (s *summaryService) AllBooksSummary(ctx context.Context, sessionID string) ([]models.BookSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("assembling all-books summary")

	books, err := s.bookRepo.ListByTitle(ctx)
	if err != nil {
		log.Error("failed to list books: %v", err)
		return nil, errors.NewInternalError(err)
	}

	extracts, err := s.bookRepo.ExtractsAll(ctx)
	if err != nil {
		log.Error("failed to list extracts: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// One batch of latest results across all books, distributed during assembly.
	latest, err := s.resultRepo.LatestPerExtract(ctx, models.ResultFilter{SessionID: sessionID})
	if err != nil {
		log.Error("failed to fetch latest results: %v", err)
		return nil, errors.NewInternalError(err)
	}

	type key struct {
		bookID    int64
		extractID int64
	}
	byExtract := make(map[key]models.GameResult, len(latest))
	for _, r := range latest {
		byExtract[key{r.BookID, r.ExtractID}] = r
	}

	summaries := make([]models.BookSummary, len(books))
	byBook := make(map[int64]int, len(books))
	for i, b := range books {
		summaries[i] = models.BookSummary{
			Book:     b,
			Chapters: make([]models.ChapterSummary, 0, 4),
		}
		byBook[b.ID] = i
	}

	for _, e := range extracts {
		i, ok := byBook[e.BookID]
		if !ok {
			// Extract referencing an unknown book is skipped.
			log.Warn("extract %d references unknown book %d, skipping", e.ID, e.BookID)
			continue
		}
		ch := models.ChapterSummary{
			ExtractID: e.ID,
			ExtractNo: e.No,
			Title:     e.Title,
		}
		if r, ok := byExtract[key{e.BookID, e.ID}]; ok {
			r := r
			ch.Completed = true
			ch.LatestResult = &r
			summaries[i].Stats.CompletedExtracts++
		}
		summaries[i].Stats.TotalExtracts++
		summaries[i].Chapters = append(summaries[i].Chapters, ch)
	}
	return summaries, nil
}
