package services

import (
	"context"

	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

// CatalogService handles book catalog queries
type CatalogService interface {
	// ListBooks returns all books ordered by id with chapter counts. sessionID
	// may be empty, in which case every completed count is 0.
	ListBooks(ctx context.Context, sessionID string) ([]models.BookOverview, error)
}

type catalogService struct {
	bookRepo repository.BookRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(bookRepo repository.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

func (s *catalogService) ListBooks(ctx context.Context, sessionID string) ([]models.BookOverview, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing catalog: with_session=%t", sessionID != "")

	books, err := s.bookRepo.ListWithProgress(ctx, sessionID)
	if err != nil {
		log.Error("failed to list books: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return books, nil
}
