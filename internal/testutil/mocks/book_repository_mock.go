package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wblg/bookquiz/internal/models"
)

// MockBookRepository is a mock implementation of repository.BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) ListWithProgress(ctx context.Context, sessionID string) ([]models.BookOverview, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookOverview), args.Error(1)
}

func (m *MockBookRepository) Get(ctx context.Context, bookID int64) (*models.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Book), args.Error(1)
}

func (m *MockBookRepository) ListByTitle(ctx context.Context) ([]models.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Book), args.Error(1)
}

func (m *MockBookRepository) ExtractsForBook(ctx context.Context, bookID int64) ([]models.Extract, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Extract), args.Error(1)
}

func (m *MockBookRepository) ExtractsAll(ctx context.Context) ([]models.Extract, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Extract), args.Error(1)
}
