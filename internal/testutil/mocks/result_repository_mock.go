package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wblg/bookquiz/internal/models"
)

// MockResultRepository is a mock implementation of repository.ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Insert(ctx context.Context, result models.GameResult) (int64, error) {
	args := m.Called(ctx, result)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResultRepository) LatestPerExtract(ctx context.Context, filter models.ResultFilter) ([]models.GameResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GameResult), args.Error(1)
}

func (m *MockResultRepository) ProgressCounts(ctx context.Context, sessionID string, bookID int64) (*models.ProgressCounts, error) {
	args := m.Called(ctx, sessionID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressCounts), args.Error(1)
}
