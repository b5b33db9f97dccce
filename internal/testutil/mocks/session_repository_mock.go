package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/wblg/bookquiz/internal/models"
)

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Insert(ctx context.Context, session models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Touch(ctx context.Context, token string, t time.Time) (bool, error) {
	args := m.Called(ctx, token, t)
	return args.Bool(0), args.Error(1)
}
