package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/services"
	"github.com/wblg/bookquiz/internal/testutil/mocks"
)

func TestSaveResult_EmptyPuzzleType(t *testing.T) {
	repo := new(mocks.MockResultRepository)
	svc := services.NewResultService(repo)

	_, err := svc.SaveResult(context.Background(), "sess-1", models.GameResult{BookID: 1, ExtractID: 2})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, 400, appErr.Status)
	repo.AssertNotCalled(t, "Insert")
}

func TestSaveResult_MissingIDs(t *testing.T) {
	tests := []struct {
		name   string
		result models.GameResult
	}{
		{"missing book_id", models.GameResult{ExtractID: 2, PuzzleType: "quiz"}},
		{"missing extract_id", models.GameResult{BookID: 1, PuzzleType: "quiz"}},
		{"negative book_id", models.GameResult{BookID: -1, ExtractID: 2, PuzzleType: "quiz"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockResultRepository)
			svc := services.NewResultService(repo)

			_, err := svc.SaveResult(context.Background(), "sess-1", tt.result)
			require.Error(t, err)

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, 400, appErr.Status)
			repo.AssertNotCalled(t, "Insert")
		})
	}
}

func TestSaveResult_DefaultsPlayedAtAndSession(t *testing.T) {
	repo := new(mocks.MockResultRepository)
	repo.On("Insert", context.Background(), mock.MatchedBy(func(r models.GameResult) bool {
		return r.SessionID == "sess-1" &&
			!r.PlayedAt.IsZero() &&
			r.PlayedAt.Location() == time.UTC
	})).Return(int64(11), nil)

	svc := services.NewResultService(repo)
	id, err := svc.SaveResult(context.Background(), "sess-1", models.GameResult{
		BookID:     1,
		ExtractID:  2,
		PuzzleType: "anagram",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	repo.AssertExpectations(t)
}

func TestSaveResult_KeepsSuppliedPlayedAt(t *testing.T) {
	playedAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	repo := new(mocks.MockResultRepository)
	repo.On("Insert", context.Background(), mock.MatchedBy(func(r models.GameResult) bool {
		return r.PlayedAt.Equal(playedAt) && r.PlayedAt.Location() == time.UTC
	})).Return(int64(12), nil)

	svc := services.NewResultService(repo)
	_, err := svc.SaveResult(context.Background(), "sess-1", models.GameResult{
		BookID:     1,
		ExtractID:  2,
		PuzzleType: "anagram",
		PlayedAt:   playedAt,
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSaveResult_InsertFailure(t *testing.T) {
	repo := new(mocks.MockResultRepository)
	repo.On("Insert", context.Background(), mock.Anything).Return(int64(0), errors.New("disk full"))

	svc := services.NewResultService(repo)
	_, err := svc.SaveResult(context.Background(), "sess-1", models.GameResult{
		BookID: 1, ExtractID: 2, PuzzleType: "anagram",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Status)
}

func TestSaveResult_MissingGeneratedID(t *testing.T) {
	repo := new(mocks.MockResultRepository)
	repo.On("Insert", context.Background(), mock.Anything).Return(int64(0), nil)

	svc := services.NewResultService(repo)
	_, err := svc.SaveResult(context.Background(), "sess-1", models.GameResult{
		BookID: 1, ExtractID: 2, PuzzleType: "anagram",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}
