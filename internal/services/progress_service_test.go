package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/services"
	"github.com/wblg/bookquiz/internal/testutil/mocks"
)

func TestGetProgress_RoundsToTwoDecimals(t *testing.T) {
	repo := new(mocks.MockResultRepository)
	repo.On("ProgressCounts", context.Background(), "sess-1", int64(1)).
		Return(&models.ProgressCounts{MaxExtractNo: 2, CompletedExtracts: 1, TotalExtracts: 3}, nil)

	svc := services.NewProgressService(repo)
	progress, err := svc.GetProgress(context.Background(), "sess-1", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), progress.BookID)
	assert.Equal(t, 2, progress.MaxExtractNo)
	assert.Equal(t, 1, progress.CompletedExtracts)
	assert.Equal(t, 3, progress.TotalExtracts)
	assert.Equal(t, 33.33, progress.ProgressPercent)
	repo.AssertExpectations(t)
}

func TestGetProgress_ZeroTotalIsExactlyZero(t *testing.T) {
	repo := new(mocks.MockResultRepository)
	repo.On("ProgressCounts", context.Background(), "sess-1", int64(7)).
		Return(&models.ProgressCounts{}, nil)

	svc := services.NewProgressService(repo)
	progress, err := svc.GetProgress(context.Background(), "sess-1", 7)
	require.NoError(t, err)

	assert.Zero(t, progress.ProgressPercent)
	assert.Zero(t, progress.TotalExtracts)
}

func TestGetProgress_FullCompletion(t *testing.T) {
	repo := new(mocks.MockResultRepository)
	repo.On("ProgressCounts", context.Background(), "sess-1", int64(3)).
		Return(&models.ProgressCounts{MaxExtractNo: 4, CompletedExtracts: 4, TotalExtracts: 4}, nil)

	svc := services.NewProgressService(repo)
	progress, err := svc.GetProgress(context.Background(), "sess-1", 3)
	require.NoError(t, err)

	assert.Equal(t, 100.0, progress.ProgressPercent)
}
