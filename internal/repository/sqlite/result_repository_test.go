package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/wblg/bookquiz/internal/db"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
	"github.com/wblg/bookquiz/internal/repository/sqlite"
	"github.com/wblg/bookquiz/internal/testutil"
)

type ResultRepositorySuite struct {
	suite.Suite
	db    *db.DB
	repo  repository.ResultRepository
	books map[string]int64
}

func (s *ResultRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewResultRepository(s.db.DB)
	s.books = testutil.SeedCatalog(s.T(), s.db)
	testutil.SeedSession(s.T(), s.db, "sess-1")
}

func (s *ResultRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *ResultRepositorySuite) extractID(bookID int64, no int) int64 {
	var id int64
	err := s.db.QueryRow(`SELECT extract_id FROM extract WHERE book_id = ? AND extract_no = ?`, bookID, no).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *ResultRepositorySuite) insert(result models.GameResult) int64 {
	id, err := s.repo.Insert(context.Background(), result)
	s.Require().NoError(err)
	s.Require().Greater(id, int64(0))
	return id
}

func (s *ResultRepositorySuite) TestInsert() {
	bookID := s.books["Pan Tadeusz"]
	id := s.insert(models.GameResult{
		SessionID:   "sess-1",
		BookID:      bookID,
		ExtractID:   s.extractID(bookID, 1),
		PuzzleType:  "anagram",
		Score:       42,
		DurationSec: 90,
		PlayedAt:    time.Now().UTC(),
	})

	var puzzleType string
	var score int
	err := s.db.QueryRow(`SELECT puzzle_type, score FROM game_result WHERE result_id = ?`, id).Scan(&puzzleType, &score)
	s.Require().NoError(err)
	s.Assert().Equal("anagram", puzzleType)
	s.Assert().Equal(42, score)
}

func (s *ResultRepositorySuite) TestLatestPerExtract_LatestWins() {
	ctx := context.Background()
	bookID := s.books["Pan Tadeusz"]
	extractID := s.extractID(bookID, 1)

	t1 := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	s.insert(models.GameResult{SessionID: "sess-1", BookID: bookID, ExtractID: extractID, PuzzleType: "anagram", Score: 1, PlayedAt: t1})
	s.insert(models.GameResult{SessionID: "sess-1", BookID: bookID, ExtractID: extractID, PuzzleType: "anagram", Score: 2, PlayedAt: t2})

	results, err := s.repo.LatestPerExtract(ctx, models.ResultFilter{SessionID: "sess-1", BookID: bookID})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Assert().Equal(2, results[0].Score)
	s.Assert().True(results[0].PlayedAt.Equal(t2))
}

func (s *ResultRepositorySuite) TestLatestPerExtract_EqualTimestampsResolveToNewestRow() {
	ctx := context.Background()
	bookID := s.books["Pan Tadeusz"]
	extractID := s.extractID(bookID, 1)

	at := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	s.insert(models.GameResult{SessionID: "sess-1", BookID: bookID, ExtractID: extractID, PuzzleType: "anagram", Score: 1, PlayedAt: at})
	second := s.insert(models.GameResult{SessionID: "sess-1", BookID: bookID, ExtractID: extractID, PuzzleType: "anagram", Score: 2, PlayedAt: at})

	results, err := s.repo.LatestPerExtract(ctx, models.ResultFilter{SessionID: "sess-1", BookID: bookID})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Assert().Equal(second, results[0].ID)
}

func (s *ResultRepositorySuite) TestLatestPerExtract_FilterByBook() {
	ctx := context.Background()
	tadeusz := s.books["Pan Tadeusz"]
	quoVadis := s.books["Quo Vadis"]
	now := time.Now().UTC()

	s.insert(models.GameResult{SessionID: "sess-1", BookID: tadeusz, ExtractID: s.extractID(tadeusz, 1), PuzzleType: "anagram", PlayedAt: now})
	s.insert(models.GameResult{SessionID: "sess-1", BookID: quoVadis, ExtractID: s.extractID(quoVadis, 1), PuzzleType: "quiz", PlayedAt: now})

	results, err := s.repo.LatestPerExtract(ctx, models.ResultFilter{SessionID: "sess-1", BookID: tadeusz})
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Assert().Equal(tadeusz, results[0].BookID)

	// Unfiltered, both books appear.
	results, err = s.repo.LatestPerExtract(ctx, models.ResultFilter{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Assert().Len(results, 2)

	// Scoped to the session.
	results, err = s.repo.LatestPerExtract(ctx, models.ResultFilter{SessionID: "other"})
	s.Require().NoError(err)
	s.Assert().Empty(results)
}

func (s *ResultRepositorySuite) TestProgressCounts() {
	ctx := context.Background()
	bookID := s.books["Pan Tadeusz"]

	// One completed extract (extract_no 2) out of three.
	s.insert(models.GameResult{
		SessionID:  "sess-1",
		BookID:     bookID,
		ExtractID:  s.extractID(bookID, 2),
		PuzzleType: "anagram",
		PlayedAt:   time.Now().UTC(),
	})

	counts, err := s.repo.ProgressCounts(ctx, "sess-1", bookID)
	s.Require().NoError(err)
	s.Assert().Equal(2, counts.MaxExtractNo)
	s.Assert().Equal(1, counts.CompletedExtracts)
	s.Assert().Equal(3, counts.TotalExtracts)
}

func (s *ResultRepositorySuite) TestProgressCounts_NoResults() {
	ctx := context.Background()

	counts, err := s.repo.ProgressCounts(ctx, "sess-1", s.books["Pan Tadeusz"])
	s.Require().NoError(err)
	s.Assert().Equal(0, counts.MaxExtractNo)
	s.Assert().Equal(0, counts.CompletedExtracts)
	s.Assert().Equal(3, counts.TotalExtracts)

	// A book with no extracts reports zero totals.
	counts, err = s.repo.ProgressCounts(ctx, "sess-1", s.books["Lalka"])
	s.Require().NoError(err)
	s.Assert().Equal(0, counts.TotalExtracts)
}

func TestResultRepositorySuite(t *testing.T) {
	suite.Run(t, new(ResultRepositorySuite))
}
