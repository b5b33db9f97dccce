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

type SessionRepositorySuite struct {
	suite.Suite
	db   *db.DB
	repo repository.SessionRepository
}

func (s *SessionRepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewSessionRepository(s.db.DB)
}

func (s *SessionRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *SessionRepositorySuite) TestInsertAndTouch() {
	ctx := context.Background()

	created := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	err := s.repo.Insert(ctx, models.Session{
		SessionID:      "token-1",
		CreatedAt:      created,
		LastActivityAt: created,
	})
	s.Require().NoError(err)

	touched := created.Add(5 * time.Minute)
	ok, err := s.repo.Touch(ctx, "token-1", touched)
	s.Require().NoError(err)
	s.Assert().True(ok)

	var last time.Time
	err = s.db.QueryRowContext(ctx, `SELECT last_activity_at FROM session WHERE session_id = ?`, "token-1").Scan(&last)
	s.Require().NoError(err)
	s.Assert().False(last.Before(created))
	s.Assert().True(last.Equal(touched))
}

func (s *SessionRepositorySuite) TestTouch_UnknownToken() {
	ctx := context.Background()

	ok, err := s.repo.Touch(ctx, "no-such-token", time.Now().UTC())
	s.Require().NoError(err)
	s.Assert().False(ok)
}

func (s *SessionRepositorySuite) TestInsert_DuplicateToken() {
	ctx := context.Background()

	now := time.Now().UTC()
	sess := models.Session{SessionID: "dup", CreatedAt: now, LastActivityAt: now}
	s.Require().NoError(s.repo.Insert(ctx, sess))
	s.Assert().Error(s.repo.Insert(ctx, sess))
}

func TestSessionRepositorySuite(t *testing.T) {
	suite.Run(t, new(SessionRepositorySuite))
}
