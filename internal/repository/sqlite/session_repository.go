package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new SessionRepository implementation
func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, s models.Session) error {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("inserting session: token=%s", s.SessionID)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO session (session_id, created_at, last_activity_at)
VALUES (?, ?, ?)
`, s.SessionID, s.CreatedAt, s.LastActivityAt)
	if err != nil {
		log.Error("failed to insert session: %v", err)
	}
	return err
}

func (r *sessionRepository) Touch(ctx context.Context, token string, t time.Time) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("session_repo")
	log.Debug("touching session: token=%s", token)

	res, err := r.db.ExecContext(ctx, `
UPDATE session
SET last_activity_at = ?
WHERE session_id = ?
`, t, token)
	if err != nil {
		log.Error("failed to touch session: %v", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Error("failed to read touch row count: %v", err)
		return false, err
	}
	if n == 0 {
		log.Debug("session not found: token=%s", token)
		return false, nil
	}
	return true, nil
}
