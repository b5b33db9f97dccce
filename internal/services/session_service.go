package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
	"github.com/wblg/bookquiz/internal/repository"
)

// SessionService handles session lifecycle logic
type SessionService interface {
	CreateSession(ctx context.Context) (string, error)
	// TouchSession updates the session's last activity time. It returns a
	// NOT_FOUND error for unknown tokens.
	TouchSession(ctx context.Context, token string) error
}

type sessionService struct {
	sessionRepo repository.SessionRepository
}

// NewSessionService creates a new SessionService
func NewSessionService(sessionRepo repository.SessionRepository) SessionService {
	return &sessionService{sessionRepo: sessionRepo}
}

func (s *sessionService) CreateSession(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	token := uuid.NewString()
	now := time.Now().UTC()
	log.Debug("creating session: token=%s", token)

	err := s.sessionRepo.Insert(ctx, models.Session{
		SessionID:      token,
		CreatedAt:      now,
		LastActivityAt: now,
	})
	if err != nil {
		log.Error("failed to create session: %v", err)
		return "", errors.NewInternalError(err)
	}
	return token, nil
}

func (s *sessionService) TouchSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)
	log.Debug("touching session: token=%s", token)

	ok, err := s.sessionRepo.Touch(ctx, token, time.Now().UTC())
	if err != nil {
		log.Error("failed to touch session: %v", err)
		return errors.NewInternalError(err)
	}
	if !ok {
		return errors.NewNotFoundError("session", token)
	}
	return nil
}
