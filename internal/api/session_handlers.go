package api

import (
	"net/http"

	"github.com/wblg/bookquiz/internal/logger"
)

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("creating session")

	token, err := s.SessionService.CreateSession(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, sessionResponse{SessionID: token})
}
