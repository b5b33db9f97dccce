package api

import "net/http"

// handleHealth is a liveness probe; it never touches the database.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}
