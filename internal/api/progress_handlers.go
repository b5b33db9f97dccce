package api

import (
	"net/http"

	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
)

type progressResponse struct {
	BookID            int64   `json:"book_id"`
	MaxExtractNo      int     `json:"max_extract_no"`
	CompletedExtracts int     `json:"completed_extracts"`
	TotalExtracts     int     `json:"total_extracts"`
	ProgressPercent   float64 `json:"progress_percent"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("getting progress")

	bookID, ok := parseID(r.URL.Query().Get("book_id"))
	if !ok {
		handleError(w, r, errors.NewBadRequestError("missing or invalid book_id"))
		return
	}

	progress, err := s.ProgressService.GetProgress(r.Context(), sessionFromContext(r.Context()), bookID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, progressResponse{
		BookID:            progress.BookID,
		MaxExtractNo:      progress.MaxExtractNo,
		CompletedExtracts: progress.CompletedExtracts,
		TotalExtracts:     progress.TotalExtracts,
		ProgressPercent:   progress.ProgressPercent,
	})
}
