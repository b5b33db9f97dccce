package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
)

type saveResultRequest struct {
	BookID      int64      `json:"book_id"`
	ExtractID   int64      `json:"extract_id"`
	PuzzleType  string     `json:"puzzle_type"`
	Score       int        `json:"score"`
	DurationSec int        `json:"duration_sec"`
	PlayedAt    *time.Time `json:"played_at"`
}

type saveResultResponse struct {
	OK       bool  `json:"ok"`
	ResultID int64 `json:"result_id"`
}

func (s *Server) handleSaveResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("saving result")

	var req saveResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	result := models.GameResult{
		BookID:      req.BookID,
		ExtractID:   req.ExtractID,
		PuzzleType:  req.PuzzleType,
		Score:       req.Score,
		DurationSec: req.DurationSec,
	}
	if req.PlayedAt != nil {
		result.PlayedAt = *req.PlayedAt
	}

	id, err := s.ResultService.SaveResult(r.Context(), sessionFromContext(r.Context()), result)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, saveResultResponse{OK: true, ResultID: id})
}

func (s *Server) handleLatestResults(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing latest results")

	var bookID int64
	if v := r.URL.Query().Get("book_id"); v != "" {
		id, ok := parseID(v)
		if !ok {
			handleError(w, r, errors.NewBadRequestError("invalid book_id"))
			return
		}
		bookID = id
	}

	results, err := s.ResultService.LatestResults(r.Context(), sessionFromContext(r.Context()), bookID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	items := make([]resultItem, 0, len(results))
	for _, res := range results {
		items = append(items, *toResultItem(res))
	}
	respondJSON(w, r, http.StatusOK, items)
}
