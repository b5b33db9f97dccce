package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/wblg/bookquiz/internal/errors"
	"github.com/wblg/bookquiz/internal/logger"
	"github.com/wblg/bookquiz/internal/models"
)

// bookListItem is the catalog wire shape; the completed count key is camelCase
// for the frontend's Book interface.
type bookListItem struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Author            string `json:"author"`
	Year              int    `json:"year"`
	Genre             string `json:"genre"`
	Chapters          int    `json:"chapters"`
	CompletedChapters int    `json:"completedChapters"`
}

type bookInfo struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Genre  string `json:"genre"`
}

type bookStats struct {
	TotalExtracts     int `json:"total_extracts"`
	CompletedExtracts int `json:"completed_extracts"`
}

type chapterItem struct {
	ExtractID    int64       `json:"extract_id"`
	ExtractNo    int         `json:"extract_no"`
	Title        string      `json:"title"`
	Completed    bool        `json:"completed"`
	LatestResult *resultItem `json:"latest_result,omitempty"`
}

type resultItem struct {
	ResultID    int64     `json:"result_id"`
	BookID      int64     `json:"book_id"`
	ExtractID   int64     `json:"extract_id"`
	PuzzleType  string    `json:"puzzle_type"`
	Score       int       `json:"score"`
	DurationSec int       `json:"duration_sec"`
	PlayedAt    time.Time `json:"played_at"`
}

type bookSummaryResponse struct {
	Book     bookInfo      `json:"book"`
	Stats    bookStats     `json:"stats"`
	Chapters []chapterItem `json:"chapters"`
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("listing books")

	sessionID := sessionFromContext(r.Context())
	books, err := s.CatalogService.ListBooks(r.Context(), sessionID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	items := make([]bookListItem, 0, len(books))
	for _, b := range books {
		items = append(items, bookListItem{
			ID:                b.ID,
			Title:             b.Title,
			Author:            b.Author,
			Year:              b.Year,
			Genre:             b.Genre,
			Chapters:          b.Chapters,
			CompletedChapters: b.CompletedChapters,
		})
	}
	respondJSON(w, r, http.StatusOK, items)
}

func (s *Server) handleBookSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("getting book summary")

	bookID, ok := parseID(chi.URLParam(r, "bookID"))
	if !ok {
		handleError(w, r, errors.NewBadRequestError("invalid book_id"))
		return
	}

	summary, err := s.SummaryService.BookSummary(r.Context(), sessionFromContext(r.Context()), bookID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, toSummaryResponse(*summary))
}

func (s *Server) handleAllBooksSummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("getting all-books summary")

	summaries, err := s.SummaryService.AllBooksSummary(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	out := make([]bookSummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, toSummaryResponse(sum))
	}
	respondJSON(w, r, http.StatusOK, out)
}

func toSummaryResponse(sum models.BookSummary) bookSummaryResponse {
	resp := bookSummaryResponse{
		Book: bookInfo{
			ID:     sum.Book.ID,
			Title:  sum.Book.Title,
			Author: sum.Book.Author,
			Year:   sum.Book.Year,
			Genre:  sum.Book.Genre,
		},
		Stats: bookStats{
			TotalExtracts:     sum.Stats.TotalExtracts,
			CompletedExtracts: sum.Stats.CompletedExtracts,
		},
		Chapters: make([]chapterItem, 0, len(sum.Chapters)),
	}
	for _, ch := range sum.Chapters {
		item := chapterItem{
			ExtractID: ch.ExtractID,
			ExtractNo: ch.ExtractNo,
			Title:     ch.Title,
			Completed: ch.Completed,
		}
		if ch.LatestResult != nil {
			item.LatestResult = toResultItem(*ch.LatestResult)
		}
		resp.Chapters = append(resp.Chapters, item)
	}
	return resp
}

func toResultItem(r models.GameResult) *resultItem {
	return &resultItem{
		ResultID:    r.ID,
		BookID:      r.BookID,
		ExtractID:   r.ExtractID,
		PuzzleType:  r.PuzzleType,
		Score:       r.Score,
		DurationSec: r.DurationSec,
		PlayedAt:    r.PlayedAt,
	}
}
