package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bookly/bookly/config"
	"github.com/bookly/bookly/http/request"
	"github.com/bookly/bookly/http/response"
	"github.com/bookly/bookly/log"
	"github.com/bookly/bookly/model"
	"github.com/bookly/bookly/recommend"
	"github.com/bookly/bookly/store"
	"github.com/bookly/bookly/validator"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.ListBooks(&model.FindBook{})
	if err != nil {
		log.Error("Failed to list books", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	response.OK(w, r, books)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var create model.BookUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	if err := validator.ValidateBookUpsertRequest(&create); err != nil {
		log.Warn("Failed to validate book", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	book, err := h.store.CreateBook(&create)
	if err != nil {
		log.Error("Failed to create book", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	response.Created(w, r, book)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")

	var update model.BookUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	if err := validator.ValidateBookUpsertRequest(&update); err != nil {
		log.Warn("Failed to validate book", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	book, err := h.store.UpdateBook(id, &update)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			response.NotFound(w, r)
			return
		}
		log.Error("Failed to update book", zap.String("id", id), zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	response.OK(w, r, book)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id := request.RouteStringParam(r, "id")

	if err := h.store.DeleteBook(id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			response.NotFound(w, r)
			return
		}
		log.Error("Failed to delete book", zap.String("id", id), zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	response.NoContent(w, r)
}

// recommendBooks matches the catalog against the requested mood and
// genre. The genre must match exactly (case-insensitive), the mood must
// hit at least one mood tag. total_matches counts all matches even when
// the returned list is capped.
func (h *Handler) recommendBooks(w http.ResponseWriter, r *http.Request) {
	var req model.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode request body", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	if err := validator.ValidateRecommendationRequest(&req); err != nil {
		log.Warn("Failed to validate recommendation request", zap.Error(err))
		response.BadRequest(w, r, err)
		return
	}

	genreMatches, err := h.store.ListBooks(&model.FindBook{Genre: &req.Genre})
	if err != nil {
		log.Error("Failed to query books by genre", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	ranked := recommend.Rank(genreMatches, req.Mood)
	result := &model.RecommendationResponse{
		Books:        recommend.Cap(ranked, config.Opts.MaxRecommend),
		TotalMatches: len(ranked),
	}

	log.Debug("Recommendation query",
		zap.String("mood", req.Mood),
		zap.String("genre", req.Genre),
		zap.Int("total_matches", result.TotalMatches),
		zap.Int("returned", len(result.Books)))

	response.OK(w, r, result)
}

// populateBooks clears the catalog and inserts the built-in sample set.
func (h *Handler) populateBooks(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteAllBooks(); err != nil {
		log.Error("Failed to clear books", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	inserted := 0
	for _, sample := range sampleBooks {
		if _, err := h.store.CreateBook(sample); err != nil {
			log.Error("Failed to insert sample book", zap.String("title", sample.Title), zap.Error(err))
			response.ServerError(w, r, err)
			return
		}
		inserted++
	}

	response.OK(w, r, &model.PopulateResponse{
		Message:       fmt.Sprintf("Successfully populated %d sample books", inserted),
		InsertedCount: inserted,
	})
}

func (h *Handler) createStatusCheck(w http.ResponseWriter, r *http.Request) {
	var create model.StatusCheckCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if create.ClientName == "" {
		response.BadRequest(w, r, errors.New("client_name is empty"))
		return
	}

	status, err := h.store.CreateStatusCheck(&create)
	if err != nil {
		log.Error("Failed to create status check", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	response.OK(w, r, status)
}

func (h *Handler) listStatusChecks(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.store.ListStatusChecks()
	if err != nil {
		log.Error("Failed to list status checks", zap.Error(err))
		response.ServerError(w, r, err)
		return
	}

	response.OK(w, r, statuses)
}
