package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/triviaforge/trivia-api/internal/config"
	"github.com/triviaforge/trivia-api/internal/httperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /questions. An empty page, including any page past
// the available data, is 404.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	result, err := h.service.ListPage(r.Context(), PageParam(r))
	if err != nil {
		if !errors.Is(err, httperr.ErrNotFound) {
			log.WithError(err).Error("Failed to serve question page")
		}
		httperr.RespondNotFound(w)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"questions":       result.Questions,
		"categories":      result.Categories,
		"total_questions": result.Total,
	})
}

// Delete handles DELETE /questions/{id}. Every failure on this
// endpoint surfaces as 422 — including a missing id, whose not-found
// signal is deliberately masked here to keep the historical contract.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httperr.RespondUnprocessable(w)
		return
	}

	result, err := h.service.Delete(r.Context(), id, PageParam(r))
	if err != nil {
		log.WithError(err).WithField("question_id", id).Warn("Delete failed")
		httperr.RespondUnprocessable(w)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         result.Deleted,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// Create handles POST /questions, dispatching on the presence of a
// non-empty searchTerm. Failures in either mode surface as 422.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body")
		httperr.RespondUnprocessable(w)
		return
	}

	if req.IsSearch() {
		matches, err := h.service.Search(r.Context(), *req.SearchTerm)
		if err != nil {
			httperr.RespondUnprocessable(w)
			return
		}
		config.JSON(w, http.StatusOK, map[string]interface{}{
			"success":         true,
			"questions":       matches,
			"total_questions": len(matches),
		})
		return
	}

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.WithError(err).Warn("Create failed")
		httperr.RespondUnprocessable(w)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"created":          result.Created,
		"questions":        result.Questions,
		"question_created": result.QuestionCreated,
		"total_questions":  result.Total,
	})
}

// ListByCategory handles GET /categories/{categoryID}/questions.
// Every failure on this endpoint surfaces as 404. The count key is
// total_question, singular, which the frontend relies on.
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		httperr.RespondNotFound(w)
		return
	}

	questions, err := h.service.ListByCategory(r.Context(), categoryID)
	if err != nil {
		if !errors.Is(err, httperr.ErrNotFound) {
			log.WithError(err).Error("Failed to list questions by category")
		}
		httperr.RespondNotFound(w)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        questions,
		"total_question":   len(questions),
		"current_category": categoryID,
	})
}
