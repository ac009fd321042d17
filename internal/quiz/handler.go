package quiz

import (
	"encoding/json"
	"net/http"

	"github.com/triviaforge/trivia-api/internal/config"
	"github.com/triviaforge/trivia-api/internal/httperr"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Play handles POST /quizzes. A missing or malformed body, or a
// missing quiz_category, is 400. An exhausted pool answers with a null
// question so the client can end the game.
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid request body")
		httperr.RespondBadRequest(w)
		return
	}
	if req.QuizCategory == nil {
		httperr.RespondBadRequest(w)
		return
	}

	next, err := h.service.Draw(r.Context(), req)
	if err != nil {
		httperr.Respond(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": next,
	})
}
