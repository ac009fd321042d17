package category

import (
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

// List handles GET /categories. Every failure on this endpoint
// surfaces as 404.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	categories, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Warn("No categories to list")
		httperr.RespondNotFound(w)
		return
	}

	mapping := make(map[int]string, len(categories))
	for _, c := range categories {
		mapping[c.ID] = c.Type
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": mapping,
	})
}
