package question

import (
	"strconv"

	"github.com/triviaforge/trivia-api/internal/httperr"
)

// CreateQuestionRequest is the POST /questions body. The endpoint is
// dual-purpose: a non-empty SearchTerm switches it into search mode
// and the other fields are ignored. Pointer fields distinguish absent
// from zero-valued fields.
type CreateQuestionRequest struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
	SearchTerm *string `json:"searchTerm"`
}

// IsSearch reports whether the request selects search mode.
func (r CreateQuestionRequest) IsSearch() bool {
	return r.SearchTerm != nil && *r.SearchTerm != ""
}

// Validate checks that all four creation fields are present.
func (r CreateQuestionRequest) Validate() error {
	if r.Question == nil || r.Answer == nil || r.Category == nil || r.Difficulty == nil {
		return httperr.ErrUnprocessable
	}
	return nil
}

// ToEntity builds the entity to insert. Validate must have passed.
func (r CreateQuestionRequest) ToEntity() Question {
	return Question{
		Question:   *r.Question,
		Answer:     *r.Answer,
		Category:   strconv.Itoa(*r.Category),
		Difficulty: *r.Difficulty,
	}
}
