package question

import (
	"net/http"
	"strconv"
)

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// Paginate returns the 1-indexed page of questions, at most
// QuestionsPerPage long. Out-of-range pages yield an empty slice;
// there is no upper bound on the page number.
func Paginate(questions []Question, page int) []Question {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []Question{}
	}
	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}

// PageParam reads the page query parameter, defaulting to 1 when
// absent or unparseable.
func PageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
