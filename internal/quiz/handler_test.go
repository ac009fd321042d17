package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triviaforge/trivia-api/internal/question"
)

type fakeQuestionSource struct {
	questions []question.Question
}

func (s *fakeQuestionSource) FindAllOrdered() ([]question.Question, error) {
	return s.questions, nil
}

func (s *fakeQuestionSource) FindByCategory(category string) ([]question.Question, error) {
	var out []question.Question
	for _, q := range s.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out, nil
}

func seedQuestions() *fakeQuestionSource {
	return &fakeQuestionSource{questions: []question.Question{
		{ID: 1, Question: "q1", Answer: "a1", Category: "1", Difficulty: 1},
		{ID: 2, Question: "q2", Answer: "a2", Category: "2", Difficulty: 2},
		{ID: 3, Question: "q3", Answer: "a3", Category: "1", Difficulty: 3},
	}}
}

func newTestRouter(source *fakeQuestionSource) http.Handler {
	h := NewHandler(NewService(source))

	r := chi.NewRouter()
	r.Mount("/quizzes", Routes(h))
	return r
}

func play(t *testing.T, handler http.Handler, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/quizzes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestPlayMissingCategoryIsBadRequest(t *testing.T) {
	router := newTestRouter(seedQuestions())

	rec, body := play(t, router, `{"previous_questions":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(400), body["error"])
	assert.Equal(t, "bad request", body["message"])
}

func TestPlayMalformedBodyIsBadRequest(t *testing.T) {
	router := newTestRouter(seedQuestions())

	rec, _ := play(t, router, `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlayNullHistoryIsDeterministicFirst(t *testing.T) {
	router := newTestRouter(seedQuestions())

	// A null history ignores repetition entirely: the first question of
	// the full set comes back on every call.
	for i := 0; i < 3; i++ {
		rec, body := play(t, router, `{"previous_questions":null,"quiz_category":{"id":0}}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])

		q := body["question"].(map[string]interface{})
		assert.Equal(t, float64(1), q["id"])
	}
}

func TestPlayReturnsFirstUnseen(t *testing.T) {
	router := newTestRouter(seedQuestions())

	rec, body := play(t, router, `{"previous_questions":[1],"quiz_category":{"id":0}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	q := body["question"].(map[string]interface{})
	assert.Equal(t, float64(2), q["id"])
}

func TestPlayFiltersByCategory(t *testing.T) {
	router := newTestRouter(seedQuestions())

	rec, body := play(t, router, `{"previous_questions":[1],"quiz_category":{"id":1}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	q := body["question"].(map[string]interface{})
	assert.Equal(t, float64(3), q["id"])
	assert.Equal(t, "1", q["category"])
}

func TestPlayExhaustedPoolReturnsNullQuestion(t *testing.T) {
	router := newTestRouter(seedQuestions())

	rec, body := play(t, router, `{"previous_questions":[1,2,3],"quiz_category":{"id":0}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Nil(t, body["question"])
}

func TestPlayEmptyCategoryPoolReturnsNullQuestion(t *testing.T) {
	router := newTestRouter(seedQuestions())

	rec, body := play(t, router, `{"previous_questions":null,"quiz_category":{"id":42}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, body["question"])
}
