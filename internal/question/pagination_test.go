package question

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeQuestions(n int) []Question {
	questions := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, Question{
			ID:         i,
			Question:   fmt.Sprintf("question %d", i),
			Answer:     fmt.Sprintf("answer %d", i),
			Category:   "1",
			Difficulty: 1,
		})
	}
	return questions
}

func TestPaginate(t *testing.T) {
	questions := makeQuestions(15)

	tests := []struct {
		name    string
		page    int
		wantLen int
		firstID int
	}{
		{name: "first page is full", page: 1, wantLen: 10, firstID: 1},
		{name: "last page is partial", page: 2, wantLen: 5, firstID: 11},
		{name: "page past the data is empty", page: 3, wantLen: 0},
		{name: "page far past the data is empty", page: 100, wantLen: 0},
		{name: "page below one clamps to first", page: 0, wantLen: 10, firstID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(questions, tt.page)
			assert.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.firstID, got[0].ID)
			}
		})
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	got := Paginate(nil, 1)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginateExactPageBoundary(t *testing.T) {
	questions := makeQuestions(20)

	assert.Len(t, Paginate(questions, 2), 10)
	assert.Empty(t, Paginate(questions, 3))
}

func TestPageParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 1},
		{query: "?page=2", want: 2},
		{query: "?page=abc", want: 1},
		{query: "?page=-5", want: 1},
		{query: "?page=0", want: 1},
	}

	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/questions"+tt.query, nil)
		assert.Equal(t, tt.want, PageParam(r), "query %q", tt.query)
	}
}
