package category

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	categories []Category
}

func (r *fakeRepository) FindAll() ([]Category, error) {
	return r.categories, nil
}

func (r *fakeRepository) Exists(id int) (bool, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func newTestRouter(repo Repository) http.Handler {
	h := NewHandler(NewService(repo))

	r := chi.NewRouter()
	r.Mount("/categories", Routes(h))
	return r
}

func get(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestListCategoriesMapping(t *testing.T) {
	router := newTestRouter(&fakeRepository{categories: []Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}})

	rec, body := get(t, router, "/categories")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{
		"1": "Science",
		"2": "Art",
	}, body["categories"])
}

func TestListCategoriesEmptyIsNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	rec, body := get(t, router, "/categories")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(404), body["error"])
	assert.Equal(t, "resource not found", body["message"])
}
