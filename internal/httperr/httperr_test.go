package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondMapsErrorKinds(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "not found", err: ErrNotFound, wantStatus: 404, wantMessage: "resource not found"},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", ErrNotFound), wantStatus: 404, wantMessage: "resource not found"},
		{name: "bad request", err: ErrBadRequest, wantStatus: 400, wantMessage: "bad request"},
		{name: "unprocessable", err: ErrUnprocessable, wantStatus: 422, wantMessage: "unprocessable"},
		{name: "unclassified defaults to unprocessable", err: errors.New("boom"), wantStatus: 422, wantMessage: "unprocessable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Respond(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t,
				fmt.Sprintf(`{"success":false,"error":%d,"message":%q}`, tt.wantStatus, tt.wantMessage),
				rec.Body.String())
		})
	}
}

func TestFixedBodies(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":404,"message":"resource not found"}`, rec.Body.String())
}
