package httperr

import (
	"errors"
	"net/http"

	"github.com/triviaforge/trivia-api/internal/config"
)

// The three failure classes exposed by the API. Services return these
// (possibly wrapped); handlers classify with errors.Is and pick the
// status at their own boundary.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable")
	ErrBadRequest    = errors.New("bad request")
)

// Response is the fixed error body. The error field carries the HTTP
// status code, matching the client contract.
type Response struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

func respond(w http.ResponseWriter, status int, message string) {
	config.JSON(w, status, Response{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondNotFound writes the fixed 404 body.
func RespondNotFound(w http.ResponseWriter) {
	respond(w, http.StatusNotFound, "resource not found")
}

// RespondUnprocessable writes the fixed 422 body.
func RespondUnprocessable(w http.ResponseWriter) {
	respond(w, http.StatusUnprocessableEntity, "unprocessable")
}

// RespondBadRequest writes the fixed 400 body.
func RespondBadRequest(w http.ResponseWriter) {
	respond(w, http.StatusBadRequest, "bad request")
}

// Respond maps err to its error kind, defaulting to 422 for
// unclassified failures.
func Respond(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		RespondNotFound(w)
	case errors.Is(err, ErrBadRequest):
		RespondBadRequest(w)
	default:
		RespondUnprocessable(w)
	}
}
