// Package httputil writes JSON responses and the shared error envelope.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "lookupdesk/pkg/domain-errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	State   string `json:"state"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to a status and writes the error envelope.
// Internal failures never expose their message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	message := dErrors.Message(err)
	if code == dErrors.CodeInternal {
		message = "internal error"
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), ErrorResponse{
		State:   "error",
		Error:   string(code),
		Message: message,
	})
}
