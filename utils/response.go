package utils

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// WriteJSON encodes v as the response body with the given status
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Log.Errorf("encode response: %v", err)
	}
}

// WriteError replies with {error: true, message}
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: true, Message: message})
}

// DecodeJSON decodes the request body into v and runs struct validation on it
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return validate.Struct(v)
}

// ValidateVar checks a single value against a validator tag such as "required,email"
func ValidateVar(v interface{}, tag string) error {
	return validate.Var(v, tag)
}
