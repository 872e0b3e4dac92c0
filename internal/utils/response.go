package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as the response body with the given status code.
// Encoding failures after the header is written can only be logged by the
// caller's middleware, so they are ignored here.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
