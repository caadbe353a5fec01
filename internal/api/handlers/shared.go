package handlers

import (
	"encoding/json"
	"net/http"
)

// parseJSON decodes a request body into the given type. Unknown fields
// are rejected so typos in payloads fail loudly instead of silently
// dropping data.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}
