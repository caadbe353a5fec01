// Package response holds the JSON envelope every handler replies with.
// Errors always serialize as {"error": ..., "details": ...} so clients
// can treat failures uniformly across endpoints.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the wire shape of a failed request. Details carries
// optional context such as a field-error map or an underlying message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status. A nil data
// writes only the status line, which is what 204 No Content needs.
// Encoding failures are logged; the status has already gone out.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes an ErrorResponse with the given status. Pass the
// user-facing message first and any supporting context (an error string,
// a validation field map, or nil) as details.
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
