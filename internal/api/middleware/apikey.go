package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"

	"github.com/jdevries/stock-tracker-backend/internal/api/response"
)

// APIKeyMiddleware guards mutating endpoints behind a shared secret.
// The caller must present the INTERNAL_API_KEY value in the X-API-Key
// header; comparison is constant time.
// Returns 401 Unauthorized when the key is missing or wrong, and 500
// when the server itself has no key configured.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := os.Getenv("INTERNAL_API_KEY")
		if expected == "" {
			response.RespondError(w, http.StatusInternalServerError, "server misconfigured", "API key not configured")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
