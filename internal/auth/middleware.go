package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"ms-attendance/internal/logger"
	"ms-attendance/internal/utils"
)

// Middleware gates routes behind the static API key. An empty expectedKey
// means the server is misconfigured and every request fails with 500.
func Middleware(expectedKey string, log *logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Discard()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expectedKey == "" {
				log.Error("AUTH", "API_KEY not configured, rejecting gated request")
				utils.WriteError(w, http.StatusInternalServerError, "API key not configured on server")
				return
			}

			key, err := ExtractAPIKey(r)
			if err != nil {
				log.LogSecurity("UNAUTHORIZED", fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, err))
				utils.WriteError(w, http.StatusUnauthorized, "Invalid API key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(key), []byte(expectedKey)) != 1 {
				log.LogSecurity("UNAUTHORIZED", fmt.Sprintf("%s %s: key mismatch", r.Method, r.URL.Path))
				utils.WriteError(w, http.StatusUnauthorized, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
