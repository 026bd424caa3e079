package auth

import (
	"errors"
	"net/http"
	"strings"
)

// HeaderAPIKey is the primary header carrying the static key.
const HeaderAPIKey = "x-api-key"

var ErrMissingAPIKey = errors.New("api key header is missing")

// ExtractAPIKey reads the caller's key from x-api-key, falling back to an
// "Authorization: Bearer {key}" header.
func ExtractAPIKey(r *http.Request) (string, error) {
	if key := strings.TrimSpace(r.Header.Get(HeaderAPIKey)); key != "" {
		return key, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingAPIKey
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("authorization header format must be 'Bearer {key}'")
	}

	return parts[1], nil
}
