package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a fresh id for correlating a request's log lines.
func GenerateRequestID() string {
	return uuid.NewString()
}
