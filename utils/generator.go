package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewAccessToken returns the hex form of a fresh random UUID. Tokens are the
// sole capability needed to reach a user's exam, and double as generated
// names for uploaded solution files.
func NewAccessToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
