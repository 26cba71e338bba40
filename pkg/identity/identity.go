package identity

import (
	"errors"
	"strings"
)

// ErrInvalidIdentity is returned when the input is empty after trimming.
var ErrInvalidIdentity = errors.New("invalid identity")

// Normalize canonicalizes a free-form display name or email into a stable
// lookup key: trimmed and lower-cased. Idempotent, so inputs differing only
// by case or surrounding whitespace collide on the same key.
func Normalize(raw string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", ErrInvalidIdentity
	}
	return key, nil
}
