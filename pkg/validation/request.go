package validation

import (
	"bytes"
	"encoding/json"
	"errors"
)

// IsJSONObject reports whether body is a well-formed JSON object. An empty
// body, a bare scalar, an array, or literal null all fail the check: both
// endpoints require a structured object before doing any work.
func IsJSONObject(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}

// ValidateMessage validates a chat message
func ValidateMessage(message string) error {
	if message == "" {
		return errors.New("message is required")
	}
	return nil
}
