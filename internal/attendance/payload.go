// internal/attendance/payload.go
package attendance

import (
	"fmt"
	"strings"
)

// EncodePayload builds the string carried inside the QR image.
func EncodePayload(sessionID, token string) string {
	return fmt.Sprintf("%s|%s", sessionID, token)
}

// ParsePayload splits a scanned payload into session ID and token. Exactly
// two non-empty pipe-delimited fields are accepted; anything else fails
// before any storage access happens.
func ParsePayload(payload string) (sessionID, token string, err error) {
	parts := strings.Split(payload, "|")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidPayloadFormat
	}
	return parts[0], parts[1], nil
}
