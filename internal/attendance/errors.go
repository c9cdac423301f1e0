// internal/attendance/errors.go
package attendance

import "errors"

// Scan failures are terminal for the attempt: each one maps to a distinct
// user-facing message and no record is written.
var (
	ErrInvalidPayloadFormat = errors.New("scanned code is not in the expected format")
	ErrSessionNotFound      = errors.New("attendance session not found")
	ErrTokenMismatch        = errors.New("invalid or forged code")
	ErrSessionExpired       = errors.New("code expired, scan the current one")
	ErrNotAuthenticated     = errors.New("not logged in")
	ErrAlreadyCheckedOut    = errors.New("attendance for today already completed")
	ErrStorageRead          = errors.New("failed to read attendance data")
	ErrStorageWrite         = errors.New("failed to save attendance record")
)
