// internal/models/session.go
package models

import "time"

type SessionKind string

const (
	KindAttendance SessionKind = "ATTENDANCE"
	KindCheckOut   SessionKind = "CHECKOUT" // reserved, issuer currently only mints ATTENDANCE
)

// AttendanceSession is the short-lived capability record behind one QR code.
// The issuer is its only writer; scanners read it by ID and never mutate it.
type AttendanceSession struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionLabel string      `gorm:"not null" json:"session_label"`
	Kind         SessionKind `gorm:"type:varchar(20);not null" json:"kind"`
	Token        string      `gorm:"uniqueIndex;not null" json:"-"`
	IssuedAt     time.Time   `gorm:"not null" json:"issued_at"`
	ValidUntil   time.Time   `gorm:"index;not null" json:"valid_until"`
}
