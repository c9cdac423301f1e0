// internal/qr/store.go
package qr

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
)

// SessionStore is the only coupling between the QR issuer and the scan
// verifier: the issuer creates sessions, scanners fetch them by ID.
// Get returns (nil, nil) when no session exists under that ID.
type SessionStore interface {
	Create(ctx context.Context, s *models.AttendanceSession) (string, error)
	Get(ctx context.Context, id string) (*models.AttendanceSession, error)
}

type GormSessionStore struct {
	DB *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore { return &GormSessionStore{DB: db} }

func (st *GormSessionStore) Create(ctx context.Context, s *models.AttendanceSession) (string, error) {
	s.ID = uuid.NewString()
	if err := st.DB.WithContext(ctx).Create(s).Error; err != nil {
		return "", err
	}
	return s.ID, nil
}

func (st *GormSessionStore) Get(ctx context.Context, id string) (*models.AttendanceSession, error) {
	var s models.AttendanceSession
	err := st.DB.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
