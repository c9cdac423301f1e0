// internal/attendance/store.go
package attendance

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
)

// WorkDayStore reads and writes per-employee per-day attendance rows.
// Find returns (nil, nil) when no row exists for that day yet.
type WorkDayStore interface {
	Find(ctx context.Context, employeeID uint, workDate string) (*models.WorkDayRecord, error)
	Save(ctx context.Context, rec *models.WorkDayRecord) error
}

type GormWorkDayStore struct {
	DB *gorm.DB
}

func NewGormWorkDayStore(db *gorm.DB) *GormWorkDayStore { return &GormWorkDayStore{DB: db} }

func (st *GormWorkDayStore) Find(ctx context.Context, employeeID uint, workDate string) (*models.WorkDayRecord, error) {
	var rec models.WorkDayRecord
	err := st.DB.WithContext(ctx).
		Where("employee_id = ? AND work_date = ?", employeeID, workDate).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (st *GormWorkDayStore) Save(ctx context.Context, rec *models.WorkDayRecord) error {
	return st.DB.WithContext(ctx).Save(rec).Error
}
