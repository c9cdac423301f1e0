package models

import "time"

// WorkDayRecord holds one employee's attendance for one calendar day.
// WorkDate is the local date in YYYY-MM-DD form; the composite unique index
// makes the check-in upsert land on a single row per employee per day.
type WorkDayRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	EmployeeID   uint       `gorm:"not null;uniqueIndex:idx_workday_employee_date" json:"employee_id"`
	WorkDate     string     `gorm:"type:date;not null;uniqueIndex:idx_workday_employee_date" json:"work_date"`
	CheckInTime  time.Time  `gorm:"not null" json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	DelayMinutes int        `gorm:"not null;default:0" json:"delay_minutes"`

	TotalWorkHours float64 `gorm:"not null;default:0" json:"total_work_hours"`
	OvertimeHours  float64 `gorm:"not null;default:0" json:"overtime_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
