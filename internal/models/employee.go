package models

import "time"

type EmployeeRole string
type EmployeeStatus string

const (
	RoleAdmin    EmployeeRole = "ADMIN"
	RoleEmployee EmployeeRole = "EMPLOYEE"

	StatusActive   EmployeeStatus = "ACTIVE"
	StatusOnLeave  EmployeeStatus = "ON_LEAVE"
	StatusInactive EmployeeStatus = "INACTIVE"
)

type Employee struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Role       EmployeeRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status     EmployeeStatus `gorm:"type:varchar(20);not null" json:"status"`
	FullName   string         `gorm:"not null" json:"full_name"`
	Email      string         `gorm:"uniqueIndex;not null" json:"email"`
	Phone      string         `json:"phone"`
	Department string         `json:"department"`
	JobTitle   string         `json:"job_title"`

	PasswordHash string `gorm:"not null" json:"-"`

	TOTPSecret  string `json:"-"`
	TOTPEnabled bool   `gorm:"not null;default:false" json:"totp_enabled"`

	BaseSalary float64 `gorm:"not null;default:0" json:"base_salary"`
	Allowances float64 `gorm:"not null;default:0" json:"allowances"`
	HourlyRate float64 `gorm:"not null;default:0" json:"hourly_rate"`

	FailedLoginCount int        `gorm:"not null;default:0" json:"-"`
	LockoutLevel     int        `gorm:"not null;default:0" json:"-"`
	LockoutUntil     *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
