package models

import "time"

type PayrollStatus string

const (
	PayrollPending PayrollStatus = "PENDING"
	PayrollPaid    PayrollStatus = "PAID"
)

// PayrollRecord is one employee's settled pay for one month ("2006-01").
type PayrollRecord struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	EmployeeID uint          `gorm:"not null;uniqueIndex:idx_payroll_employee_month" json:"employee_id"`
	Month      string        `gorm:"type:varchar(7);not null;uniqueIndex:idx_payroll_employee_month" json:"month"`
	BaseSalary float64       `gorm:"not null" json:"base_salary"`
	Allowances float64       `gorm:"not null" json:"allowances"`
	Deductions float64       `gorm:"not null" json:"deductions"`
	NetSalary  float64       `gorm:"not null" json:"net_salary"`
	Status     PayrollStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}
