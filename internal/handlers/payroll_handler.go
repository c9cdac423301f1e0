// internal/handlers/payroll_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/attendance"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/storage"
)

type PayrollHandler struct {
	DB *gorm.DB
}

func NewPayrollHandler(db *gorm.DB) *PayrollHandler { return &PayrollHandler{DB: db} }

type payrollLine struct {
	EmployeeID        uint    `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	Month             string  `json:"month"`
	DaysPresent       int     `json:"days_present"`
	TotalDelayMinutes int     `json:"total_delay_minutes"`
	BaseSalary        float64 `json:"base_salary"`
	Allowances        float64 `json:"allowances"`
	Deductions        float64 `json:"deductions"`
	NetSalary         float64 `json:"net_salary"`
}

// Report computes the month's pay per employee: lateness deductions come
// from the configured step function applied day by day.
func (h *PayrollHandler) Report(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if _, err := time.Parse("2006-01", month); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}

	lines, err := h.buildReport(month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "month": month, "data": lines})
}

// Generate persists the month's report as pending payroll rows.
func (h *PayrollHandler) Generate(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if _, err := time.Parse("2006-01", month); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}

	lines, err := h.buildReport(month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			var existing models.PayrollRecord
			if err := tx.Where("employee_id = ? AND month = ?", line.EmployeeID, month).
				First(&existing).Error; err == nil {
				continue // already generated, do not clobber paid rows
			}
			rec := models.PayrollRecord{
				EmployeeID: line.EmployeeID,
				Month:      month,
				BaseSalary: line.BaseSalary,
				Allowances: line.Allowances,
				Deductions: line.Deductions,
				NetSalary:  line.NetSalary,
				Status:     models.PayrollPending,
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generate failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "month": month, "generated": len(lines)})
}

func (h *PayrollHandler) MarkPaid(c *gin.Context) {
	idStr := strings.TrimSpace(c.Param("id"))
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad payroll id"})
		return
	}

	var rec models.PayrollRecord
	if err := h.DB.First(&rec, uint(id64)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payroll record not found"})
		return
	}

	rec.Status = models.PayrollPaid
	if err := h.DB.Save(&rec).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": rec})
}

func (h *PayrollHandler) buildReport(month string) ([]payrollLine, error) {
	settings, err := storage.LoadSettings(h.DB)
	if err != nil {
		return nil, err
	}
	levels, err := settings.Levels()
	if err != nil {
		return nil, err
	}

	var employees []models.Employee
	if err := h.DB.Where("status <> ?", models.StatusInactive).
		Order("id asc").Find(&employees).Error; err != nil {
		return nil, err
	}

	monthStart, _ := time.Parse("2006-01", month)
	from := monthStart.Format("2006-01-02")
	to := monthStart.AddDate(0, 1, 0).Format("2006-01-02")

	lines := make([]payrollLine, 0, len(employees))
	for _, emp := range employees {
		var days []models.WorkDayRecord
		if err := h.DB.Where("employee_id = ? AND work_date >= ? AND work_date < ?", emp.ID, from, to).
			Order("work_date asc").Find(&days).Error; err != nil {
			return nil, err
		}

		line := payrollLine{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Month:        month,
			DaysPresent:  len(days),
			BaseSalary:   emp.BaseSalary,
			Allowances:   emp.Allowances,
		}
		for _, day := range days {
			line.TotalDelayMinutes += day.DelayMinutes
			line.Deductions += attendance.ApplyDeduction(day.DelayMinutes, levels, emp.HourlyRate)
		}
		line.NetSalary = line.BaseSalary + line.Allowances - line.Deductions
		lines = append(lines, line)
	}
	return lines, nil
}
