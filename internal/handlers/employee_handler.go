// internal/handlers/employee_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/utils"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler { return &EmployeeHandler{DB: db} }

type CreateEmployeeReq struct {
	FullName   string  `json:"full_name" binding:"required"`
	Email      string  `json:"email" binding:"required"`
	Phone      string  `json:"phone"`
	Department string  `json:"department"`
	JobTitle   string  `json:"job_title"`
	Role       string  `json:"role"`
	Password   string  `json:"password" binding:"required"`
	BaseSalary float64 `json:"base_salary"`
	Allowances float64 `json:"allowances"`
	HourlyRate float64 `json:"hourly_rate"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.FullName = strings.TrimSpace(req.FullName)
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email required"})
		return
	}

	if err := utils.ValidatePasswordStrong(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.RoleEmployee
	if strings.EqualFold(req.Role, string(models.RoleAdmin)) {
		role = models.RoleAdmin
	}

	var exists models.Employee
	if err := h.DB.Where("email = ?", req.Email).First(&exists).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already used"})
		return
	}

	pwHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
		return
	}

	emp := models.Employee{
		Role:         role,
		Status:       models.StatusActive,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		Department:   strings.TrimSpace(req.Department),
		JobTitle:     strings.TrimSpace(req.JobTitle),
		PasswordHash: pwHash,
		BaseSalary:   req.BaseSalary,
		Allowances:   req.Allowances,
		HourlyRate:   req.HourlyRate,
	}

	// admins get a TOTP secret up front; they enable it via /auth/totp/verify
	var otpauth string
	if role == models.RoleAdmin {
		secret, url, err := utils.GenerateTOTPSecret("HRSystem", req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "totp failed"})
			return
		}
		emp.TOTPSecret = secret
		otpauth = url
	}

	if err := h.DB.Create(&emp).Error; err != nil {
		// the pre-check races with concurrent inserts; the unique index is
		// the real guard
		if isDuplicateEmail(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email already used"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	resp := gin.H{"status": "ok", "data": emp}
	if otpauth != "" {
		resp["otpauth"] = otpauth
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	var rows []models.Employee
	q := h.DB.Order("created_at asc")
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", strings.ToUpper(status))
	}
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": rows})
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := employeeIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad employee id"})
		return
	}
	var emp models.Employee
	if err := h.DB.First(&emp, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": emp})
}

type UpdateEmployeeReq struct {
	FullName   *string  `json:"full_name"`
	Phone      *string  `json:"phone"`
	Department *string  `json:"department"`
	JobTitle   *string  `json:"job_title"`
	Status     *string  `json:"status"`
	BaseSalary *float64 `json:"base_salary"`
	Allowances *float64 `json:"allowances"`
	HourlyRate *float64 `json:"hourly_rate"`
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := employeeIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad employee id"})
		return
	}

	var emp models.Employee
	if err := h.DB.First(&emp, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	var req UpdateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	if req.FullName != nil {
		emp.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		emp.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Department != nil {
		emp.Department = strings.TrimSpace(*req.Department)
	}
	if req.JobTitle != nil {
		emp.JobTitle = strings.TrimSpace(*req.JobTitle)
	}
	if req.Status != nil {
		status := models.EmployeeStatus(strings.ToUpper(strings.TrimSpace(*req.Status)))
		switch status {
		case models.StatusActive, models.StatusOnLeave, models.StatusInactive:
			emp.Status = status
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = *req.BaseSalary
	}
	if req.Allowances != nil {
		emp.Allowances = *req.Allowances
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = *req.HourlyRate
	}

	if err := h.DB.Save(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": emp})
}

// isDuplicateEmail reports whether an insert lost the race to the unique
// email index. Requires TranslateError on the gorm connection.
func isDuplicateEmail(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func employeeIDParam(c *gin.Context) (uint, bool) {
	idStr := strings.TrimSpace(c.Param("id"))
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id64), true
}
