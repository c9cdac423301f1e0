// internal/handlers/auth_handler.go
package handlers

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/utils"
)

type AuthHandler struct {
	DB *gorm.DB
}

func NewAuthHandler(db *gorm.DB) *AuthHandler { return &AuthHandler{DB: db} }

func lockMinutes(level int) int {
	if level <= 0 {
		return 5
	}
	return 5 * (level + 1)
}

// =========================
// LOGIN
// =========================
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	// TOTPCode is required only for admins who have enabled two-factor.
	TOTPCode string `json:"totp_code"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	totpCode := strings.TrimSpace(req.TOTPCode)

	var emp models.Employee
	if err := h.DB.Where("email = ?", email).First(&emp).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if emp.Status != models.StatusActive {
		c.JSON(http.StatusForbidden, gin.H{"error": "account not active"})
		return
	}

	if emp.LockoutUntil != nil && time.Now().Before(*emp.LockoutUntil) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "locked", "until": emp.LockoutUntil})
		return
	}

	if !utils.CheckPassword(emp.PasswordHash, req.Password) {
		emp.FailedLoginCount++
		if emp.FailedLoginCount >= 5 {
			emp.LockoutLevel++
			mins := lockMinutes(emp.LockoutLevel - 1)
			t := time.Now().Add(time.Duration(mins) * time.Minute)
			emp.LockoutUntil = &t
			emp.FailedLoginCount = 0
		}
		_ = h.DB.Save(&emp).Error
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if emp.TOTPEnabled {
		if totpCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "totp required"})
			return
		}
		if !utils.VerifyTOTP(totpCode, emp.TOTPSecret) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid totp"})
			return
		}
	}

	// reset lock counters on successful login
	emp.FailedLoginCount = 0
	emp.LockoutUntil = nil
	_ = h.DB.Save(&emp).Error

	secret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"employee_id": emp.ID,
		"role":        string(emp.Role),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"token":  signed,
		"employee": gin.H{
			"id":        emp.ID,
			"role":      emp.Role,
			"full_name": emp.FullName,
			"email":     emp.Email,
		},
	})
}

// =========================
// VERIFY TOTP SETUP
// =========================
type VerifyTotpReq struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

func (h *AuthHandler) VerifyTOTPSetup(c *gin.Context) {
	var req VerifyTotpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	code := strings.TrimSpace(req.Code)

	var emp models.Employee
	if err := h.DB.Where("email = ?", email).First(&emp).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employee not found"})
		return
	}
	if emp.TOTPSecret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "totp not initialized"})
		return
	}

	if !utils.VerifyTOTP(code, emp.TOTPSecret) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid totp"})
		return
	}

	emp.TOTPEnabled = true
	if err := h.DB.Save(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "totp enabled"})
}
