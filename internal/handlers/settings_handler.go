// internal/handlers/settings_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/storage"
)

type SettingsHandler struct {
	DB *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler { return &SettingsHandler{DB: db} }

// clampValiditySeconds enforces the 10 second floor on configured QR
// validity windows; only the seeded default of 5s sits below it.
func clampValiditySeconds(secs int) int {
	if secs < 10 {
		return 10
	}
	return secs
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := storage.LoadSettings(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": s})
}

type UpdateSettingsReq struct {
	CheckInTime        *string                 `json:"check_in_time"`
	CheckOutTime       *string                 `json:"check_out_time"`
	GracePeriodMinutes *int                    `json:"grace_period_minutes"`
	QRValiditySeconds  *int                    `json:"qr_validity_seconds"`
	DeductionLevels    []models.DeductionLevel `json:"deduction_levels"`
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	s, err := storage.LoadSettings(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load failed"})
		return
	}

	if req.CheckInTime != nil {
		if _, err := time.Parse("15:04", *req.CheckInTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in_time must be HH:MM"})
			return
		}
		s.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		if _, err := time.Parse("15:04", *req.CheckOutTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out_time must be HH:MM"})
			return
		}
		s.CheckOutTime = *req.CheckOutTime
	}
	if req.GracePeriodMinutes != nil {
		if *req.GracePeriodMinutes < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "grace_period_minutes must be >= 0"})
			return
		}
		s.GracePeriodMinutes = *req.GracePeriodMinutes
	}
	if req.QRValiditySeconds != nil {
		s.QRValiditySeconds = clampValiditySeconds(*req.QRValiditySeconds)
	}
	if req.DeductionLevels != nil {
		for _, lvl := range req.DeductionLevels {
			switch lvl.Type {
			case models.DeductMinutes, models.DeductHours, models.DeductAmount:
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deduction type"})
				return
			}
			if lvl.ThresholdMinutes < 0 || lvl.Value < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "deduction levels must be non-negative"})
				return
			}
		}
		if err := s.SetLevels(req.DeductionLevels); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "encode levels failed"})
			return
		}
	}

	if err := h.DB.Save(s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "data": s})
}
