// internal/handlers/anomaly_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/anomaly"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
)

type AnomalyHandler struct {
	DB    *gorm.DB
	Judge anomaly.Judge
}

func NewAnomalyHandler(db *gorm.DB, judge anomaly.Judge) *AnomalyHandler {
	return &AnomalyHandler{DB: db, Judge: judge}
}

type AnomalyReq struct {
	EmployeeID  uint   `json:"employee_id" binding:"required"`
	ClockInTime string `json:"clock_in_time" binding:"required"`
	Location    string `json:"location"`
}

type historyEntry struct {
	Date     string `json:"date"`
	ClockIn  string `json:"clockIn"`
	ClockOut string `json:"clockOut,omitempty"`
}

// Check forwards one attendance record plus recent history to the external
// judge. Purely advisory: nothing on the scan path waits for this.
func (h *AnomalyHandler) Check(c *gin.Context) {
	var req AnomalyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	var days []models.WorkDayRecord
	if err := h.DB.Where("employee_id = ?", req.EmployeeID).
		Order("work_date desc").Limit(14).Find(&days).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "load history failed"})
		return
	}

	history := make([]historyEntry, 0, len(days))
	for _, day := range days {
		entry := historyEntry{
			Date:    day.WorkDate,
			ClockIn: day.CheckInTime.Format("15:04"),
		}
		if day.CheckOutTime != nil {
			entry.ClockOut = day.CheckOutTime.Format("15:04")
		}
		history = append(history, entry)
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encode history failed"})
		return
	}

	result, err := h.Judge.Detect(c.Request.Context(), anomaly.Input{
		EmployeeID:        strconv.FormatUint(uint64(req.EmployeeID), 10),
		ClockInTime:       req.ClockInTime,
		Location:          req.Location,
		AttendanceHistory: string(historyJSON),
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "anomaly judge unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"is_anomaly": result.IsAnomaly,
		"reason":     result.Reason,
		"checked_at": time.Now(),
	})
}
