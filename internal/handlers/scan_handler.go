// internal/handlers/scan_handler.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/attendance"
)

type ScanHandler struct {
	Verifier *attendance.Verifier
}

func NewScanHandler(v *attendance.Verifier) *ScanHandler { return &ScanHandler{Verifier: v} }

type ScanReq struct {
	Payload string `json:"payload" binding:"required"`
}

// Scan validates a decoded QR payload and records the employee's check-in
// (or check-out, on the second successful scan of the day).
func (h *ScanHandler) Scan(c *gin.Context) {
	var req ScanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body", "detail": err.Error()})
		return
	}

	employeeID := c.GetUint("employee_id")

	result, err := h.Verifier.HandleScan(c.Request.Context(), req.Payload, employeeID)
	if err != nil {
		status := scanErrorStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	msg := fmt.Sprintf("checked in, delay %d minutes", result.DelayMinutes)
	if result.Action == attendance.ActionCheckedOut {
		msg = fmt.Sprintf("checked out, %.2f hours worked", result.Record.TotalWorkHours)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": msg,
		"result":  result,
	})
}

// scanErrorStatus keeps every failure kind distinguishable on the wire.
func scanErrorStatus(err error) int {
	switch {
	case errors.Is(err, attendance.ErrInvalidPayloadFormat):
		return http.StatusBadRequest
	case errors.Is(err, attendance.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, attendance.ErrTokenMismatch):
		return http.StatusForbidden
	case errors.Is(err, attendance.ErrSessionExpired):
		return http.StatusGone
	case errors.Is(err, attendance.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
