// internal/handlers/qr_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/qr"
)

type QRHandler struct {
	Issuer *qr.Issuer
}

func NewQRHandler(issuer *qr.Issuer) *QRHandler { return &QRHandler{Issuer: issuer} }

// Current serves the admin display: the payload to render as a QR image and
// the countdown until the next refresh.
func (h *QRHandler) Current(c *gin.Context) {
	payload, secondsLeft, ok := h.Issuer.CurrentPayload()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no active session yet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"payload":      payload,
		"seconds_left": secondsLeft,
	})
}
