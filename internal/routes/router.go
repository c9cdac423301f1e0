// internal/routes/router.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/anomaly"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/attendance"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/handlers"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/middleware"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/qr"
)

func NewRouter(db *gorm.DB, issuer *qr.Issuer, verifier *attendance.Verifier, judge anomaly.Judge) *gin.Engine {
	r := gin.Default()

	authH := handlers.NewAuthHandler(db)
	empH := handlers.NewEmployeeHandler(db)
	scanH := handlers.NewScanHandler(verifier)
	qrH := handlers.NewQRHandler(issuer)
	settingsH := handlers.NewSettingsHandler(db)
	payrollH := handlers.NewPayrollHandler(db)
	anomalyH := handlers.NewAnomalyHandler(db, judge)

	r.GET("/health", handlers.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authH.Login)
		api.POST("/auth/totp/verify", authH.VerifyTOTPSetup)
	}

	authed := r.Group("/api/v1")
	authed.Use(middleware.AuthRequired())
	{
		authed.POST("/attendance/scan", scanH.Scan)
		authed.GET("/settings", settingsH.Get)
	}

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthRequired(), middleware.RequireAdmin())
	{
		admin.GET("/attendance/qr", qrH.Current)
		admin.POST("/attendance/anomaly", anomalyH.Check)

		admin.GET("/employees", empH.List)
		admin.POST("/employees", empH.Create)
		admin.GET("/employees/:id", empH.Get)
		admin.PATCH("/employees/:id", empH.Update)

		admin.PUT("/settings", settingsH.Update)

		admin.GET("/payroll/report", payrollH.Report)
		admin.POST("/payroll/generate", payrollH.Generate)
		admin.POST("/payroll/:id/pay", payrollH.MarkPaid)
	}

	return r
}
