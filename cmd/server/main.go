// cmd/server/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/anomaly"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/attendance"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/qr"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/routes"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/storage"
)

func main() {
	_ = godotenv.Load()

	db := storage.OpenDB()
	storage.EnsureDefaultSettings(db)

	sessions := qr.NewGormSessionStore(db)
	workDays := attendance.NewGormWorkDayStore(db)

	loadSettings := func(ctx context.Context) (*models.SystemSettings, error) {
		return storage.LoadSettings(db)
	}

	validity := func() time.Duration {
		s, err := storage.LoadSettings(db)
		if err != nil || s.QRValiditySeconds <= 0 {
			return qr.DefaultValiditySeconds * time.Second
		}
		return time.Duration(s.QRValiditySeconds) * time.Second
	}

	issuer := qr.NewIssuer(sessions, "main-entrance", validity)
	issuer.Start()
	defer issuer.Stop()

	verifier := attendance.NewVerifier(sessions, workDays, loadSettings)

	judge := anomaly.NewHTTPJudge(os.Getenv("ANOMALY_JUDGE_URL"))

	r := routes.NewRouter(db, issuer, verifier, judge)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	addr := ":" + port
	log.Printf("Server running on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
