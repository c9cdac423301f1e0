// internal/storage/db.go
package storage

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
)

func OpenDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Africa/Cairo",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	if err := db.AutoMigrate(
		&models.Employee{},
		&models.AttendanceSession{},
		&models.WorkDayRecord{},
		&models.SystemSettings{},
		&models.PayrollRecord{},
	); err != nil {
		log.Fatal("failed migrate: ", err)
	}

	return db
}

// EnsureDefaultSettings seeds the single settings row on first boot.
func EnsureDefaultSettings(db *gorm.DB) {
	var count int64
	db.Model(&models.SystemSettings{}).Count(&count)
	if count > 0 {
		return
	}

	s := models.SystemSettings{
		ID:                 1,
		CheckInTime:        "09:00",
		CheckOutTime:       "17:00",
		GracePeriodMinutes: 15,
		QRValiditySeconds:  5,
	}
	if err := s.SetLevels([]models.DeductionLevel{
		{ThresholdMinutes: 16, Type: models.DeductMinutes, Value: 30},
		{ThresholdMinutes: 60, Type: models.DeductHours, Value: 1},
		{ThresholdMinutes: 120, Type: models.DeductHours, Value: 2},
	}); err != nil {
		log.Fatal("failed to encode default deduction levels: ", err)
	}
	if err := db.Create(&s).Error; err != nil {
		log.Fatal("failed to seed settings: ", err)
	}
}

// LoadSettings fetches the policy row the issuer and verifier read from.
func LoadSettings(db *gorm.DB) (*models.SystemSettings, error) {
	var s models.SystemSettings
	if err := db.Where("id = ?", 1).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
