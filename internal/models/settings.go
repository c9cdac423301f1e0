// internal/models/settings.go
package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type DeductionType string

const (
	DeductMinutes DeductionType = "MINUTES"
	DeductHours   DeductionType = "HOURS"
	DeductAmount  DeductionType = "AMOUNT"
)

// DeductionLevel is one step of the lateness penalty function: once
// DelayMinutes reaches ThresholdMinutes the level applies.
type DeductionLevel struct {
	ThresholdMinutes int           `json:"threshold_minutes"`
	Type             DeductionType `json:"type"`
	Value            float64       `json:"value"`
}

// SystemSettings is a single-row table (ID always 1) holding the attendance
// policy. The core reads it; only the settings handler writes it.
type SystemSettings struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	CheckInTime        string         `gorm:"type:varchar(5);not null" json:"check_in_time"`  // "09:00"
	CheckOutTime       string         `gorm:"type:varchar(5);not null" json:"check_out_time"` // "17:00"
	GracePeriodMinutes int            `gorm:"not null" json:"grace_period_minutes"`
	QRValiditySeconds  int            `gorm:"not null" json:"qr_validity_seconds"`
	DeductionLevels    datatypes.JSON `gorm:"type:jsonb" json:"deduction_levels"`
}

func (s *SystemSettings) Levels() ([]DeductionLevel, error) {
	if len(s.DeductionLevels) == 0 {
		return nil, nil
	}
	var levels []DeductionLevel
	if err := json.Unmarshal(s.DeductionLevels, &levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func (s *SystemSettings) SetLevels(levels []DeductionLevel) error {
	b, err := json.Marshal(levels)
	if err != nil {
		return err
	}
	s.DeductionLevels = datatypes.JSON(b)
	return nil
}
