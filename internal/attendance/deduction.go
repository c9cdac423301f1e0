// internal/attendance/deduction.go
package attendance

import (
	"sort"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
)

// ApplyDeduction converts a day's delay into a money amount using the
// configured step function: the highest threshold not exceeding the delay
// wins. MINUTES and HOURS levels are priced through the employee's hourly
// rate; AMOUNT levels are a flat figure.
func ApplyDeduction(delayMinutes int, levels []models.DeductionLevel, hourlyRate float64) float64 {
	if delayMinutes <= 0 || len(levels) == 0 {
		return 0
	}

	sorted := make([]models.DeductionLevel, len(levels))
	copy(sorted, levels)
	sort.Slice(sorted, func(a, b int) bool {
		return sorted[a].ThresholdMinutes < sorted[b].ThresholdMinutes
	})

	var picked *models.DeductionLevel
	for idx := range sorted {
		if delayMinutes >= sorted[idx].ThresholdMinutes {
			picked = &sorted[idx]
		}
	}
	if picked == nil {
		return 0
	}

	switch picked.Type {
	case models.DeductMinutes:
		return picked.Value * hourlyRate / 60
	case models.DeductHours:
		return picked.Value * hourlyRate
	case models.DeductAmount:
		return picked.Value
	}
	return 0
}
