// internal/attendance/delay.go
package attendance

import (
	"fmt"
	"time"
)

// ComputeDelayMinutes applies the lateness policy. The deadline is the
// official check-in time-of-day plus the grace period, anchored to now's
// calendar date. Arrivals at or before the deadline count as zero delay;
// past it, the grace period itself is folded back into the reported delay
// (elapsed + grace). That fold is the documented policy, not a bug; see the
// tests pinning 09:16 -> 16 with a 15 minute grace.
func ComputeDelayMinutes(now time.Time, officialCheckIn string, gracePeriodMinutes int) (int, error) {
	official, err := time.Parse("15:04", officialCheckIn)
	if err != nil {
		return 0, fmt.Errorf("bad official check-in time %q: %w", officialCheckIn, err)
	}

	deadline := time.Date(now.Year(), now.Month(), now.Day(),
		official.Hour(), official.Minute(), 0, 0, now.Location()).
		Add(time.Duration(gracePeriodMinutes) * time.Minute)

	if !now.After(deadline) {
		return 0, nil
	}
	elapsed := int(now.Sub(deadline).Minutes())
	return elapsed + gracePeriodMinutes, nil
}

// WorkedHours splits a completed day into total and overtime hours against
// the official check-out time-of-day.
func WorkedHours(checkIn, checkOut time.Time, officialCheckOut string) (total, overtime float64) {
	total = checkOut.Sub(checkIn).Hours()
	if total < 0 {
		total = 0
	}
	official, err := time.Parse("15:04", officialCheckOut)
	if err != nil {
		return total, 0
	}
	end := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(),
		official.Hour(), official.Minute(), 0, 0, checkOut.Location())
	if checkOut.After(end) {
		overtime = checkOut.Sub(end).Hours()
	}
	return total, overtime
}
