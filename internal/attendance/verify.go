// internal/attendance/verify.go
package attendance

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/qr"
)

// SettingsSource hands the verifier the current attendance policy.
type SettingsSource func(ctx context.Context) (*models.SystemSettings, error)

type ScanAction string

const (
	ActionCheckedIn  ScanAction = "CHECKED_IN"
	ActionCheckedOut ScanAction = "CHECKED_OUT"
)

type ScanResult struct {
	Action       ScanAction            `json:"action"`
	DelayMinutes int                   `json:"delay_minutes"`
	Record       *models.WorkDayRecord `json:"record"`
}

// Verifier turns a scanned QR payload into a work-day write. Validation
// runs strictly in order: parse, session lookup, token, expiry, identity,
// then the single write. Any failure stops the attempt with zero writes.
type Verifier struct {
	Sessions qr.SessionStore
	WorkDays WorkDayStore
	Settings SettingsSource
	Now      func() time.Time
}

func NewVerifier(sessions qr.SessionStore, workDays WorkDayStore, settings SettingsSource) *Verifier {
	return &Verifier{
		Sessions: sessions,
		WorkDays: workDays,
		Settings: settings,
		Now:      time.Now,
	}
}

func (v *Verifier) HandleScan(ctx context.Context, payload string, employeeID uint) (*ScanResult, error) {
	sessionID, token, err := ParsePayload(payload)
	if err != nil {
		return nil, err
	}

	session, err := v.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	// Bearer-token check, constant time.
	if subtle.ConstantTimeCompare([]byte(session.Token), []byte(token)) != 1 {
		return nil, ErrTokenMismatch
	}

	now := v.Now()
	if now.After(session.ValidUntil) {
		return nil, ErrSessionExpired
	}

	if employeeID == 0 {
		return nil, ErrNotAuthenticated
	}

	settings, err := v.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	workDate := now.Format("2006-01-02")
	existing, err := v.WorkDays.Find(ctx, employeeID, workDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}

	switch {
	case existing == nil:
		return v.checkIn(ctx, employeeID, workDate, now, settings)
	case existing.CheckOutTime == nil:
		return v.checkOut(ctx, existing, now, settings)
	default:
		return nil, ErrAlreadyCheckedOut
	}
}

func (v *Verifier) checkIn(ctx context.Context, employeeID uint, workDate string, now time.Time, settings *models.SystemSettings) (*ScanResult, error) {
	delay, err := ComputeDelayMinutes(now, settings.CheckInTime, settings.GracePeriodMinutes)
	if err != nil {
		return nil, fmt.Errorf("delay policy: %w", err)
	}

	rec := &models.WorkDayRecord{
		EmployeeID:   employeeID,
		WorkDate:     workDate,
		CheckInTime:  now,
		DelayMinutes: delay,
	}
	if err := v.WorkDays.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return &ScanResult{Action: ActionCheckedIn, DelayMinutes: delay, Record: rec}, nil
}

// checkOut is the second-scan-same-day transition: instead of overwriting
// the morning's check-in it completes the day.
func (v *Verifier) checkOut(ctx context.Context, rec *models.WorkDayRecord, now time.Time, settings *models.SystemSettings) (*ScanResult, error) {
	total, overtime := WorkedHours(rec.CheckInTime, now, settings.CheckOutTime)

	rec.CheckOutTime = &now
	rec.TotalWorkHours = total
	rec.OvertimeHours = overtime
	if err := v.WorkDays.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}

	return &ScanResult{Action: ActionCheckedOut, DelayMinutes: rec.DelayMinutes, Record: rec}, nil
}
