// internal/anomaly/judge.go
package anomaly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Input is the contract handed to the external anomaly judge. History is a
// JSON-encoded list of past {date, clockIn, clockOut} entries.
type Input struct {
	EmployeeID        string `json:"employeeId"`
	ClockInTime       string `json:"clockInTime"`
	ClockOutTime      string `json:"clockOutTime,omitempty"`
	Location          string `json:"location,omitempty"`
	AttendanceHistory string `json:"attendanceHistory"`
}

type Result struct {
	IsAnomaly bool   `json:"isAnomaly"`
	Reason    string `json:"reason,omitempty"`
}

// Judge renders a pass/fail verdict on one attendance record. The attendance
// write path never waits on it.
type Judge interface {
	Detect(ctx context.Context, in Input) (Result, error)
}

// HTTPJudge calls a model-service endpoint that speaks the Input/Result
// JSON contract.
type HTTPJudge struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPJudge(endpoint string) *HTTPJudge {
	return &HTTPJudge{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (j *HTTPJudge) Detect(ctx context.Context, in Input) (Result, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := j.Client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("anomaly judge returned %d", resp.StatusCode)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, err
	}
	return out, nil
}
