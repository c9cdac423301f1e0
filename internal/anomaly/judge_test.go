package anomaly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPJudgeDetect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var in Input
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode input: %v", err)
		}
		if in.EmployeeID != "7" {
			t.Errorf("employeeId = %q", in.EmployeeID)
		}
		_ = json.NewEncoder(w).Encode(Result{IsAnomaly: true, Reason: "clock-in far from usual pattern"})
	}))
	defer srv.Close()

	judge := NewHTTPJudge(srv.URL)
	out, err := judge.Detect(context.Background(), Input{
		EmployeeID:        "7",
		ClockInTime:       "2024-07-22T03:10:00Z",
		AttendanceHistory: "[]",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.IsAnomaly || out.Reason == "" {
		t.Fatalf("result = %+v", out)
	}
}

func TestHTTPJudgeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	judge := NewHTTPJudge(srv.URL)
	if _, err := judge.Detect(context.Background(), Input{EmployeeID: "7"}); err == nil {
		t.Fatal("want error on non-200 response")
	}
}
