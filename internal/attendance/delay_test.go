package attendance

import (
	"testing"
	"time"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 7, 22, hour, min, 0, 0, time.UTC)
}

// The grace period folds back into the reported delay once the deadline is
// crossed. 09:16 with a 15 minute grace reports 16, not 1. That is the
// shipped policy and these cases pin it.
func TestComputeDelayMinutes(t *testing.T) {
	cases := []struct {
		name  string
		now   time.Time
		want  int
		grace int
	}{
		{"well before official time", at(8, 30), 0, 15},
		{"exactly official time", at(9, 0), 0, 15},
		{"inside grace", at(9, 10), 0, 15},
		{"exactly at deadline", at(9, 15), 0, 15},
		{"one minute past deadline", at(9, 16), 16, 15},
		{"an hour late", at(10, 0), 60, 15},
		{"no grace period", at(9, 1), 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeDelayMinutes(tc.now, "09:00", tc.grace)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("delay = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputeDelayMinutesTruncates(t *testing.T) {
	now := at(9, 16).Add(45 * time.Second)
	got, err := ComputeDelayMinutes(now, "09:00", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 16 {
		t.Fatalf("delay = %d, want 16 (floor, not round)", got)
	}
}

func TestComputeDelayMinutesBadOfficialTime(t *testing.T) {
	if _, err := ComputeDelayMinutes(at(9, 0), "9 am", 15); err == nil {
		t.Fatal("want error for unparseable official time")
	}
}

func TestWorkedHours(t *testing.T) {
	checkIn := at(9, 0)

	total, overtime := WorkedHours(checkIn, at(17, 0), "17:00")
	if total != 8 || overtime != 0 {
		t.Fatalf("got total=%v overtime=%v", total, overtime)
	}

	total, overtime = WorkedHours(checkIn, at(19, 30), "17:00")
	if total != 10.5 || overtime != 2.5 {
		t.Fatalf("got total=%v overtime=%v", total, overtime)
	}

	// leaving early yields no overtime
	total, overtime = WorkedHours(checkIn, at(16, 0), "17:00")
	if total != 7 || overtime != 0 {
		t.Fatalf("got total=%v overtime=%v", total, overtime)
	}
}
