package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/EngAhmedmetwally/HRSystemnew/internal/attendance"
	"github.com/EngAhmedmetwally/HRSystemnew/internal/models"
)

type stubSessionStore struct {
	session *models.AttendanceSession
	getErr  error
}

func (s *stubSessionStore) Create(_ context.Context, sess *models.AttendanceSession) (string, error) {
	return sess.ID, nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*models.AttendanceSession, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.session != nil && s.session.ID == id {
		return s.session, nil
	}
	return nil, nil
}

type stubWorkDayStore struct {
	existing *models.WorkDayRecord
	saveErr  error
}

func (s *stubWorkDayStore) Find(context.Context, uint, string) (*models.WorkDayRecord, error) {
	return s.existing, nil
}

func (s *stubWorkDayStore) Save(context.Context, *models.WorkDayRecord) error {
	return s.saveErr
}

func scanRequest(t *testing.T, v *attendance.Verifier, authed bool, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewScanHandler(v)
	r.POST("/scan", func(c *gin.Context) {
		if authed {
			c.Set("employee_id", uint(7))
		}
		h.Scan(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scan", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// Every scan failure kind must answer with its own HTTP status so clients
// can tell a forged code from an expired one from a backend fault.
func TestScanStatusPerErrorKind(t *testing.T) {
	now := time.Date(2024, 7, 22, 9, 0, 0, 0, time.UTC)
	doneAt := now.Add(-time.Hour)

	liveSession := func() *models.AttendanceSession {
		return &models.AttendanceSession{
			ID:           "sess-1",
			SessionLabel: "main-entrance",
			Kind:         models.KindAttendance,
			Token:        "secret-token",
			IssuedAt:     now.Add(-2 * time.Second),
			ValidUntil:   now.Add(3 * time.Second),
		}
	}

	cases := []struct {
		name       string
		body       string
		sessions   *stubSessionStore
		workDays   *stubWorkDayStore
		authed     bool
		wantStatus int
	}{
		{
			name:       "check-in success",
			body:       `{"payload":"sess-1|secret-token"}`,
			sessions:   &stubSessionStore{session: liveSession()},
			workDays:   &stubWorkDayStore{},
			authed:     true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed payload",
			body:       `{"payload":"no-pipe-here"}`,
			sessions:   &stubSessionStore{},
			workDays:   &stubWorkDayStore{},
			authed:     true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "session not found",
			body:       `{"payload":"missing|secret-token"}`,
			sessions:   &stubSessionStore{session: liveSession()},
			workDays:   &stubWorkDayStore{},
			authed:     true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "token mismatch",
			body:       `{"payload":"sess-1|forged"}`,
			sessions:   &stubSessionStore{session: liveSession()},
			workDays:   &stubWorkDayStore{},
			authed:     true,
			wantStatus: http.StatusForbidden,
		},
		{
			name: "session expired",
			body: `{"payload":"sess-1|secret-token"}`,
			sessions: &stubSessionStore{session: &models.AttendanceSession{
				ID:         "sess-1",
				Token:      "secret-token",
				Kind:       models.KindAttendance,
				IssuedAt:   now.Add(-10 * time.Second),
				ValidUntil: now.Add(-5 * time.Second),
			}},
			workDays:   &stubWorkDayStore{},
			authed:     true,
			wantStatus: http.StatusGone,
		},
		{
			name:       "not authenticated",
			body:       `{"payload":"sess-1|secret-token"}`,
			sessions:   &stubSessionStore{session: liveSession()},
			workDays:   &stubWorkDayStore{},
			authed:     false,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "already checked out",
			body:     `{"payload":"sess-1|secret-token"}`,
			sessions: &stubSessionStore{session: liveSession()},
			workDays: &stubWorkDayStore{existing: &models.WorkDayRecord{
				EmployeeID:   7,
				WorkDate:     "2024-07-22",
				CheckInTime:  now.Add(-2 * time.Hour),
				CheckOutTime: &doneAt,
			}},
			authed:     true,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "storage read failure",
			body:       `{"payload":"sess-1|secret-token"}`,
			sessions:   &stubSessionStore{getErr: errors.New("connection refused")},
			workDays:   &stubWorkDayStore{},
			authed:     true,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "storage write failure",
			body:       `{"payload":"sess-1|secret-token"}`,
			sessions:   &stubSessionStore{session: liveSession()},
			workDays:   &stubWorkDayStore{saveErr: errors.New("disk full")},
			authed:     true,
			wantStatus: http.StatusInternalServerError,
		},
	}

	seen := map[int]string{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := attendance.NewVerifier(tc.sessions, tc.workDays, func(context.Context) (*models.SystemSettings, error) {
				return &models.SystemSettings{
					ID:                 1,
					CheckInTime:        "09:00",
					CheckOutTime:       "17:00",
					GracePeriodMinutes: 15,
					QRValiditySeconds:  5,
				}, nil
			})
			v.Now = func() time.Time { return now }

			w := scanRequest(t, v, tc.authed, tc.body)
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if tc.wantStatus == http.StatusOK {
				return
			}
			// failure kinds must stay distinguishable; the two storage
			// faults legitimately share 500
			if prev, dup := seen[tc.wantStatus]; dup && tc.wantStatus != http.StatusInternalServerError {
				t.Fatalf("status %d reused by %q and %q", tc.wantStatus, prev, tc.name)
			}
			seen[tc.wantStatus] = tc.name
		})
	}
}

func TestScanRejectsMissingBody(t *testing.T) {
	v := attendance.NewVerifier(&stubSessionStore{}, &stubWorkDayStore{}, func(context.Context) (*models.SystemSettings, error) {
		return &models.SystemSettings{}, nil
	})
	w := scanRequest(t, v, true, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for empty payload", w.Code)
	}
}
