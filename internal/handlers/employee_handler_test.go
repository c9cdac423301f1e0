package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// A non-numeric id must answer 400 before any lookup happens; the nil DB
// here guarantees the handler never reached storage.
func TestEmployeeBadIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewEmployeeHandler(nil)

	r := gin.New()
	r.GET("/employees/:id", h.Get)
	r.PATCH("/employees/:id", h.Update)

	for _, method := range []string{http.MethodGet, http.MethodPatch} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/employees/abc", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s /employees/abc: status = %d, want 400", method, w.Code)
		}
	}
}

func TestIsDuplicateEmail(t *testing.T) {
	if !isDuplicateEmail(gorm.ErrDuplicatedKey) {
		t.Fatal("bare ErrDuplicatedKey not recognized")
	}
	if !isDuplicateEmail(fmt.Errorf("insert employee: %w", gorm.ErrDuplicatedKey)) {
		t.Fatal("wrapped ErrDuplicatedKey not recognized")
	}
	if isDuplicateEmail(gorm.ErrRecordNotFound) {
		t.Fatal("unrelated gorm error treated as duplicate")
	}
}
