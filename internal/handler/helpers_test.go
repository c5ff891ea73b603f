package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/circulation"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/report"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/repository"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/testutil"
	"github.com/snnyvrz/shelfshare/apps/circulation-api/internal/validation"
)

const (
	adminEmail = "librarian@example.com"
	anaEmail   = "ana@example.com"
	benEmail   = "ben@example.com"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auditor, err := report.FromGorm(db, config.DriverSQLite)
	if err != nil {
		t.Fatalf("failed to build auditor: %v", err)
	}

	r, _ := NewRouter(RouterDeps{
		DB:        db,
		Service:   circulation.NewService(repository.NewGormUnitOfWork(db)),
		Books:     repository.NewGormBookRepository(db),
		Auditor:   auditor,
		Logger:    quietLogger(),
		StartTime: time.Now(),
		Version:   "test",
	})
	return r
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	return setupTestRouter(t, db), db
}

// doJSON sends body as JSON on behalf of email. An empty role sends no role
// header.
func doJSON(t *testing.T, r *gin.Engine, method, path, email, role string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if email != "" {
		req.Header.Set(HeaderUserEmail, email)
	}
	if role != "" {
		req.Header.Set(HeaderUserRole, role)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body=%s", err, w.Body.String())
	}
	return v
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) validation.ErrorResponse {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}
	resp := decode[validation.ErrorResponse](t, w)
	if resp.Code != code {
		t.Fatalf("expected code %q, got %q (message %q)", code, resp.Code, resp.Message)
	}
	return resp
}
