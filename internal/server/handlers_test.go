package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jordanvega/sentinel/internal/config"
	"github.com/jordanvega/sentinel/internal/database"
)

const testAdminKey = "test-clearance-key"

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *Server {
	t.Helper()

	cfg := &config.Config{
		Server:   config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Database: config.DatabaseConfig{Path: ":memory:"},
		Admin:    config.AdminConfig{Key: testAdminKey},
		RateLimit: config.RateLimitConfig{
			API:     config.LimitConfig{WindowMinutes: 15, Max: 1000},
			Contact: config.LimitConfig{WindowMinutes: 60, Max: 20},
		},
	}
	for _, m := range mutate {
		m(cfg)
	}

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Seed())

	return New(cfg, db, zap.NewNop())
}

func doRequest(s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.RemoteAddr = "203.0.113.7:51234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func validSubmission() string {
	return `{"name":"Jane Doe","email":"jane@example.com","message":"Interested in collaborating on SOC tooling."}`
}

func TestListProjectsShape(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var projects []map[string]any
	decodeJSON(t, rec, &projects)
	require.Len(t, projects, 5)

	p := projects[0]
	assert.Equal(t, "brute-force", p["id"])

	tools, ok := p["tools"].([]any)
	require.True(t, ok, "tools must be a parsed list, not serialized text")
	assert.Len(t, tools, 4)

	details, ok := p["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, p["scenario"], details["scenario"])
	assert.Equal(t, p["image"], details["image"])
	assert.Equal(t, p["analysis"], details["analysis"])
	assert.Equal(t, p["conclusion"], details["conclusion"])
	assert.Equal(t, p["mitigation"], details["mitigation"])
}

func TestListReports(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/reports", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var reports []database.Report
	decodeJSON(t, rec, &reports)
	require.Len(t, reports, 3)
	assert.Equal(t, "Unauthorized SSH Brute Force Attempt", reports[0].Title)
	assert.Equal(t, database.SeverityHigh, reports[0].Severity)
}

func TestGetReport(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/reports/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var r database.Report
	decodeJSON(t, rec, &r)
	assert.Equal(t, int64(1), r.ID)

	rec = doRequest(s, http.MethodGet, "/api/reports/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/reports/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadReport(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/reports/1/download", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "# Incident Report: Unauthorized SSH Brute Force Attempt")
	assert.Contains(t, rec.Body.String(), "## Lessons Learned")

	// PDF rendering needs a configured font.
	rec = doRequest(s, http.MethodGet, "/api/reports/1/download?format=pdf", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/reports/1/download?format=docx", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactsRequireAdminKey(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "missing key", headers: nil},
		{name: "wrong key", headers: map[string]string{"X-Sentinel-Key": "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(s, http.MethodGet, "/api/contacts", "", tt.headers)
			require.Equal(t, http.StatusForbidden, rec.Code)

			var body map[string]string
			decodeJSON(t, rec, &body)
			assert.Equal(t, "ACCESS_DENIED: Invalid Security Clearance", body["error"])
			assert.NotContains(t, rec.Body.String(), "email", "no row data may leak on denial")
		})
	}

	rec := doRequest(s, http.MethodGet, "/api/contacts", "", map[string]string{"X-Sentinel-Key": testAdminKey})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStatsRequireAdminKey(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/stats", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/stats", "", map[string]string{"X-Sentinel-Key": testAdminKey})
	require.Equal(t, http.StatusOK, rec.Code)

	var stats database.SiteStats
	decodeJSON(t, rec, &stats)
	assert.Equal(t, 5, stats.ProjectCount)
	assert.Equal(t, 3, stats.ReportCount)
}

func TestSubmitContactLifecycle(t *testing.T) {
	s := newTestServer(t)
	before := time.Now().UTC().Add(-time.Minute)

	rec := doRequest(s, http.MethodPost, "/api/contact", validSubmission(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var ack struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeJSON(t, rec, &ack)
	assert.True(t, ack.Success)
	assert.Equal(t, "Payload received and logged securely.", ack.Message)

	rec = doRequest(s, http.MethodGet, "/api/contacts", "", map[string]string{"X-Sentinel-Key": testAdminKey})
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []database.Contact
	decodeJSON(t, rec, &contacts)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane Doe", contacts[0].Name)
	assert.Equal(t, "jane@example.com", contacts[0].Email)
	assert.False(t, contacts[0].Timestamp.Before(before), "timestamp is server-assigned")
}

func TestSubmitContactValidationMap(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/contact",
		`{"name":"J","email":"not-an-email","message":"short"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	decodeJSON(t, rec, &body)
	assert.Equal(t, "Validation Error", body.Error)
	assert.Len(t, body.Details, 3, "every violated field is reported, not just the first")
	assert.NotEmpty(t, body.Details["name"])
	assert.NotEmpty(t, body.Details["email"])
	assert.NotEmpty(t, body.Details["message"])
}

func TestSubmitContactRejectsInvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodPost, "/api/contact", "not json at all", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactLimiterIsStricter(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 20; i++ {
		rec := doRequest(s, http.MethodPost, "/api/contact", validSubmission(), nil)
		require.Equal(t, http.StatusOK, rec.Code, "submission %d should pass", i+1)
	}

	rec := doRequest(s, http.MethodPost, "/api/contact", validSubmission(), nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code, "the 21st submission trips the contact limiter")
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Contains(t, body["error"], "Security Alert")

	// Windows are independent per endpoint group.
	rec = doRequest(s, http.MethodGet, "/api/projects", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGeneralLimiterNamesItself(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.API.Max = 2
	})

	require.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/api/projects", "", nil).Code)
	require.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/api/reports", "", nil).Code)

	rec := doRequest(s, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Contains(t, body["error"], "Too many requests from this IP")

	// The stricter contact window is untouched by general traffic.
	rec = doRequest(s, http.MethodPost, "/api/contact", validSubmission(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLimiterKeysOnForwardedAddressBehindProxy(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.TrustProxy = true
		cfg.RateLimit.Contact.Max = 1
	})

	submit := func(forwardedFor string) int {
		return doRequest(s, http.MethodPost, "/api/contact", validSubmission(),
			map[string]string{"X-Forwarded-For": forwardedFor}).Code
	}

	require.Equal(t, http.StatusOK, submit("198.51.100.1"))
	assert.Equal(t, http.StatusTooManyRequests, submit("198.51.100.1"),
		"same forwarded client shares one window")
	assert.Equal(t, http.StatusOK, submit("198.51.100.2"),
		"a different forwarded client is not affected")
}

func TestUnknownAPIRouteIs404WithoutSPA(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimitedBeforeGuard(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.API.Max = 1
	})

	require.Equal(t, http.StatusOK, doRequest(s, http.MethodGet, "/api/projects", "", nil).Code)

	// Over the limit, even a correct admin key is rejected first.
	rec := doRequest(s, http.MethodGet, "/api/contacts", "", map[string]string{"X-Sentinel-Key": testAdminKey})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestConcurrentSubmissionsRespectCeiling(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimit.Contact.Max = 5
	})

	codes := make(chan int, 10)
	for i := 0; i < 10; i++ {
		go func() {
			codes <- doRequest(s, http.MethodPost, "/api/contact", validSubmission(), nil).Code
		}()
	}

	okCount, limitedCount := 0, 0
	for i := 0; i < 10; i++ {
		switch <-codes {
		case http.StatusOK:
			okCount++
		case http.StatusTooManyRequests:
			limitedCount++
		default:
			t.Fatalf("unexpected status")
		}
	}
	assert.Equal(t, 5, okCount)
	assert.Equal(t, 5, limitedCount)
}

func TestSPAFallback(t *testing.T) {
	dist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>sentinel</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dist, "app.js"), []byte("console.log('hi')"), 0o644))

	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Web.Dist = dist
	})

	rec := doRequest(s, http.MethodGet, "/app.js", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")

	// Client-side routes fall back to the SPA shell.
	rec = doRequest(s, http.MethodGet, "/projects/brute-force", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sentinel")
}
