package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	m := NewMetrics()
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/hr/members", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTeapot, rec.Code)

	body := scrape(t, m)
	assert.Contains(t, body, `meridian_http_requests_total{code="418",route="/hr/members"} 1`)
}

func TestSaveAndAuditCounters(t *testing.T) {
	m := NewMetrics()
	m.ObserveSave("members", "saved")
	m.ObserveSave("members", "failed")
	m.AddAuditEntries("members", 3)
	m.AddAuditEntries("members", 0)

	body := scrape(t, m)
	assert.Contains(t, body, `meridian_saves_total{dataset="members",outcome="saved"} 1`)
	assert.Contains(t, body, `meridian_saves_total{dataset="members",outcome="failed"} 1`)
	assert.Contains(t, body, `meridian_audit_entries_total{dataset="members"} 3`)
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveSave("members", "saved")
	m.AddAuditEntries("members", 1)

	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return strings.TrimSpace(rec.Body.String())
}
