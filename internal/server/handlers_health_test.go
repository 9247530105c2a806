package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestHandleRoot(t *testing.T) {
	s := New("3000", nil)

	rec := doRequest(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bot is running!", rec.Body.String())
}

func TestHandleLiveness(t *testing.T) {
	s := New("3000", nil)

	rec := doRequest(t, s, "/health/live")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "uptime")
}

func TestHandleReadiness_AllChecksPass(t *testing.T) {
	checks := []HealthCheck{
		{Name: "postgres", Check: func(context.Context) error { return nil }},
	}
	s := New("3000", checks)

	rec := doRequest(t, s, "/health/ready")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ready", body["status"])
}

func TestHandleReadiness_FailingCheck(t *testing.T) {
	checks := []HealthCheck{
		{Name: "postgres", Check: func(context.Context) error { return nil }},
		{Name: "discord", Check: func(context.Context) error { return errors.New("gateway closed") }},
	}
	s := New("3000", checks)

	rec := doRequest(t, s, "/health/ready")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "discord", body["failed_check"])
	assert.Equal(t, "gateway closed", body["error"])
}

func TestHandleVersion(t *testing.T) {
	s := New("3000", nil)

	rec := doRequest(t, s, "/version")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "version")
}

func TestMetricsEndpoint(t *testing.T) {
	s := New("3000", nil)

	rec := doRequest(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
