package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmer-assist/backend/pkg/health"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(checker *health.Checker) *gin.Engine {
	handler := NewHealthHandler(checker)
	r := gin.New()
	r.GET("/health", handler.Health)
	return r
}

func TestHealthEndpointHealthy(t *testing.T) {
	checker := health.NewChecker(testLogger(), time.Minute)
	checker.RegisterDatabaseCheck(func() error { return nil })
	checker.RunChecks()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	newHealthRouter(checker).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "farmer-assist", resp.Service)
}

func TestHealthEndpointDatabaseDown(t *testing.T) {
	checker := health.NewChecker(testLogger(), time.Minute)
	checker.RegisterDatabaseCheck(func() error { return assert.AnError })
	checker.RunChecks()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	newHealthRouter(checker).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}
