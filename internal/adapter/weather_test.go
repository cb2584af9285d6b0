package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"farmer-assist/backend/pkg/cache"
	"farmer-assist/backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logger.Logger {
	cfg := logger.DefaultConfig()
	cfg.Level = "error"
	return logger.New(cfg)
}

func TestWeatherAdapterFetchesAndCaches(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Pune", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"location": {"name": "Pune"},
			"current": {"temp_c": 28, "condition": {"text": "clear"}, "humidity": 65, "wind_kph": 12}
		}`))
	}))
	defer server.Close()

	store := cache.NewMemoryStore(0)
	a := NewWeatherAdapter("key", server.URL, store, 10*time.Minute, time.Second, testLogger())

	report, err := a.Current(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Equal(t, "Pune", report.Location)
	assert.Equal(t, 28.0, report.TempC)
	assert.Equal(t, "clear", report.Condition)

	// Second lookup within the TTL must be served from cache
	report, err = a.Current(context.Background(), "Pune")
	require.NoError(t, err)
	assert.Equal(t, "clear", report.Condition)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWeatherAdapterCacheKeyNormalization(t *testing.T) {
	assert.Equal(t, weatherCacheKey("  Pune "), weatherCacheKey("pune"))
}

func TestWeatherAdapterProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	a := NewWeatherAdapter("key", server.URL, cache.NewMemoryStore(0), 10*time.Minute, time.Second, testLogger())

	_, err := a.Current(context.Background(), "Pune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 403")
}

func TestWeatherAdapterUnreachableProvider(t *testing.T) {
	a := NewWeatherAdapter("key", "http://127.0.0.1:1", cache.NewMemoryStore(0), 10*time.Minute, 200*time.Millisecond, testLogger())

	_, err := a.Current(context.Background(), "Pune")
	assert.Error(t, err)
}
