package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"farmer-assist/backend/internal/adapter"
	"farmer-assist/backend/pkg/cache"
	"farmer-assist/backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLookupRouter(t *testing.T, weatherURL string) *gin.Engine {
	t.Helper()

	log := testLogger()
	store := cache.NewMemoryStore(0)
	weather := adapter.NewWeatherAdapter("key", weatherURL, store, 10*time.Minute, time.Second, log)
	market := adapter.NewMarketAdapter("", store, 30*time.Minute, time.Second, log)

	handler := NewLookupHandler(weather, market, log)

	r := gin.New()
	r.Use(errors.ErrorHandler())
	r.GET("/api/v1/weather", handler.Weather)
	r.GET("/api/v1/market", handler.Market)
	r.GET("/api/v1/crops", handler.Crops)
	return r
}

func TestWeatherEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"location": {"name": "Nagpur"},
			"current": {"temp_c": 31, "condition": {"text": "sunny"}, "humidity": 40, "wind_kph": 6}
		}`))
	}))
	defer server.Close()

	r := newLookupRouter(t, server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather?location=Nagpur", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nagpur")
	assert.Contains(t, w.Body.String(), "sunny")
}

func TestWeatherEndpointMissingLocation(t *testing.T) {
	r := newLookupRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "LOCATION_REQUIRED")
}

func TestWeatherEndpointProviderDownServesFallback(t *testing.T) {
	r := newLookupRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/weather?location=Pune", nil)
	r.ServeHTTP(w, req)

	// Provider failures degrade to advice, never to an error status
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weather service")
}

func TestMarketEndpointSingleCommodity(t *testing.T) {
	r := newLookupRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/market?commodity=wheat", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wheat")
	assert.Contains(t, w.Body.String(), "5.5")
}

func TestMarketEndpointListsAll(t *testing.T) {
	r := newLookupRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/market", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wheat")
	assert.Contains(t, w.Body.String(), "rice")
	assert.Contains(t, w.Body.String(), "cotton")
}

func TestCropsEndpoint(t *testing.T) {
	r := newLookupRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/crops?location=Pune&soil_type=black", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "season")
}

func TestCropsEndpointMissingLocation(t *testing.T) {
	r := newLookupRouter(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/crops", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
