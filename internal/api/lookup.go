package api

import (
	"net/http"
	"time"

	"farmer-assist/backend/internal/adapter"
	"farmer-assist/backend/internal/service"
	"farmer-assist/backend/pkg/errors"
	"farmer-assist/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LookupHandler exposes the weather, market and crop lookups directly,
// outside the chat flow, for the UI's side panels
type LookupHandler struct {
	weather *adapter.WeatherAdapter
	market  *adapter.MarketAdapter
	log     *logger.Logger
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(weather *adapter.WeatherAdapter, market *adapter.MarketAdapter, log *logger.Logger) *LookupHandler {
	return &LookupHandler{
		weather: weather,
		market:  market,
		log:     log,
	}
}

// Weather handles GET /api/v1/weather?location=
func (h *LookupHandler) Weather(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.Error(errors.NewBadRequestError("LOCATION_REQUIRED", "Location is required"))
		return
	}

	report, err := h.weather.Current(c.Request.Context(), location)
	if err != nil {
		h.log.Warn("Weather lookup failed", "location", location, "error", err.Error())
		c.JSON(http.StatusOK, gin.H{
			"location": location,
			"message":  service.FallbackReply(service.IntentWeather),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Market handles GET /api/v1/market?commodity=
func (h *LookupHandler) Market(c *gin.Context) {
	commodity := c.Query("commodity")

	if commodity == "" {
		quotes, err := h.market.ListQuotes(c.Request.Context())
		if err != nil {
			h.log.Warn("Market listing failed", "error", err.Error())
			c.JSON(http.StatusOK, gin.H{"message": service.FallbackReply(service.IntentPrice)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"quotes": quotes})
		return
	}

	quote, err := h.market.Quote(c.Request.Context(), commodity)
	if err != nil {
		h.log.Warn("Market lookup failed", "commodity", commodity, "error", err.Error())
		c.JSON(http.StatusOK, gin.H{
			"commodity": commodity,
			"message":   service.FallbackReply(service.IntentPrice),
		})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Crops handles GET /api/v1/crops?location=&soil_type=
func (h *LookupHandler) Crops(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.Error(errors.NewBadRequestError("LOCATION_REQUIRED", "Location is required"))
		return
	}

	rec := service.RecommendCrops(location, c.Query("soil_type"), time.Now())
	c.JSON(http.StatusOK, rec)
}
