package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"farmer-assist/backend/pkg/cache"
	"farmer-assist/backend/pkg/logger"
)

const defaultWeatherBaseURL = "https://api.weatherapi.com/v1"

// WeatherClient looks up current conditions by free-form location
type WeatherClient interface {
	Current(ctx context.Context, location string) (*WeatherReport, error)
}

// WeatherAdapter calls the weather provider with a cache in front of it.
// Successful lookups are cached under the normalized location for the
// configured TTL (10 minutes by default) to avoid redundant calls.
type WeatherAdapter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	store      cache.Store
	ttl        time.Duration
	log        *logger.Logger
}

// NewWeatherAdapter creates a weather adapter. An empty baseURL selects
// the hosted provider endpoint.
func NewWeatherAdapter(apiKey, baseURL string, store cache.Store, ttl time.Duration, timeout time.Duration, log *logger.Logger) *WeatherAdapter {
	if baseURL == "" {
		baseURL = defaultWeatherBaseURL
	}
	return &WeatherAdapter{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		ttl:        ttl,
		log:        log,
	}
}

// weatherCacheKey normalizes the location into a stable cache key
func weatherCacheKey(location string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(location))
}

type weatherAPIResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
		Humidity int     `json:"humidity"`
		WindKph  float64 `json:"wind_kph"`
	} `json:"current"`
}

// Current returns conditions for location, serving from cache when
// an unexpired entry exists
func (a *WeatherAdapter) Current(ctx context.Context, location string) (*WeatherReport, error) {
	key := weatherCacheKey(location)

	if cached, found, err := a.store.Get(ctx, key); err == nil && found {
		var report WeatherReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
		// Unreadable cache entries are dropped and refetched
		_ = a.store.Delete(ctx, key)
	}

	report, err := a.fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(report); err == nil {
		if err := a.store.Set(ctx, key, string(encoded), a.ttl); err != nil {
			a.log.Warn("Failed to cache weather lookup", "key", key, "error", err.Error())
		}
	}

	return report, nil
}

func (a *WeatherAdapter) fetch(ctx context.Context, location string) (*WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/current.json?key=%s&q=%s",
		a.baseURL, url.QueryEscape(a.apiKey), url.QueryEscape(location))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating weather request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request failed with status code %d: %s", resp.StatusCode, string(body))
	}

	var parsed weatherAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("error unmarshaling weather response: %w", err)
	}

	report := &WeatherReport{
		Location:  parsed.Location.Name,
		TempC:     parsed.Current.TempC,
		Condition: parsed.Current.Condition.Text,
		Humidity:  parsed.Current.Humidity,
		WindKph:   parsed.Current.WindKph,
	}
	if report.Location == "" {
		report.Location = location
	}

	return report, nil
}
