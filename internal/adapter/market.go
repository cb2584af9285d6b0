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

// MarketClient looks up commodity prices by name
type MarketClient interface {
	Quote(ctx context.Context, commodity string) (*MarketQuote, error)
}

// referencePrices serves lookups when no remote market endpoint is
// configured, mirroring the price table the assistant shipped with
var referencePrices = map[string]MarketQuote{
	"wheat":    {Commodity: "wheat", Price: "5.50", Unit: "bushel", Trend: "+2.3%"},
	"corn":     {Commodity: "corn", Price: "4.20", Unit: "bushel", Trend: "-1.1%"},
	"soybeans": {Commodity: "soybeans", Price: "12.80", Unit: "bushel", Trend: "+0.8%"},
	"rice":     {Commodity: "rice", Price: "18.50", Unit: "hundredweight", Trend: "0.0%"},
	"cotton":   {Commodity: "cotton", Price: "0.84", Unit: "pound", Trend: "+0.4%"},
}

// MarketAdapter resolves commodity prices with the same cache-then-fetch
// pattern as the weather adapter, keyed by commodity name.
type MarketAdapter struct {
	endpoint   string
	httpClient *http.Client
	store      cache.Store
	ttl        time.Duration
	log        *logger.Logger
}

// NewMarketAdapter creates a market price adapter. An empty endpoint
// serves the local reference table instead of a remote API.
func NewMarketAdapter(endpoint string, store cache.Store, ttl time.Duration, timeout time.Duration, log *logger.Logger) *MarketAdapter {
	return &MarketAdapter{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		ttl:        ttl,
		log:        log,
	}
}

func marketCacheKey(commodity string) string {
	return "market:" + strings.ToLower(strings.TrimSpace(commodity))
}

// Quote returns the price quote for commodity, serving from cache when
// an unexpired entry exists
func (a *MarketAdapter) Quote(ctx context.Context, commodity string) (*MarketQuote, error) {
	key := marketCacheKey(commodity)

	if cached, found, err := a.store.Get(ctx, key); err == nil && found {
		var quote MarketQuote
		if err := json.Unmarshal([]byte(cached), &quote); err == nil {
			return &quote, nil
		}
		_ = a.store.Delete(ctx, key)
	}

	quote, err := a.fetch(ctx, commodity)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(quote); err == nil {
		if err := a.store.Set(ctx, key, string(encoded), a.ttl); err != nil {
			a.log.Warn("Failed to cache market lookup", "key", key, "error", err.Error())
		}
	}

	return quote, nil
}

// ListQuotes returns quotes for all commodities in the reference table
func (a *MarketAdapter) ListQuotes(ctx context.Context) ([]MarketQuote, error) {
	quotes := make([]MarketQuote, 0, len(referencePrices))
	for name := range referencePrices {
		quote, err := a.Quote(ctx, name)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *quote)
	}
	return quotes, nil
}

func (a *MarketAdapter) fetch(ctx context.Context, commodity string) (*MarketQuote, error) {
	name := strings.ToLower(strings.TrimSpace(commodity))

	if a.endpoint == "" {
		quote, ok := referencePrices[name]
		if !ok {
			return nil, fmt.Errorf("no price data for commodity %q", commodity)
		}
		return &quote, nil
	}

	endpoint := fmt.Sprintf("%s?commodity=%s", a.endpoint, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating market request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making market request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading market response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market request failed with status code %d: %s", resp.StatusCode, string(body))
	}

	var quote MarketQuote
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, fmt.Errorf("error unmarshaling market response: %w", err)
	}
	if quote.Commodity == "" {
		quote.Commodity = name
	}

	return &quote, nil
}
