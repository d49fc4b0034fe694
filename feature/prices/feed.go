package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"
)

// FeedRecord is one entry of the remote price feed.
type FeedRecord struct {
	// Name is the card name.
	Name string `json:"name"`

	// Set is the set code, optional.
	Set string `json:"set,omitempty"`

	// Foil marks foil pricing.
	Foil bool `json:"foil"`

	// Price is the market price. The feed occasionally carries zero or
	// negative values for delisted cards; those records are dropped.
	Price float64 `json:"price"`
}

// Feed fetches price records from a remote source.
type Feed interface {
	// Fetch returns the current feed records.
	Fetch(ctx context.Context) ([]FeedRecord, error)
}

// NewFeed creates an HTTP price feed client from the configuration.
func NewFeed(cfg Config) (Feed, error) {
	if cfg.FeedURL == "" {
		return nil, fmt.Errorf("price feed URL is not configured")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: timeoutDuration,
	}

	return &httpFeed{
		url: cfg.FeedURL,
		http: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
	}, nil
}

type httpFeed struct {
	url  string
	http *http.Client
}

func (f *httpFeed) Fetch(ctx context.Context) ([]FeedRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price feed returned status %d", resp.StatusCode)
	}

	var records []FeedRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode price feed: %w", err)
	}

	return records, nil
}
