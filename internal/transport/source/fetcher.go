// Package source is the outbound adapter for the upstream menu item source.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/domain"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
	"github.com/kailas-cloud/dinemenu/internal/metrics"
)

const (
	statusSuccess = "success"
	maxBodyBytes  = 16 << 20
)

// Config holds the source adapter settings.
type Config struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client // optional; a client with Timeout is built when nil
	Logger  *zap.Logger
}

// Fetcher reads the menu collection from the upstream HTTP endpoint.
type Fetcher struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// envelope is the upstream response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// NewFetcher creates a source adapter.
func NewFetcher(cfg *Config) *Fetcher {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{url: cfg.URL, client: client, logger: logger}
}

// Fetch retrieves the full item collection. Any failure returns zero items
// and an error wrapping domain.ErrSourceUnavailable.
func (f *Fetcher) Fetch(ctx context.Context) ([]menu.Item, error) {
	start := time.Now()

	items, errType, err := f.fetch(ctx)

	if err != nil {
		metrics.SourceRequestsTotal.WithLabelValues("error").Inc()
		metrics.SourceErrorsTotal.WithLabelValues(errType).Inc()
		f.logger.Warn("menu fetch failed",
			zap.String("url", f.url),
			zap.String("error_type", errType),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.SourceRequestsTotal.WithLabelValues("success").Inc()
	metrics.SourceRequestDuration.Observe(time.Since(start).Seconds())
	metrics.SourceItems.Set(float64(len(items)))

	f.logger.Debug("menu fetched",
		zap.Int("items", len(items)),
		zap.Duration("duration", time.Since(start)),
	)
	return items, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]menu.Item, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, http.NoBody)
	if err != nil {
		return nil, "transport", domain.NewSourceError(0, err.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "transport", domain.NewSourceError(0, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, "transport", domain.NewSourceError(resp.StatusCode, "read body: "+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "status", domain.NewSourceError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, "envelope", domain.NewSourceError(resp.StatusCode, "malformed envelope: "+err.Error())
	}
	if env.Status != statusSuccess {
		reason := fmt.Sprintf("status %q", env.Status)
		if env.Message != "" {
			reason += ": " + env.Message
		}
		return nil, "envelope", domain.NewSourceError(resp.StatusCode, reason)
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, "envelope", domain.NewSourceError(resp.StatusCode, "missing data")
	}

	var items []menu.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, "decode", domain.NewSourceError(resp.StatusCode, "decode items: "+err.Error())
	}
	if items == nil {
		items = []menu.Item{}
	}
	return items, "", nil
}

// HealthCheck verifies the source is reachable. Any non-5xx response counts.
func (f *Fetcher) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, f.url, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("reach source: %w", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("source returned %d", resp.StatusCode)
	}
	return nil
}
