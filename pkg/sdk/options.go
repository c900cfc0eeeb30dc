package dinemenu

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/dinemenu/internal/db/driver"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	sourceURL   string
	httpTimeout time.Duration
	httpClient  *http.Client

	driver     string // driver.Valkey or driver.Redis
	addrs      []string
	password   string
	standalone bool
	cacheTTL   time.Duration
	keyPrefix  string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithSourceURL sets the item source endpoint. Required.
func WithSourceURL(url string) Option {
	return optionFunc(func(c *clientConfig) {
		c.sourceURL = url
	})
}

// WithHTTPTimeout sets the item source request timeout. Default: 15s.
func WithHTTPTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpTimeout = d
	})
}

// WithHTTPClient replaces the HTTP client used for the item source.
// WithHTTPTimeout is ignored when a client is given.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *clientConfig) {
		c.httpClient = hc
	})
}

// WithValkey enables the snapshot cache in a Valkey instance.
// Without it every Items call fetches from the source.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driver.Valkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis enables the snapshot cache in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driver.Redis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithStandalone disables cluster topology discovery.
// Use for standalone Valkey instances (not managed by cluster operator).
func WithStandalone() Option {
	return optionFunc(func(c *clientConfig) {
		c.standalone = true
	})
}

// WithCacheTTL sets the snapshot lifetime. Default: 5m.
func WithCacheTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
	})
}

// WithKeyPrefix sets the Valkey key namespace. Default: "dinemenu:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
