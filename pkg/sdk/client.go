package dinemenu

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/db"
	"github.com/kailas-cloud/dinemenu/internal/db/driver"
	"github.com/kailas-cloud/dinemenu/internal/domain"
	"github.com/kailas-cloud/dinemenu/internal/repository/snapshot"
	"github.com/kailas-cloud/dinemenu/internal/transport/source"
	healthuc "github.com/kailas-cloud/dinemenu/internal/usecase/health"
	menuuc "github.com/kailas-cloud/dinemenu/internal/usecase/menu"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultHTTPTimeout      = 15 * time.Second
	defaultCacheTTL         = 5 * time.Minute
)

// menuUseCase is the internal interface for substitution in tests.
type menuUseCase interface {
	Items(ctx context.Context) ([]Item, error)
	Refresh(ctx context.Context) ([]Item, error)
	Browse(ctx context.Context, category, query string) (menuuc.Page, error)
	Categories(ctx context.Context) ([]string, error)
	Item(ctx context.Context, id int64) (menuuc.Entry, error)
}

// Client is the dinemenu SDK entry point.
type Client struct {
	store     db.Store // nil without WithValkey
	menuSvc   menuUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client. When WithValkey or WithRedis is given it connects to
// the cache and waits for it using ctx.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		httpTimeout: defaultHTTPTimeout,
		cacheTTL:    defaultCacheTTL,
		keyPrefix:   domain.DefaultKeyPrefix,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if err := validateSourceURL(cfg.sourceURL); err != nil {
		return nil, err
	}

	var store db.Store
	if len(cfg.addrs) > 0 {
		s, err := driver.Open(driver.Config{
			Driver:     cfg.driver,
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			Standalone: cfg.standalone,
		})
		if err != nil {
			return nil, fmt.Errorf("dinemenu: create store: %w", err)
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("dinemenu: cache not ready: %w", err)
		}
		store = s
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func validateSourceURL(raw string) error {
	if raw == "" {
		return errors.New("dinemenu: source URL required (use WithSourceURL)")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("dinemenu: source URL must be an absolute http(s) URL, got %q", raw)
	}
	return nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	fetcher := source.NewFetcher(&source.Config{
		URL:     cfg.sourceURL,
		Timeout: cfg.httpTimeout,
		Client:  cfg.httpClient,
		Logger:  zap.NewNop(),
	})

	// Pass nil interfaces (not typed nil pointers) when the cache is off.
	var snap menuuc.Snapshot
	var pinger healthuc.DBPinger
	if store != nil {
		snap = snapshot.New(store, cfg.keyPrefix, cfg.cacheTTL, nil, zap.NewNop())
		pinger = store
	}

	return &Client{
		store:     store,
		menuSvc:   menuuc.New(fetcher, snap, zap.NewNop()),
		healthSvc: healthuc.New(pinger, fetcher),
		obs:       obs,
	}
}

// Close releases the cache connection, if any.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Items returns the full collection, from the snapshot cache when present.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	start := time.Now()
	items, err := c.menuSvc.Items(ctx)
	c.obs.observe("menu.items", start, err)
	if err != nil {
		return nil, fmt.Errorf("items: %w", err)
	}
	return items, nil
}

// Refresh fetches the collection from the source, bypassing the cache.
func (c *Client) Refresh(ctx context.Context) ([]Item, error) {
	start := time.Now()
	items, err := c.menuSvc.Refresh(ctx)
	c.obs.observe("menu.refresh", start, err)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	return items, nil
}

// Browse returns the items in category matching query, with their rates.
func (c *Client) Browse(ctx context.Context, category, query string) (Page, error) {
	start := time.Now()
	page, err := c.menuSvc.Browse(ctx, category, query)
	c.obs.observe("menu.browse", start, err)
	if err != nil {
		return Page{}, fmt.Errorf("browse: %w", err)
	}
	return page, nil
}

// Categories returns the category selector list, AllCategories first.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	start := time.Now()
	cats, err := c.menuSvc.Categories(ctx)
	c.obs.observe("menu.categories", start, err)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	return cats, nil
}

// Item returns one item by id, or ErrItemNotFound.
func (c *Client) Item(ctx context.Context, id int64) (Entry, error) {
	start := time.Now()
	e, err := c.menuSvc.Item(ctx, id)
	c.obs.observe("menu.item", start, err)
	if err != nil {
		return Entry{}, fmt.Errorf("item: %w", err)
	}
	return e, nil
}
