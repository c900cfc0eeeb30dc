// Package snapshot caches the last successfully fetched menu in the KV store.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/db"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
)

const itemsKey = "menu:items"

// store is the consumer interface for the snapshot cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// record is the stored form of a snapshot.
type record struct {
	FetchedAt time.Time   `json:"fetched_at"`
	Items     []menu.Item `json:"items"`
}

// Repo reads and writes the menu snapshot.
type Repo struct {
	store      store
	key        string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
	now        func() time.Time
}

// New creates a snapshot repository. keyPrefix is the storage namespace
// (e.g. "dinemenu:"). cacheTotal is a counter vec with label "result"
// ("hit"/"miss"), passed explicitly; nil disables counting.
func New(s store, keyPrefix string, ttl time.Duration, cacheTotal *prometheus.CounterVec, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{
		store:      s,
		key:        keyPrefix + itemsKey,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
		now:        time.Now,
	}
}

// Key returns the storage key of the snapshot.
func (r *Repo) Key() string { return r.key }

// Load returns the cached items. A miss is (nil, false, nil); corrupt data
// is logged and reported as a miss.
func (r *Repo) Load(ctx context.Context) ([]menu.Item, bool, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			r.incCache("miss")
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get snapshot: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.Items == nil {
		r.logger.Warn("Discarding corrupt menu snapshot", zap.String("key", r.key), zap.Error(err))
		r.incCache("miss")
		return nil, false, nil
	}

	r.incCache("hit")
	r.logger.Debug("Menu snapshot hit",
		zap.Int("items", len(rec.Items)),
		zap.Time("fetched_at", rec.FetchedAt),
	)
	return rec.Items, true, nil
}

// Save stores items as the current snapshot.
func (r *Repo) Save(ctx context.Context, items []menu.Item) error {
	if items == nil {
		items = []menu.Item{}
	}
	data, err := json.Marshal(record{FetchedAt: r.now().UTC(), Items: items})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := r.store.SetWithTTL(ctx, r.key, data, r.ttl); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot.
func (r *Repo) Invalidate(ctx context.Context) error {
	if err := r.store.Del(ctx, r.key); err != nil {
		return fmt.Errorf("del snapshot: %w", err)
	}
	return nil
}

func (r *Repo) incCache(result string) {
	if r.cacheTotal != nil {
		r.cacheTotal.WithLabelValues(result).Inc()
	}
}
