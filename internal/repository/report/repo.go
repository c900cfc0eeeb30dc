// Package report stores sales summary rows in the KV store.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/db"
	"github.com/kailas-cloud/dinemenu/internal/domain"
	"github.com/kailas-cloud/dinemenu/internal/domain/report"
)

const summaryKeyPrefix = "summary:"

// store is the consumer interface for the summary repository (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
}

// Repo reads and writes summary rows keyed by kind.
type Repo struct {
	store  store
	prefix string
	logger *zap.Logger
}

// New creates a summary repository. keyPrefix is the storage namespace.
func New(s store, keyPrefix string, logger *zap.Logger) *Repo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repo{store: s, prefix: keyPrefix + summaryKeyPrefix, logger: logger}
}

func (r *Repo) key(kind report.Kind) string {
	return r.prefix + string(kind)
}

// Rows returns the stored rows for kind, or domain.ErrSummaryNotFound.
func (r *Repo) Rows(ctx context.Context, kind report.Kind) ([]report.Row, error) {
	data, err := r.store.Get(ctx, r.key(kind))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, domain.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("get summary %s: %w", kind, err)
	}

	var rows []report.Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode summary %s: %w", kind, err)
	}
	if rows == nil {
		rows = []report.Row{}
	}
	return rows, nil
}

// Put replaces the rows for kind.
func (r *Repo) Put(ctx context.Context, kind report.Kind, rows []report.Row) error {
	if rows == nil {
		rows = []report.Row{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal summary %s: %w", kind, err)
	}
	if err := r.store.Set(ctx, r.key(kind), data); err != nil {
		return fmt.Errorf("set summary %s: %w", kind, err)
	}
	return nil
}

// SeedFixtures writes the sample summaries for every kind whose key is
// absent. Existing data is never overwritten. Returns the number of kinds seeded.
func (r *Repo) SeedFixtures(ctx context.Context) (int, error) {
	seeded := 0
	for _, kind := range report.Kinds() {
		data, err := json.Marshal(fixtures[kind])
		if err != nil {
			return seeded, fmt.Errorf("marshal fixture %s: %w", kind, err)
		}
		ok, err := r.store.SetNX(ctx, r.key(kind), data)
		if err != nil {
			return seeded, fmt.Errorf("seed summary %s: %w", kind, err)
		}
		if ok {
			seeded++
			r.logger.Info("Seeded summary fixture", zap.String("kind", string(kind)), zap.Int("rows", len(fixtures[kind])))
		}
	}
	return seeded, nil
}
