package menu

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/kailas-cloud/dinemenu/internal/domain"
	dommenu "github.com/kailas-cloud/dinemenu/internal/domain/menu"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu/filter"
)

// Load triggers. Each trigger has at most one upstream fetch in flight.
const (
	triggerInitial = "initial"
	triggerRefresh = "refresh"
)

// Service serves the menu collection and its filtered views.
type Service struct {
	source   Source
	snapshot Snapshot
	group    singleflight.Group
	logger   *zap.Logger
}

// New creates a menu service. snapshot can be nil.
func New(source Source, snapshot Snapshot, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, snapshot: snapshot, logger: logger}
}

// Items returns the collection, from the snapshot when one is cached.
func (s *Service) Items(ctx context.Context) ([]dommenu.Item, error) {
	if s.snapshot != nil {
		items, hit, err := s.snapshot.Load(ctx)
		if err != nil {
			s.logger.Warn("Menu snapshot unavailable, fetching from source", zap.Error(err))
		}
		if hit {
			return slices.Clone(items), nil
		}
	}
	return s.load(ctx, triggerInitial)
}

// Refresh always fetches from the source and replaces the snapshot.
func (s *Service) Refresh(ctx context.Context) ([]dommenu.Item, error) {
	return s.load(ctx, triggerRefresh)
}

// load runs one fetch per trigger; concurrent callers share its result.
// The fetch ignores caller cancellation and is bounded by the source
// timeout. Each caller stops waiting when its own ctx is done.
func (s *Service) load(ctx context.Context, trigger string) ([]dommenu.Item, error) {
	ch := s.group.DoChan(trigger, func() (any, error) {
		fctx := context.WithoutCancel(ctx)

		items, err := s.source.Fetch(fctx)
		if err != nil {
			return nil, fmt.Errorf("fetch menu: %w", err)
		}
		if s.snapshot != nil {
			if err := s.snapshot.Save(fctx, items); err != nil {
				s.logger.Warn("Failed to save menu snapshot", zap.Error(err))
			}
		}
		s.logger.Info("Menu loaded",
			zap.String("trigger", trigger),
			zap.Int("items", len(items)),
		)
		return items, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load menu: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		items, _ := res.Val.([]dommenu.Item)
		return slices.Clone(items), nil
	}
}

// Browse filters the collection by category and query and derives the
// rate entries of every matching item.
func (s *Service) Browse(ctx context.Context, category, query string) (Page, error) {
	if len(query) > filter.MaxQueryLength {
		return Page{}, fmt.Errorf("query longer than %d bytes: %w", filter.MaxQueryLength, domain.ErrInvalidRequest)
	}
	if category == "" {
		category = dommenu.AllCategories
	}

	items, err := s.Items(ctx)
	if err != nil {
		return Page{}, err
	}

	matched := filter.Apply(items, category, query)
	entries := make([]Entry, len(matched))
	for i := range matched {
		entries[i] = NewEntry(matched[i])
	}

	return Page{
		Category:   category,
		Query:      query,
		Items:      entries,
		Categories: filter.Categories(items),
		Total:      len(items),
		Matched:    len(entries),
	}, nil
}

// Categories returns the category selector list.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Categories(items), nil
}

// Item returns one item by id.
func (s *Service) Item(ctx context.Context, id int64) (Entry, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return Entry{}, err
	}
	item, ok := dommenu.Find(items, id)
	if !ok {
		return Entry{}, fmt.Errorf("item %d: %w", id, domain.ErrItemNotFound)
	}
	return NewEntry(item), nil
}
