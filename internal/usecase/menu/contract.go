package menu

import (
	"context"

	dommenu "github.com/kailas-cloud/dinemenu/internal/domain/menu"
)

// Source fetches the full item collection from upstream.
type Source interface {
	Fetch(ctx context.Context) ([]dommenu.Item, error)
}

// Snapshot caches the last successfully fetched collection.
type Snapshot interface {
	Load(ctx context.Context) ([]dommenu.Item, bool, error)
	Save(ctx context.Context, items []dommenu.Item) error
}
