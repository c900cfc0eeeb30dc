package menu

import (
	"context"
	"sync"

	dommenu "github.com/kailas-cloud/dinemenu/internal/domain/menu"
)

type mockSource struct {
	mu      sync.Mutex
	calls   int
	fetchFn func(ctx context.Context) ([]dommenu.Item, error)
}

func (m *mockSource) Fetch(ctx context.Context) ([]dommenu.Item, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.fetchFn != nil {
		return m.fetchFn(ctx)
	}
	return sampleItems(), nil
}

func (m *mockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockSnapshot struct {
	loadFn func(ctx context.Context) ([]dommenu.Item, bool, error)
	saveFn func(ctx context.Context, items []dommenu.Item) error
}

func (m *mockSnapshot) Load(ctx context.Context) ([]dommenu.Item, bool, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return nil, false, nil
}

func (m *mockSnapshot) Save(ctx context.Context, items []dommenu.Item) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, items)
	}
	return nil
}

func sampleItems() []dommenu.Item {
	return []dommenu.Item{
		{
			ID: 1, Name: "Veg Burger", Code: "VB01", Category: "Fast Food",
			Rate: dommenu.StringValue("120"), Rate1: dommenu.NumberValue(110),
		},
		{
			ID: 2, Name: "Paneer Pizza", Code: "PZ01", Category: "Fast Food",
			Rate: dommenu.NumberValue(250), Rate4: dommenu.StringValue("300"),
		},
		{
			ID: 3, Name: "Masala Tea", Code: "T01", Category: "Beverages", Kitchen: "Bar",
			Rate: dommenu.StringValue("20"),
		},
		{ID: 4, Name: "Water", Code: "W01"},
	}
}
