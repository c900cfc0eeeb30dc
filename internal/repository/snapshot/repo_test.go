package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/dinemenu/internal/db"
	"github.com/kailas-cloud/dinemenu/internal/domain/menu"
)

func TestKey(t *testing.T) {
	r, _, _ := newTestRepo(t)
	if r.Key() != "dinemenu:menu:items" {
		t.Errorf("Key() = %q", r.Key())
	}
}

func TestLoad_Miss(t *testing.T) {
	r, _, counter := newTestRepo(t)

	items, hit, err := r.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hit || items != nil {
		t.Errorf("expected miss, got hit=%v items=%v", hit, items)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("miss")); got != 1 {
		t.Errorf("expected 1 miss, got %f", got)
	}
}

func TestSaveThenLoad(t *testing.T) {
	r, ms, counter := newTestRepo(t)
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	var stored []byte
	ms.setWithTTLFn = func(_ context.Context, key string, value []byte, ttl time.Duration) error {
		if key != "dinemenu:menu:items" {
			t.Errorf("unexpected key %q", key)
		}
		if ttl != 5*time.Minute {
			t.Errorf("unexpected ttl %v", ttl)
		}
		stored = value
		return nil
	}
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return stored, nil
	}

	in := []menu.Item{
		{ID: 1, Name: "Veg Burger", Code: "VB01", Category: "Fast Food", Rate: menu.StringValue("120")},
		{ID: 2, Name: "Paneer Pizza", Code: "PZ01", Rate: menu.NumberValue(250), Rate3: menu.NullValue()},
	}
	if err := r.Save(context.Background(), in); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.Contains(string(stored), `"fetched_at":"2026-01-02T03:04:05Z"`) {
		t.Errorf("stored record missing fetched_at: %s", stored)
	}

	out, hit, err := r.Load(context.Background())
	if err != nil || !hit {
		t.Fatalf("Load: hit=%v err=%v", hit, err)
	}
	if len(out) != 2 || out[0].Name != "Veg Burger" || out[1].Rate.Float() != 250 {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out[0].Rate.String() != "120" || !out[1].Rate3.IsNull() {
		t.Errorf("raw rate values not preserved: %+v", out)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("hit")); got != 1 {
		t.Errorf("expected 1 hit, got %f", got)
	}
}

func TestSave_EmptyCollectionIsHit(t *testing.T) {
	r, ms, _ := newTestRepo(t)

	var stored []byte
	ms.setWithTTLFn = func(_ context.Context, _ string, value []byte, _ time.Duration) error {
		stored = value
		return nil
	}
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) { return stored, nil }

	if err := r.Save(context.Background(), nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	items, hit, err := r.Load(context.Background())
	if err != nil || !hit {
		t.Fatalf("expected hit, got hit=%v err=%v", hit, err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil items, got %#v", items)
	}
}

func TestLoad_CorruptIsMiss(t *testing.T) {
	for _, payload := range []string{`not json`, `{"items":null}`, `{}`} {
		t.Run(payload, func(t *testing.T) {
			r, ms, _ := newTestRepo(t)
			ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
				return []byte(payload), nil
			}

			items, hit, err := r.Load(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hit || items != nil {
				t.Errorf("expected miss for %q", payload)
			}
		})
	}
}

func TestLoad_StoreError(t *testing.T) {
	r, ms, _ := newTestRepo(t)
	storeErr := &db.Error{Op: db.OpGet, Err: errors.New("connection reset")}
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) { return nil, storeErr }

	_, hit, err := r.Load(context.Background())
	if hit {
		t.Error("expected no hit")
	}
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
}

func TestSave_StoreError(t *testing.T) {
	r, ms, _ := newTestRepo(t)
	ms.setWithTTLFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return errors.New("OOM")
	}

	if err := r.Save(context.Background(), []menu.Item{{ID: 1}}); err == nil {
		t.Fatal("expected error")
	}
}

func TestInvalidate(t *testing.T) {
	r, ms, _ := newTestRepo(t)
	var deleted string
	ms.delFn = func(_ context.Context, key string) error {
		deleted = key
		return nil
	}

	if err := r.Invalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != "dinemenu:menu:items" {
		t.Errorf("deleted %q", deleted)
	}
}

func TestRecordShape(t *testing.T) {
	data, err := json.Marshal(record{Items: []menu.Item{{ID: 7, Name: "Tea", Code: "T1"}}})
	if err != nil {
		t.Fatal(err)
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		t.Fatal(err)
	}
	if _, ok := generic["items"]; !ok {
		t.Errorf("record missing items: %s", data)
	}
}
