package cart

import (
	"context"
	"testing"
	"time"

	"github.com/chronos-atelier/chronos-backend/pkg/db/models"
	"github.com/chronos-atelier/chronos-backend/pkg/redis"
)

type fakeKV struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", redis.Nil
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = value.(string)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) CartKey(token string) string { return "chronos:cart:" + token }

func TestStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store, err := NewStore(kv, fakeKeyer{}, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	lines := []models.CartLine{{Watch: models.Watch{ID: "w1", Price: 14500}, Quantity: 2}}
	if err := store.Save(context.Background(), "tok", lines); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := kv.ttls["chronos:cart:tok"]; got != time.Hour {
		t.Fatalf("expected ttl refresh, got %v", got)
	}

	loaded, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Watch.ID != "w1" || loaded[0].Quantity != 2 {
		t.Fatalf("unexpected lines: %+v", loaded)
	}

	if err := store.Clear(context.Background(), "tok"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	again, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", again)
	}
}

func TestNewStoreRejectsBadConfig(t *testing.T) {
	if _, err := NewStore(nil, fakeKeyer{}, time.Hour); err == nil {
		t.Fatal("expected error for nil kv")
	}
	if _, err := NewStore(newFakeKV(), fakeKeyer{}, 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}
