package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreExpiry(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute)
	fake := time.Now()
	s.now = func() time.Time { return fake }

	ctx := context.Background()
	s.Set(ctx, "team:1", "CLB Sông Hồng")

	if got, ok := s.Get(ctx, "team:1"); !ok || got != "CLB Sông Hồng" {
		t.Fatalf("expected cached value, got %v ok=%v", got, ok)
	}

	fake = fake.Add(2 * time.Minute)
	if _, ok := s.Get(ctx, "team:1"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestStoreDeletePrefix(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	ctx := context.Background()
	s.Set(ctx, "team:1", 1)
	s.Set(ctx, "team:2", 2)
	s.Set(ctx, "venue:1", 3)

	s.DeletePrefix(ctx, "team:")

	if _, ok := s.Get(ctx, "team:1"); ok {
		t.Fatal("team:1 should be gone")
	}
	if _, ok := s.Get(ctx, "venue:1"); !ok {
		t.Fatal("venue:1 should survive")
	}
}

func TestStoreGetOrLoad(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	ctx := context.Background()
	var loads atomic.Int32

	for i := 0; i < 3; i++ {
		got, err := s.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
			loads.Add(1)
			return "v", nil
		})
		if err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
		if got != "v" {
			t.Fatalf("load %d: got %v", i, got)
		}
	}

	if got := loads.Load(); got != 1 {
		t.Fatalf("expected one load, got %d", got)
	}
}

func TestStoreGetOrLoadErrorNotCached(t *testing.T) {
	t.Parallel()

	s := NewStore(0)
	ctx := context.Background()
	boom := errors.New("boom")

	if _, err := s.GetOrLoad(ctx, "k", func(context.Context) (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err := s.GetOrLoad(ctx, "k", func(context.Context) (any, error) { return "ok", nil })
	if err != nil || got != "ok" {
		t.Fatalf("expected retry to load, got %v err=%v", got, err)
	}
}
