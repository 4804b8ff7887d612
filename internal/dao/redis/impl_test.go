package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"warmline_server/pkg/errorx"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCache(client, 2, 16)
}

func TestSetGet(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, "k1", "v1", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := cache.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "v1" {
		t.Errorf("Get() = %q, want %q", got, "v1")
	}

	// 不存在的键返回空串和 nil
	got, err = cache.Get(ctx, "missing")
	if err != nil || got != "" {
		t.Errorf("Get(missing) = (%q, %v), want (\"\", nil)", got, err)
	}

	// GetOrError 对不存在的键返回 NotFound
	_, err = cache.GetOrError(ctx, "missing")
	if errorx.GetCode(err) != errorx.CodeNotFound {
		t.Errorf("GetOrError(missing) code = %d, want %d", errorx.GetCode(err), errorx.CodeNotFound)
	}
}

func TestIncrBy(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	got, err := cache.IncrBy(ctx, "counter", 3)
	if err != nil {
		t.Fatalf("IncrBy() error = %v", err)
	}
	if got != 3 {
		t.Errorf("IncrBy() = %d, want 3", got)
	}
	got, err = cache.IncrBy(ctx, "counter", 2)
	if err != nil {
		t.Fatalf("IncrBy() error = %v", err)
	}
	if got != 5 {
		t.Errorf("IncrBy() = %d, want 5", got)
	}
}

func TestDeleteByPattern(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	keys := []string{
		"job_progress_j1_total",
		"job_progress_j1_processed",
		"job_progress_j2_total",
	}
	for _, k := range keys {
		if err := cache.Set(ctx, k, "1", 0); err != nil {
			t.Fatalf("Set(%s) error = %v", k, err)
		}
	}

	if err := cache.DeleteByPattern(ctx, "job_progress_j1_*"); err != nil {
		t.Fatalf("DeleteByPattern() error = %v", err)
	}

	for _, k := range []string{"job_progress_j1_total", "job_progress_j1_processed"} {
		if got, _ := cache.Get(ctx, k); got != "" {
			t.Errorf("key %s still exists after DeleteByPattern", k)
		}
	}
	if got, _ := cache.Get(ctx, "job_progress_j2_total"); got != "1" {
		t.Error("unrelated key was deleted by pattern")
	}
}

func TestSubmitTask(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	done := make(chan struct{})
	cache.SubmitTask(func() {
		_ = cache.Set(ctx, "async_key", "async_value", time.Minute)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("async task was not executed")
	}
	if got, _ := cache.Get(ctx, "async_key"); got != "async_value" {
		t.Errorf("async write = %q, want %q", got, "async_value")
	}
}
