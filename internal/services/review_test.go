package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"cafesite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCacheEntry struct {
	value []byte
	ttl   time.Duration
}

type fakeCache struct {
	entries map[string]fakeCacheEntry
	getErr  error
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]fakeCacheEntry)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	e, ok := f.entries[key]
	if !ok {
		return nil, false, nil
	}
	return e.value, true, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = fakeCacheEntry{value: value, ttl: ttl}
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.entries, key)
	return nil
}

type fakeFetcher struct {
	reviews []*domain.Review
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]*domain.Review, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reviews, nil
}

func TestReviewService_List(t *testing.T) {
	ctx := context.Background()
	feed := []*domain.Review{
		{Author: "Maja", Rating: 5, Text: "Great coffee", Date: "2025-05-01"},
		{Author: "Luka", Rating: 4, Text: "Cozy place", Date: "2025-05-03"},
	}

	t.Run("cold cache fetches and stores with the TTL", func(t *testing.T) {
		cache := newFakeCache()
		fetcher := &fakeFetcher{reviews: feed}
		svc := NewReviewService(fetcher, cache, 15*time.Minute, testLogger, testTimeout)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, feed, got)
		assert.Equal(t, 1, fetcher.calls)

		stored, ok := cache.entries[reviewCacheKey]
		require.True(t, ok)
		assert.Equal(t, 15*time.Minute, stored.ttl)
	})

	t.Run("warm cache serves without fetching", func(t *testing.T) {
		cache := newFakeCache()
		raw, err := json.Marshal(feed)
		require.NoError(t, err)
		require.NoError(t, cache.Set(ctx, reviewCacheKey, raw, time.Minute))

		fetcher := &fakeFetcher{err: errors.New("must not be called")}
		svc := NewReviewService(fetcher, cache, 15*time.Minute, testLogger, testTimeout)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, feed, got)
		assert.Zero(t, fetcher.calls)
	})

	t.Run("corrupt cache entry falls back to a fetch", func(t *testing.T) {
		cache := newFakeCache()
		require.NoError(t, cache.Set(ctx, reviewCacheKey, []byte("{not json"), time.Minute))
		fetcher := &fakeFetcher{reviews: feed}
		svc := NewReviewService(fetcher, cache, 15*time.Minute, testLogger, testTimeout)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, feed, got)
		assert.Equal(t, 1, fetcher.calls)
	})

	t.Run("cache read failure degrades to a fetch", func(t *testing.T) {
		cache := newFakeCache()
		cache.getErr = errors.New("redis down")
		fetcher := &fakeFetcher{reviews: feed}
		svc := NewReviewService(fetcher, cache, 15*time.Minute, testLogger, testTimeout)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, feed, got)
	})

	t.Run("fetch failure with cold cache is an error", func(t *testing.T) {
		fetcher := &fakeFetcher{err: errors.New("provider down")}
		svc := NewReviewService(fetcher, newFakeCache(), 15*time.Minute, testLogger, testTimeout)

		_, err := svc.List(ctx)
		require.Error(t, err)
	})

	t.Run("empty feed is an empty slice, not nil", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		svc := NewReviewService(fetcher, newFakeCache(), 15*time.Minute, testLogger, testTimeout)

		got, err := svc.List(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFormTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("issue then consume once", func(t *testing.T) {
		svc := NewFormTokenService(newFakeCache(), testTimeout)

		token, err := svc.Issue(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		ok, err := svc.Consume(ctx, token)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Consume(ctx, token)
		require.NoError(t, err)
		assert.False(t, ok, "second consume must fail")
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		svc := NewFormTokenService(newFakeCache(), testTimeout)

		ok, err := svc.Consume(ctx, "not-issued")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty token is rejected without a cache read", func(t *testing.T) {
		cache := newFakeCache()
		cache.getErr = errors.New("must not be read")
		svc := NewFormTokenService(cache, testTimeout)

		ok, err := svc.Consume(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		svc := NewFormTokenService(newFakeCache(), testTimeout)

		a, err := svc.Issue(ctx)
		require.NoError(t, err)
		b, err := svc.Issue(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}
