package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"cafesite/internal/domain"
)

const reviewCacheKey = "reviews:feed"

type reviewService struct {
	fetcher        domain.ReviewFetcher
	cache          domain.Cache
	cacheTTL       time.Duration
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewReviewService creates the review feed service. The feed is served from
// the cache and refetched in full once the TTL lapses.
func NewReviewService(fetcher domain.ReviewFetcher, cache domain.Cache, cacheTTL time.Duration, logger *slog.Logger, timeout time.Duration) domain.ReviewService {
	return &reviewService{
		fetcher:        fetcher,
		cache:          cache,
		cacheTTL:       cacheTTL,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *reviewService) List(ctx context.Context) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if raw, ok, err := s.cache.Get(ctx, reviewCacheKey); err == nil && ok {
		var reviews []*domain.Review
		if err := json.Unmarshal(raw, &reviews); err == nil {
			return reviews, nil
		}
		// A corrupt entry falls through to a fresh fetch.
		s.logger.Warn("discarding unreadable review cache entry")
	} else if err != nil {
		s.logger.Warn("review cache read failed", "err", err)
	}

	reviews, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}

	if raw, err := json.Marshal(reviews); err == nil {
		if err := s.cache.Set(ctx, reviewCacheKey, raw, s.cacheTTL); err != nil {
			s.logger.Warn("review cache write failed", "err", err)
		}
	}
	return reviews, nil
}
