package domain

import "context"

// Review is a single third-party customer review shown on the site.
type Review struct {
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
	Date   string  `json:"date"`
}

// ReviewFetcher fetches the full review feed from the external provider.
type ReviewFetcher interface {
	Fetch(ctx context.Context) ([]*Review, error)
}

// ReviewService serves the review feed, caching it with a fixed TTL and
// full replacement on expiry.
type ReviewService interface {
	List(ctx context.Context) ([]*Review, error)
}
