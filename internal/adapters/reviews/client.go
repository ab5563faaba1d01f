package reviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cafesite/internal/domain"
)

// feedReview mirrors one entry of the provider's JSON feed.
type feedReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Date       string  `json:"date"`
}

type feedResponse struct {
	Reviews []feedReview `json:"reviews"`
}

type httpFetcher struct {
	client  *http.Client
	feedURL string
}

// NewHTTPFetcher returns a fetcher that calls the review provider's feed URL.
func NewHTTPFetcher(client *http.Client, feedURL string) domain.ReviewFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpFetcher{client: client, feedURL: feedURL}
}

func (f *httpFetcher) Fetch(ctx context.Context) ([]*domain.Review, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("review feed returned status: %d", resp.StatusCode)
	}

	var data feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode review feed: %w", err)
	}
	out := make([]*domain.Review, 0, len(data.Reviews))
	for _, r := range data.Reviews {
		out = append(out, &domain.Review{
			Author: r.AuthorName,
			Rating: r.Rating,
			Text:   r.Text,
			Date:   r.Date,
		})
	}
	return out, nil
}
