package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"cafesite/internal/domain"
)

const formTokenTTL = 30 * time.Minute

type formTokenService struct {
	cache          domain.Cache
	contextTimeout time.Duration
}

// NewFormTokenService creates the single-use form token service backed by the
// TTL cache.
func NewFormTokenService(cache domain.Cache, timeout time.Duration) domain.FormTokenService {
	return &formTokenService{cache: cache, contextTimeout: timeout}
}

func (s *formTokenService) Issue(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	token := uuid.NewString()
	if err := s.cache.Set(ctx, formTokenKey(token), []byte("1"), formTokenTTL); err != nil {
		return "", fmt.Errorf("store form token: %w", err)
	}
	return token, nil
}

func (s *formTokenService) Consume(ctx context.Context, token string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if token == "" {
		return false, nil
	}
	_, ok, err := s.cache.Get(ctx, formTokenKey(token))
	if err != nil {
		return false, fmt.Errorf("read form token: %w", err)
	}
	if !ok {
		return false, nil
	}
	if err := s.cache.Delete(ctx, formTokenKey(token)); err != nil {
		return false, fmt.Errorf("consume form token: %w", err)
	}
	return true, nil
}

func formTokenKey(token string) string {
	return "formtoken:" + token
}
