package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cafesite/internal/domain"
)

type careerService struct {
	repo           domain.PositionRepository
	contextTimeout time.Duration
}

// NewCareerService creates the career positions service.
func NewCareerService(repo domain.PositionRepository, timeout time.Duration) domain.CareerService {
	return &careerService{repo: repo, contextTimeout: timeout}
}

// ListOpen returns positions currently accepting applications; it backs the
// public careers page.
func (s *careerService) ListOpen(ctx context.Context) ([]*domain.Position, error) {
	return s.list(ctx, true)
}

// ListAll returns every position, open or not, for the back office.
func (s *careerService) ListAll(ctx context.Context) ([]*domain.Position, error) {
	return s.list(ctx, false)
}

func (s *careerService) list(ctx context.Context, openOnly bool) ([]*domain.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	positions, err := s.repo.List(ctx, openOnly)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	if positions == nil {
		positions = []*domain.Position{}
	}
	return positions, nil
}

func (s *careerService) Create(ctx context.Context, p *domain.Position) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return fmt.Errorf("%w: position title is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create position: %w", err)
	}
	return nil
}

func (s *careerService) Update(ctx context.Context, p *domain.Position) (*domain.Position, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return nil, fmt.Errorf("%w: position title is required", domain.ErrInvalidInput)
	}
	p.UpdatedAt = time.Now()
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update position: %w", err)
	}
	return updated, nil
}

func (s *careerService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete position: %w", err)
	}
	return nil
}
