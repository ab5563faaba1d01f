package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cafesite/internal/domain"
)

type galleryService struct {
	repo           domain.GalleryRepository
	contextTimeout time.Duration
}

// NewGalleryService creates the photo gallery service.
func NewGalleryService(repo domain.GalleryRepository, timeout time.Duration) domain.GalleryService {
	return &galleryService{repo: repo, contextTimeout: timeout}
}

func (s *galleryService) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list gallery images: %w", err)
	}
	if images == nil {
		images = []*domain.GalleryImage{}
	}
	return images, nil
}

func (s *galleryService) Add(ctx context.Context, img *domain.GalleryImage) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	img.ImageURL = strings.TrimSpace(img.ImageURL)
	u, err := url.Parse(img.ImageURL)
	if err != nil || u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: image_url must be an absolute http(s) URL", domain.ErrInvalidInput)
	}
	img.Title = strings.TrimSpace(img.Title)
	img.CreatedAt = time.Now()
	if err := s.repo.Create(ctx, img); err != nil {
		return fmt.Errorf("add gallery image: %w", err)
	}
	return nil
}

func (s *galleryService) Remove(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove gallery image: %w", err)
	}
	return nil
}
