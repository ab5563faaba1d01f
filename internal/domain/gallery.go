package domain

import (
	"context"
	"time"
)

// GalleryImage is one photo on the public gallery page. ImageURL points at
// the external image host; this service never stores binary data.
type GalleryImage struct {
	ID        string    `json:"id"`
	Title     string    `json:"title,omitempty"`
	ImageURL  string    `json:"image_url"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryRepository defines the interface for gallery storage.
type GalleryRepository interface {
	Create(ctx context.Context, img *GalleryImage) error
	List(ctx context.Context) ([]*GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

// GalleryService defines the business logic for the photo gallery.
type GalleryService interface {
	List(ctx context.Context) ([]*GalleryImage, error)
	Add(ctx context.Context, img *GalleryImage) error
	Remove(ctx context.Context, id string) error
}
