package domain

import (
	"context"
	"time"
)

// Position is an open role advertised on the careers page.
type Position struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Open        bool      `json:"open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PositionRepository defines the interface for career position storage.
type PositionRepository interface {
	Create(ctx context.Context, p *Position) error
	GetByID(ctx context.Context, id string) (*Position, error)
	// List returns all positions; when openOnly is true only open ones.
	List(ctx context.Context, openOnly bool) ([]*Position, error)
	Update(ctx context.Context, p *Position) (*Position, error)
	Delete(ctx context.Context, id string) error
}

// CareerService defines the business logic for career positions.
type CareerService interface {
	ListOpen(ctx context.Context) ([]*Position, error)
	ListAll(ctx context.Context) ([]*Position, error)
	Create(ctx context.Context, p *Position) error
	Update(ctx context.Context, p *Position) (*Position, error)
	Delete(ctx context.Context, id string) error
}
