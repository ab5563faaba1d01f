package domain

import (
	"context"
	"time"
)

// Category groups drinks on the public menu.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Drink is a single menu item. PriceCents avoids floating-point money.
type Drink struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int       `json:"price_cents"`
	Available   bool      `json:"available"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MenuCategory is a category with its drinks, as served on the public menu.
type MenuCategory struct {
	Category *Category `json:"category"`
	Drinks   []*Drink  `json:"drinks"`
}

// CategoryRepository defines the interface for category storage.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	Delete(ctx context.Context, id string) error
}

// DrinkRepository defines the interface for drink storage.
type DrinkRepository interface {
	Create(ctx context.Context, d *Drink) error
	GetByID(ctx context.Context, id string) (*Drink, error)
	ListByCategoryID(ctx context.Context, categoryID string) ([]*Drink, error)
	Update(ctx context.Context, d *Drink) (*Drink, error)
	Delete(ctx context.Context, id string) error
}

// MenuService defines the business logic for the drink menu.
type MenuService interface {
	GetMenu(ctx context.Context) ([]*MenuCategory, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateDrink(ctx context.Context, d *Drink) error
	UpdateDrink(ctx context.Context, d *Drink) (*Drink, error)
	DeleteDrink(ctx context.Context, id string) error
}
