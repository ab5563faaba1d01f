package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cafesite/internal/domain"
)

type menuService struct {
	categoryRepo   domain.CategoryRepository
	drinkRepo      domain.DrinkRepository
	contextTimeout time.Duration
}

// NewMenuService creates the drink menu service.
func NewMenuService(categoryRepo domain.CategoryRepository, drinkRepo domain.DrinkRepository, timeout time.Duration) domain.MenuService {
	return &menuService{
		categoryRepo:   categoryRepo,
		drinkRepo:      drinkRepo,
		contextTimeout: timeout,
	}
}

// GetMenu returns every category with its drinks, in display order.
func (s *menuService) GetMenu(ctx context.Context) ([]*domain.MenuCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	menu := make([]*domain.MenuCategory, 0, len(categories))
	for _, c := range categories {
		drinks, err := s.drinkRepo.ListByCategoryID(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("list drinks for category %s: %w", c.ID, err)
		}
		if drinks == nil {
			drinks = []*domain.Drink{}
		}
		menu = append(menu, &domain.MenuCategory{Category: c, Drinks: drinks})
	}
	return menu, nil
}

func (s *menuService) CreateCategory(ctx context.Context, c *domain.Category) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := s.categoryRepo.Create(ctx, c); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *menuService) UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidInput)
	}
	c.UpdatedAt = time.Now()
	updated, err := s.categoryRepo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return updated, nil
}

func (s *menuService) DeleteCategory(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *menuService) CreateDrink(ctx context.Context, d *domain.Drink) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateDrink(d); err != nil {
		return err
	}
	if _, err := s.categoryRepo.GetByID(ctx, d.CategoryID); err != nil {
		return fmt.Errorf("resolve category %s: %w", d.CategoryID, err)
	}
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	if err := s.drinkRepo.Create(ctx, d); err != nil {
		return fmt.Errorf("create drink: %w", err)
	}
	return nil
}

func (s *menuService) UpdateDrink(ctx context.Context, d *domain.Drink) (*domain.Drink, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateDrink(d); err != nil {
		return nil, err
	}
	d.UpdatedAt = time.Now()
	updated, err := s.drinkRepo.Update(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("update drink: %w", err)
	}
	return updated, nil
}

func (s *menuService) DeleteDrink(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.drinkRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete drink: %w", err)
	}
	return nil
}

func validateDrink(d *domain.Drink) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return fmt.Errorf("%w: drink name is required", domain.ErrInvalidInput)
	}
	if d.CategoryID == "" {
		return fmt.Errorf("%w: category_id is required", domain.ErrInvalidInput)
	}
	if d.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
