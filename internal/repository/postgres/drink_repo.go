package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cafesite/internal/domain"
)

type drinkRepository struct {
	DB *sql.DB
}

func NewDrinkRepository(db *sql.DB) domain.DrinkRepository {
	return &drinkRepository{DB: db}
}

func (r *drinkRepository) Create(ctx context.Context, d *domain.Drink) error {
	query := `
		INSERT INTO drinks (category_id, name, description, price_cents, available, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		d.CategoryID, d.Name, d.Description, d.PriceCents, d.Available, d.Position, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
}

func (r *drinkRepository) GetByID(ctx context.Context, id string) (*domain.Drink, error) {
	query := `
		SELECT id, category_id, name, description, price_cents, available, position, created_at, updated_at
		FROM drinks
		WHERE id = $1
	`
	return scanDrink(r.DB.QueryRowContext(ctx, query, id))
}

func (r *drinkRepository) ListByCategoryID(ctx context.Context, categoryID string) ([]*domain.Drink, error) {
	query := `
		SELECT id, category_id, name, description, price_cents, available, position, created_at, updated_at
		FROM drinks
		WHERE category_id = $1
		ORDER BY position ASC, name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	drinks := make([]*domain.Drink, 0)
	for rows.Next() {
		d, err := scanDrink(rows)
		if err != nil {
			return nil, err
		}
		drinks = append(drinks, d)
	}
	return drinks, rows.Err()
}

func (r *drinkRepository) Update(ctx context.Context, d *domain.Drink) (*domain.Drink, error) {
	query := `
		UPDATE drinks SET category_id = $1, name = $2, description = $3, price_cents = $4, available = $5, position = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING id, category_id, name, description, price_cents, available, position, created_at, updated_at
	`
	return scanDrink(r.DB.QueryRowContext(ctx, query,
		d.CategoryID, d.Name, d.Description, d.PriceCents, d.Available, d.Position, d.ID,
	))
}

func (r *drinkRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM drinks WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanDrink(row rowScanner) (*domain.Drink, error) {
	d := &domain.Drink{}
	var descNull sql.NullString
	err := row.Scan(&d.ID, &d.CategoryID, &d.Name, &descNull, &d.PriceCents, &d.Available, &d.Position, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if descNull.Valid {
		d.Description = descNull.String
	}
	return d, nil
}
