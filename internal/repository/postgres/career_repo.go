package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cafesite/internal/domain"
)

type positionRepository struct {
	DB *sql.DB
}

func NewPositionRepository(db *sql.DB) domain.PositionRepository {
	return &positionRepository{DB: db}
}

func (r *positionRepository) Create(ctx context.Context, p *domain.Position) error {
	query := `
		INSERT INTO positions (title, description, open, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, p.Title, p.Description, p.Open, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
}

func (r *positionRepository) GetByID(ctx context.Context, id string) (*domain.Position, error) {
	query := `
		SELECT id, title, description, open, created_at, updated_at
		FROM positions
		WHERE id = $1
	`
	p := &domain.Position{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Title, &p.Description, &p.Open, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *positionRepository) List(ctx context.Context, openOnly bool) ([]*domain.Position, error) {
	query := `
		SELECT id, title, description, open, created_at, updated_at
		FROM positions
		WHERE ($1 = false OR open = true)
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, openOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	positions := make([]*domain.Position, 0)
	for rows.Next() {
		p := &domain.Position{}
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Open, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *positionRepository) Update(ctx context.Context, p *domain.Position) (*domain.Position, error) {
	query := `
		UPDATE positions SET title = $1, description = $2, open = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, title, description, open, created_at, updated_at
	`
	updated := &domain.Position{}
	err := r.DB.QueryRowContext(ctx, query, p.Title, p.Description, p.Open, p.ID).
		Scan(&updated.ID, &updated.Title, &updated.Description, &updated.Open, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *positionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM positions WHERE id = $1`
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
