package postgres

import (
	"context"
	"database/sql"

	"cafesite/internal/domain"
)

type galleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

func (r *galleryRepository) Create(ctx context.Context, img *domain.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (title, image_url, position, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, img.Title, img.ImageURL, img.Position, img.CreatedAt).Scan(&img.ID)
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	query := `
		SELECT id, title, image_url, position, created_at
		FROM gallery_images
		ORDER BY position ASC, created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		img := &domain.GalleryImage{}
		var titleNull sql.NullString
		if err := rows.Scan(&img.ID, &titleNull, &img.ImageURL, &img.Position, &img.CreatedAt); err != nil {
			return nil, err
		}
		if titleNull.Valid {
			img.Title = titleNull.String
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM gallery_images WHERE id = $1`
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
