package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cafesite/internal/domain"
)

type reservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(db *sql.DB) domain.ReservationRepository {
	return &reservationRepository{
		DB: db,
	}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `
		INSERT INTO reservations (res_type, sub_type, name, email, phone, res_date, res_time, guests, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		res.Type, res.SubType, res.Name, res.Email, res.Phone,
		res.Date, res.Time, res.Guests, res.Message, res.Status,
		res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `
		SELECT id, res_type, sub_type, name, email, phone, res_date, res_time, guests, message, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`
	return scanReservation(r.DB.QueryRowContext(ctx, query, id))
}

func (r *reservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `
		SELECT id, res_type, sub_type, name, email, phone, res_date, res_time, guests, message, status, created_at, updated_at
		FROM reservations
		ORDER BY res_date ASC, res_time ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *reservationRepository) FindByDateMinGuestsStatus(ctx context.Context, date string, minGuests int, status domain.ReservationStatus) (*domain.Reservation, error) {
	query := `
		SELECT id, res_type, sub_type, name, email, phone, res_date, res_time, guests, message, status, created_at, updated_at
		FROM reservations
		WHERE res_date = $1 AND guests > $2 AND status = $3
		LIMIT 1
	`
	return scanReservation(r.DB.QueryRowContext(ctx, query, date, minGuests, status))
}

// UpdateStatus is a plain conditional-free write: two concurrent updates for
// the same id race and the last one wins. Accepted under the admin account
// cap; a version column is the upgrade path if that ever changes.
func (r *reservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	query := `
		UPDATE reservations SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, res_type, sub_type, name, email, phone, res_date, res_time, guests, message, status, created_at, updated_at
	`
	return scanReservation(r.DB.QueryRowContext(ctx, query, status, id))
}

func (r *reservationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM reservations WHERE id = $1`
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

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	var date time.Time
	var msgNull sql.NullString
	err := row.Scan(
		&res.ID, &res.Type, &res.SubType, &res.Name, &res.Email, &res.Phone,
		&date, &res.Time, &res.Guests, &msgNull, &res.Status,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	res.Date = date.Format(domain.DateLayout)
	if msgNull.Valid {
		res.Message = msgNull.String
	}
	return res, nil
}
