package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"cafesite/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users \(email, password_hash, salt, name, created_at, updated_at\)`).
		WithArgs("admin@cafe.example", "hash", "salt", "Admin", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))

	repo := NewUserRepository(db)
	u := &domain.User{Email: "admin@cafe.example", PasswordHash: "hash", Salt: "salt", Name: "Admin", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, u))
	require.Equal(t, "user-uuid-1", u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		email      string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name:  "success",
			email: "admin@cafe.example",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, password_hash, salt, name, created_at, updated_at`).
					WithArgs("admin@cafe.example").
					WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "salt", "name", "created_at", "updated_at"}).
						AddRow("user-1", "admin@cafe.example", "hash", "salt", "Admin", now, now))
			},
		},
		{
			name:  "not found",
			email: "missing@cafe.example",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, email, password_hash, salt, name, created_at, updated_at`).
					WithArgs("missing@cafe.example").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByEmail(ctx, tt.email)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.Equal(t, "user-1", got.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_Count(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	repo := NewUserRepository(db)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
