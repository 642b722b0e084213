package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/library-service/internal/domain"
)

// LibrarianRepository defines persistence access for librarian accounts.
type LibrarianRepository interface {
	Create(ctx context.Context, librarian *domain.Librarian) error
	GetByEmail(ctx context.Context, email string) (*domain.Librarian, error)
}

type librarianRepository struct {
	db DB
}

// NewLibrarianRepository returns a Postgres-backed implementation.
func NewLibrarianRepository(db DB) LibrarianRepository {
	return &librarianRepository{db: db}
}

func (r *librarianRepository) Create(ctx context.Context, librarian *domain.Librarian) error {
	const query = `
        INSERT INTO librarians (email, password_hash)
        VALUES ($1, $2)
        RETURNING id`

	err := r.db.QueryRow(ctx, query, librarian.Email, librarian.PasswordHash).Scan(&librarian.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *librarianRepository) GetByEmail(ctx context.Context, email string) (*domain.Librarian, error) {
	const query = `SELECT id, email, password_hash FROM librarians WHERE email=$1`

	var librarian domain.Librarian
	if err := r.db.QueryRow(ctx, query, email).Scan(
		&librarian.ID,
		&librarian.Email,
		&librarian.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &librarian, nil
}
