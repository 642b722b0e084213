package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/library-service/internal/domain"
)

// ReaderRepository defines persistence access for readers.
type ReaderRepository interface {
	Create(ctx context.Context, reader *domain.Reader) error
	GetByID(ctx context.Context, id int64) (*domain.Reader, error)
	GetByEmail(ctx context.Context, email string) (*domain.Reader, error)
	Delete(ctx context.Context, id int64) error
}

type readerRepository struct {
	db DB
}

// NewReaderRepository returns a Postgres-backed implementation.
func NewReaderRepository(db DB) ReaderRepository {
	return &readerRepository{db: db}
}

func (r *readerRepository) Create(ctx context.Context, reader *domain.Reader) error {
	const query = `
        INSERT INTO readers (fullname, email)
        VALUES ($1, $2)
        RETURNING id`

	err := r.db.QueryRow(ctx, query, reader.Fullname, reader.Email).Scan(&reader.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *readerRepository) GetByID(ctx context.Context, id int64) (*domain.Reader, error) {
	const query = `SELECT id, fullname, email FROM readers WHERE id=$1`

	var reader domain.Reader
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&reader.ID,
		&reader.Fullname,
		&reader.Email,
	); err != nil {
		return nil, err
	}
	return &reader, nil
}

func (r *readerRepository) GetByEmail(ctx context.Context, email string) (*domain.Reader, error) {
	const query = `SELECT id, fullname, email FROM readers WHERE email=$1`

	var reader domain.Reader
	if err := r.db.QueryRow(ctx, query, email).Scan(
		&reader.ID,
		&reader.Fullname,
		&reader.Email,
	); err != nil {
		return nil, err
	}
	return &reader, nil
}

func (r *readerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM readers WHERE id=$1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
