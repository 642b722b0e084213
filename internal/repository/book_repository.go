package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/library-service/internal/domain"
)

// BookRepository defines persistence access for the book catalog. Stock
// mutations that belong to the inventory workflow live on LoanRepository.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	List(ctx context.Context) ([]domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	UpdateAmount(ctx context.Context, id int64, amount int) error
	Delete(ctx context.Context, id int64) error
}

type bookRepository struct {
	db DB
}

// NewBookRepository returns a Postgres-backed implementation.
func NewBookRepository(db DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	const query = `
        INSERT INTO books (name, author, year_publication, isnb, amount)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	err := r.db.QueryRow(ctx, query,
		book.Name,
		book.Author,
		book.YearPublication,
		book.ISNB,
		book.Amount,
	).Scan(&book.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateISBN
		}
		return err
	}
	return nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	const query = `
        SELECT id, name, author, year_publication, isnb, amount
        FROM books ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]domain.Book, 0)
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.Name,
			&book.Author,
			&book.YearPublication,
			&book.ISNB,
			&book.Amount,
		); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	const query = `
        SELECT id, name, author, year_publication, isnb, amount
        FROM books WHERE id=$1`

	var book domain.Book
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Name,
		&book.Author,
		&book.YearPublication,
		&book.ISNB,
		&book.Amount,
	); err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) UpdateAmount(ctx context.Context, id int64, amount int) error {
	const query = `UPDATE books SET amount=$1 WHERE id=$2`

	cmd, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id=$1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
