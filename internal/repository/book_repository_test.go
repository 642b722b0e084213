package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/library-service/internal/domain"
)

func TestBookRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	year := 1949
	isnb := "978-0-452-28423-4"
	book := &domain.Book{
		Name:            "1984",
		Author:          "George Orwell",
		YearPublication: &year,
		ISNB:            &isnb,
		Amount:          5,
	}

	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs(book.Name, book.Author, book.YearPublication, book.ISNB, book.Amount).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	repo := NewBookRepository(mock)
	require.NoError(t, repo.Create(context.Background(), book))
	assert.Equal(t, int64(42), book.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_Create_DuplicateISBN(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	isnb := "978-0-452-28423-4"
	book := &domain.Book{Name: "1984", Author: "George Orwell", ISNB: &isnb, Amount: 5}

	mock.ExpectQuery(`INSERT INTO books`).
		WithArgs(book.Name, book.Author, book.YearPublication, book.ISNB, book.Amount).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repo := NewBookRepository(mock)
	err = repo.Create(context.Background(), book)
	assert.ErrorIs(t, err, domain.ErrDuplicateISBN)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_UpdateAmount_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE books SET amount=`).
		WithArgs(3, int64(99)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewBookRepository(mock)
	err = repo.UpdateAmount(context.Background(), 99, 3)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	year := 1949
	isnb := "978-0-452-28423-4"
	mock.ExpectQuery(`SELECT id, name, author, year_publication, isnb, amount`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "author", "year_publication", "isnb", "amount"}).
			AddRow(int64(1), "1984", "George Orwell", &year, &isnb, 5))

	repo := NewBookRepository(mock)
	books, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "1984", books[0].Name)
	assert.Equal(t, 5, books[0].Amount)

	assert.NoError(t, mock.ExpectationsWereMet())
}
