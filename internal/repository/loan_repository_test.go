package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/library-service/internal/domain"
)

func TestLoanRepository_IssueLoan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	issuedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO loans`).
		WithArgs(int64(1), int64(2), issuedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(`UPDATE books SET amount = amount - 1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewLoanRepository(mock)
	loan, err := repo.IssueLoan(context.Background(), 1, 2, issuedAt)
	require.NoError(t, err)
	assert.Equal(t, int64(7), loan.ID)
	assert.Equal(t, int64(1), loan.BookID)
	assert.Equal(t, int64(2), loan.ReaderID)
	assert.True(t, loan.Open())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_IssueLoan_OutOfStock(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	issuedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO loans`).
		WithArgs(int64(1), int64(2), issuedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec(`UPDATE books SET amount = amount - 1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	repo := NewLoanRepository(mock)
	_, err = repo.IssueLoan(context.Background(), 1, 2, issuedAt)
	assert.ErrorIs(t, err, domain.ErrOutOfStock)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_CloseLoan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	returnedAt := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE loans SET date_of_return=`).
		WithArgs(returnedAt, int64(7), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE books SET amount = amount \+ 1`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	repo := NewLoanRepository(mock)
	require.NoError(t, repo.CloseLoan(context.Background(), 7, 1, returnedAt))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_CloseLoan_InvalidReturn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	returnedAt := time.Date(2025, 3, 8, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE loans SET date_of_return=`).
		WithArgs(returnedAt, int64(7), int64(1)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	repo := NewLoanRepository(mock)
	err = repo.CloseLoan(context.Background(), 7, 1, returnedAt)
	assert.ErrorIs(t, err, domain.ErrInvalidReturn)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_CountOpenByReader(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM loans`).
		WithArgs(int64(2)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewLoanRepository(mock)
	count, err := repo.CountOpenByReader(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	assert.NoError(t, mock.ExpectationsWereMet())
}
