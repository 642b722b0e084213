package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/library-service/internal/domain"
)

// LoanRepository defines persistence access for loans, including the atomic
// issue and return operations that pair a loan write with a stock update.
type LoanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	CountOpenByReader(ctx context.Context, readerID int64) (int, error)
	// IssueLoan inserts an open loan and decrements the book's amount in one
	// transaction. Returns domain.ErrOutOfStock when no copy is left, which
	// guards concurrent issues of the last copy.
	IssueLoan(ctx context.Context, bookID, readerID int64, issuedAt time.Time) (*domain.Loan, error)
	// CloseLoan sets the loan's return timestamp and increments the book's
	// amount in one transaction. Returns domain.ErrInvalidReturn when the
	// loan is already closed or does not reference the given book.
	CloseLoan(ctx context.Context, loanID, bookID int64, returnedAt time.Time) error
}

type loanRepository struct {
	db DB
}

// NewLoanRepository returns a Postgres-backed implementation.
func NewLoanRepository(db DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	const query = `
        SELECT id, book_id, reader_id, date_of_issue, date_of_return
        FROM loans WHERE id=$1`

	var loan domain.Loan
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&loan.ID,
		&loan.BookID,
		&loan.ReaderID,
		&loan.DateOfIssue,
		&loan.DateOfReturn,
	); err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) CountOpenByReader(ctx context.Context, readerID int64) (int, error) {
	const query = `
        SELECT COUNT(*) FROM loans
        WHERE reader_id=$1 AND date_of_return IS NULL`

	var count int
	if err := r.db.QueryRow(ctx, query, readerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *loanRepository) IssueLoan(ctx context.Context, bookID, readerID int64, issuedAt time.Time) (*domain.Loan, error) {
	const insertLoan = `
        INSERT INTO loans (book_id, reader_id, date_of_issue)
        VALUES ($1, $2, $3)
        RETURNING id`
	const decrementStock = `
        UPDATE books SET amount = amount - 1
        WHERE id=$1 AND amount > 0`

	loan := &domain.Loan{BookID: bookID, ReaderID: readerID, DateOfIssue: issuedAt}

	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertLoan, bookID, readerID, issuedAt).Scan(&loan.ID); err != nil {
			return err
		}
		cmd, err := tx.Exec(ctx, decrementStock, bookID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrOutOfStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (r *loanRepository) CloseLoan(ctx context.Context, loanID, bookID int64, returnedAt time.Time) error {
	const closeLoan = `
        UPDATE loans SET date_of_return=$1
        WHERE id=$2 AND book_id=$3 AND date_of_return IS NULL`
	const incrementStock = `
        UPDATE books SET amount = amount + 1
        WHERE id=$1`

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, closeLoan, returnedAt, loanID, bookID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return domain.ErrInvalidReturn
		}
		if _, err := tx.Exec(ctx, incrementStock, bookID); err != nil {
			return err
		}
		return nil
	})
}
