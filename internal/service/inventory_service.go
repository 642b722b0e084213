package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/repository"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

// InventoryService orchestrates the issue/return workflow: it validates the
// cross-entity preconditions and delegates the paired writes to the loan
// repository, which commits them in one transaction.
type InventoryService struct {
	books      repository.BookRepository
	readers    repository.ReaderRepository
	loans      repository.LoanRepository
	cache      BookCache
	dispatcher events.Dispatcher
}

// InventoryDependencies bundles repositories for the inventory service.
type InventoryDependencies struct {
	BookRepo   repository.BookRepository
	ReaderRepo repository.ReaderRepository
	LoanRepo   repository.LoanRepository
	Cache      BookCache
	Dispatcher events.Dispatcher
}

// NewInventoryService constructs the service.
func NewInventoryService(deps InventoryDependencies) *InventoryService {
	return &InventoryService{
		books:      deps.BookRepo,
		readers:    deps.ReaderRepo,
		loans:      deps.LoanRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// IssueBook issues one copy of a book to a reader. Preconditions are checked
// in order and each failure aborts the whole operation: book exists, reader
// exists, reader is under the loan cap, a copy is available. The loan insert
// and the stock decrement then commit atomically; the decrement is
// conditional on amount > 0, so two concurrent issues of the last copy
// cannot both succeed.
func (s *InventoryService) IssueBook(ctx context.Context, bookID, readerID int64) (*domain.Loan, error) {
	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", map[string]any{"book_id": bookID})
		}
		return nil, err
	}

	if _, err := s.readers.GetByID(ctx, readerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("reader", map[string]any{"reader_id": readerID})
		}
		return nil, err
	}

	open, err := s.loans.CountOpenByReader(ctx, readerID)
	if err != nil {
		return nil, err
	}
	if open >= domain.MaxOpenLoans {
		return nil, apperrors.NewConflict("loan limit exceeded", map[string]any{
			"reader_id":  readerID,
			"open_loans": open,
			"limit":      domain.MaxOpenLoans,
		})
	}

	if book.Amount == 0 {
		return nil, apperrors.NewConflict("book is out of stock", map[string]any{"book_id": bookID})
	}

	loan, err := s.loans.IssueLoan(ctx, bookID, readerID, time.Now().UTC())
	if err != nil {
		// the amount check above can lose a race with a concurrent issue
		if errors.Is(err, domain.ErrOutOfStock) {
			return nil, apperrors.NewConflict("book is out of stock", map[string]any{"book_id": bookID})
		}
		return nil, err
	}

	s.invalidateBook(ctx, bookID)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventLoanIssued, events.LoanIssuedPayload{
			LoanID:   loan.ID,
			BookID:   bookID,
			ReaderID: readerID,
		}))
	}
	return loan, nil
}

// ReturnBook closes a loan and puts the copy back on the shelf. Returning a
// loan that is already closed, or naming a book the loan does not reference,
// is rejected as an invalid return.
func (s *InventoryService) ReturnBook(ctx context.Context, loanID, bookID int64) error {
	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("loan", map[string]any{"loan_id": loanID})
		}
		return err
	}
	if !loan.Open() || loan.BookID != bookID {
		return apperrors.NewConflict("loan already returned or book mismatch", map[string]any{
			"loan_id": loanID,
			"book_id": bookID,
		})
	}

	if err := s.loans.CloseLoan(ctx, loanID, bookID, time.Now().UTC()); err != nil {
		// the openness check above can lose a race with a concurrent return
		if errors.Is(err, domain.ErrInvalidReturn) {
			return apperrors.NewConflict("loan already returned or book mismatch", map[string]any{
				"loan_id": loanID,
				"book_id": bookID,
			})
		}
		return err
	}

	s.invalidateBook(ctx, bookID)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventLoanReturned, events.LoanReturnedPayload{
			LoanID: loanID,
			BookID: bookID,
		}))
	}
	return nil
}

// invalidateBook drops the cached catalog entries after a stock change so
// reads observe the post-issue amount.
func (s *InventoryService) invalidateBook(ctx context.Context, bookID int64) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, bookListCacheKey, bookCacheKey(bookID))
}
