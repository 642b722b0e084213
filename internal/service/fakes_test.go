package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/library-service/internal/domain"
)

type fakeBookRepo struct {
	books     map[int64]*domain.Book
	nextID    int64
	createErr error
	listCalls int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[int64]*domain.Book), nextID: 1}
}

func (f *fakeBookRepo) Create(_ context.Context, book *domain.Book) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.books {
		if existing.ISNB != nil && book.ISNB != nil && *existing.ISNB == *book.ISNB {
			return domain.ErrDuplicateISBN
		}
	}
	book.ID = f.nextID
	f.nextID++
	clone := *book
	f.books[book.ID] = &clone
	return nil
}

func (f *fakeBookRepo) List(_ context.Context) ([]domain.Book, error) {
	f.listCalls++
	out := make([]domain.Book, 0, len(f.books))
	for _, book := range f.books {
		out = append(out, *book)
	}
	return out, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id int64) (*domain.Book, error) {
	book, ok := f.books[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *book
	return &clone, nil
}

func (f *fakeBookRepo) UpdateAmount(_ context.Context, id int64, amount int) error {
	book, ok := f.books[id]
	if !ok {
		return pgx.ErrNoRows
	}
	book.Amount = amount
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.books, id)
	return nil
}

type fakeReaderRepo struct {
	readers map[int64]*domain.Reader
	nextID  int64
}

func newFakeReaderRepo() *fakeReaderRepo {
	return &fakeReaderRepo{readers: make(map[int64]*domain.Reader), nextID: 1}
}

func (f *fakeReaderRepo) Create(_ context.Context, reader *domain.Reader) error {
	for _, existing := range f.readers {
		if existing.Email == reader.Email {
			return domain.ErrDuplicateEmail
		}
	}
	reader.ID = f.nextID
	f.nextID++
	clone := *reader
	f.readers[reader.ID] = &clone
	return nil
}

func (f *fakeReaderRepo) GetByID(_ context.Context, id int64) (*domain.Reader, error) {
	reader, ok := f.readers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *reader
	return &clone, nil
}

func (f *fakeReaderRepo) GetByEmail(_ context.Context, email string) (*domain.Reader, error) {
	for _, reader := range f.readers {
		if reader.Email == email {
			clone := *reader
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeReaderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.readers[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.readers, id)
	return nil
}

type fakeLoanRepo struct {
	loans      map[int64]*domain.Loan
	nextID     int64
	books      *fakeBookRepo
	issueErr   error
	closeErr   error
	issueCalls int
	closeCalls int
}

func newFakeLoanRepo(books *fakeBookRepo) *fakeLoanRepo {
	return &fakeLoanRepo{loans: make(map[int64]*domain.Loan), nextID: 1, books: books}
}

func (f *fakeLoanRepo) GetByID(_ context.Context, id int64) (*domain.Loan, error) {
	loan, ok := f.loans[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *loan
	return &clone, nil
}

func (f *fakeLoanRepo) CountOpenByReader(_ context.Context, readerID int64) (int, error) {
	count := 0
	for _, loan := range f.loans {
		if loan.ReaderID == readerID && loan.DateOfReturn == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeLoanRepo) IssueLoan(_ context.Context, bookID, readerID int64, issuedAt time.Time) (*domain.Loan, error) {
	f.issueCalls++
	if f.issueErr != nil {
		return nil, f.issueErr
	}
	book, ok := f.books.books[bookID]
	if !ok || book.Amount == 0 {
		return nil, domain.ErrOutOfStock
	}
	book.Amount--
	loan := &domain.Loan{ID: f.nextID, BookID: bookID, ReaderID: readerID, DateOfIssue: issuedAt}
	f.nextID++
	f.loans[loan.ID] = loan
	clone := *loan
	return &clone, nil
}

func (f *fakeLoanRepo) CloseLoan(_ context.Context, loanID, bookID int64, returnedAt time.Time) error {
	f.closeCalls++
	if f.closeErr != nil {
		return f.closeErr
	}
	loan, ok := f.loans[loanID]
	if !ok || loan.BookID != bookID || loan.DateOfReturn != nil {
		return domain.ErrInvalidReturn
	}
	loan.DateOfReturn = &returnedAt
	if book, ok := f.books.books[bookID]; ok {
		book.Amount++
	}
	return nil
}

type fakeLibrarianRepo struct {
	byEmail map[string]*domain.Librarian
	nextID  int64
}

func newFakeLibrarianRepo() *fakeLibrarianRepo {
	return &fakeLibrarianRepo{byEmail: make(map[string]*domain.Librarian), nextID: 1}
}

func (f *fakeLibrarianRepo) Create(_ context.Context, librarian *domain.Librarian) error {
	if _, ok := f.byEmail[librarian.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	librarian.ID = f.nextID
	f.nextID++
	clone := *librarian
	f.byEmail[librarian.Email] = &clone
	return nil
}

func (f *fakeLibrarianRepo) GetByEmail(_ context.Context, email string) (*domain.Librarian, error) {
	librarian, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *librarian
	return &clone, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := f.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
	}
	return nil
}
