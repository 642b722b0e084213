package domain

import "errors"

// Sentinel errors surfaced by the repository layer. Services translate them
// into HTTP-facing domain errors.
var (
	// ErrDuplicateISBN is returned when inserting a book whose ISBN is taken.
	ErrDuplicateISBN = errors.New("book with this isbn already exists")

	// ErrDuplicateEmail is returned on unique-email violations for readers
	// and librarians.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrOutOfStock is returned when the conditional stock decrement finds
	// no available copy left.
	ErrOutOfStock = errors.New("no copies of the book available")

	// ErrInvalidReturn is returned when closing a loan that is already
	// closed or that does not reference the supplied book.
	ErrInvalidReturn = errors.New("loan already returned or book mismatch")
)
