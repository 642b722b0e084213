package domain

import "time"

// MaxOpenLoans is the fixed cap of simultaneously open loans per reader.
const MaxOpenLoans = 3

// Loan records one book copy issued to one reader. A loan is open while
// DateOfReturn is nil and closed once it is set. Loans are never deleted.
type Loan struct {
	ID           int64
	BookID       int64
	ReaderID     int64
	DateOfIssue  time.Time
	DateOfReturn *time.Time
}

// Open reports whether the loan has not been returned yet.
func (l *Loan) Open() bool {
	return l.DateOfReturn == nil
}
