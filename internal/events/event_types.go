package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookCreated      EventType = "book_created"
	EventReaderRegistered EventType = "reader_registered"
	EventLoanIssued       EventType = "loan_issued"
	EventLoanReturned     EventType = "loan_returned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// BookCreatedPayload payload.
type BookCreatedPayload struct {
	BookID int64  `json:"book_id"`
	Name   string `json:"name"`
	Author string `json:"author"`
	Amount int    `json:"amount"`
}

// ReaderRegisteredPayload payload.
type ReaderRegisteredPayload struct {
	ReaderID int64  `json:"reader_id"`
	Email    string `json:"email"`
}

// LoanIssuedPayload payload.
type LoanIssuedPayload struct {
	LoanID   int64 `json:"loan_id"`
	BookID   int64 `json:"book_id"`
	ReaderID int64 `json:"reader_id"`
}

// LoanReturnedPayload payload.
type LoanReturnedPayload struct {
	LoanID int64 `json:"loan_id"`
	BookID int64 `json:"book_id"`
}
