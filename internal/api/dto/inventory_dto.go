package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IssueBookRequest is the body of POST /inventory/issue/.
type IssueBookRequest struct {
	BookID   int64 `json:"book_id"`
	ReaderID int64 `json:"reader_id"`
}

// Validate requires positive identifiers.
func (r IssueBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.ReaderID, validation.Required, validation.Min(int64(1))),
	)
}

// ReturnBookRequest is the body of POST /inventory/return/.
type ReturnBookRequest struct {
	ID     int64 `json:"id"`
	BookID int64 `json:"book_id"`
}

// Validate requires positive identifiers.
func (r ReturnBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.BookID, validation.Required, validation.Min(int64(1))),
	)
}
