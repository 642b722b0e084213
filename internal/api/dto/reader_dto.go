package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/spec-kit/library-service/internal/domain"
)

// AddReaderRequest is the body of POST /reader/.
type AddReaderRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// Validate checks required fields and email format.
func (r AddReaderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Fullname, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// ReaderDataRequest is the body of POST /reader/data.
type ReaderDataRequest struct {
	Email string `json:"email"`
}

// Validate checks the email field.
func (r ReaderDataRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// ReaderResponse is the wire shape of a reader.
type ReaderResponse struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// NewReaderResponse maps a domain reader to its wire shape.
func NewReaderResponse(reader *domain.Reader) ReaderResponse {
	return ReaderResponse{
		ID:       reader.ID,
		Fullname: reader.Fullname,
		Email:    reader.Email,
	}
}
