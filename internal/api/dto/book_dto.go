package dto

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/service"
)

// AddBookRequest is the body of POST /book/.
type AddBookRequest struct {
	Name            string  `json:"name"`
	Author          string  `json:"author"`
	YearPublication *int    `json:"year_publication"`
	ISNB            *string `json:"isnb"`
	Amount          int     `json:"amount"`
}

// Validate checks required fields. Amount sign is a business rule handled by
// the catalog service, which maps it to a conflict rather than a 400.
func (r AddBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Author, validation.Required),
	)
}

// ToInput converts the request into a service input.
func (r AddBookRequest) ToInput() service.BookInput {
	return service.BookInput{
		Name:            r.Name,
		Author:          r.Author,
		YearPublication: r.YearPublication,
		ISNB:            r.ISNB,
		Amount:          r.Amount,
	}
}

// UpdateBookRequest is the body of PATCH /book/:id.
type UpdateBookRequest struct {
	Amount int `json:"amount"`
}

// BookResponse is the wire shape of a catalogued book.
type BookResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Author          string  `json:"author"`
	YearPublication *int    `json:"year_publication"`
	ISNB            *string `json:"isnb"`
	Amount          int     `json:"amount"`
}

// NewBookResponse maps a domain book to its wire shape.
func NewBookResponse(book *domain.Book) BookResponse {
	return BookResponse{
		ID:              book.ID,
		Name:            book.Name,
		Author:          book.Author,
		YearPublication: book.YearPublication,
		ISNB:            book.ISNB,
		Amount:          book.Amount,
	}
}

// NewBookListResponse maps a slice of domain books.
func NewBookListResponse(books []domain.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, NewBookResponse(&books[i]))
	}
	return out
}
