package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/dto"
	"github.com/spec-kit/library-service/internal/service"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

// BooksHandler exposes the book catalog endpoints.
type BooksHandler struct {
	catalog *service.CatalogService
}

// NewBooksHandler constructs handler.
func NewBooksHandler(catalogService *service.CatalogService) *BooksHandler {
	return &BooksHandler{catalog: catalogService}
}

// Add handles POST /book/.
func (h *BooksHandler) Add(c *fiber.Ctx) error {
	var req dto.AddBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", dto.ValidationDetails(err))
	}

	book, err := h.catalog.AddBook(c.UserContext(), req.ToInput())
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"book": dto.NewBookResponse(book),
	})
}

// List handles GET /book/.
func (h *BooksHandler) List(c *fiber.Ctx) error {
	books, err := h.catalog.ListBooks(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"books": dto.NewBookListResponse(books)})
}

// GetByID handles GET /book/:id.
func (h *BooksHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	book, err := h.catalog.GetBook(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"book": dto.NewBookResponse(book)})
}

// Update handles PATCH /book/:id.
func (h *BooksHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if err := h.catalog.UpdateAmount(c.UserContext(), id, req.Amount); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"update": "successfully"})
}

// Delete handles DELETE /book/:id.
func (h *BooksHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalog.DeleteBook(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"delete": "successfully"})
}

// pathID parses the :id path parameter, requiring a positive integer.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("id must be a positive integer", nil)
	}
	return int64(id), nil
}
