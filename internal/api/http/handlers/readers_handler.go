package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/dto"
	"github.com/spec-kit/library-service/internal/service"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

// ReadersHandler exposes reader management endpoints.
type ReadersHandler struct {
	readers *service.ReaderService
}

// NewReadersHandler constructs handler.
func NewReadersHandler(readerService *service.ReaderService) *ReadersHandler {
	return &ReadersHandler{readers: readerService}
}

// Add handles POST /reader/.
func (h *ReadersHandler) Add(c *fiber.Ctx) error {
	var req dto.AddReaderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", dto.ValidationDetails(err))
	}

	reader, err := h.readers.RegisterReader(c.UserContext(), req.Fullname, req.Email)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"reader": dto.NewReaderResponse(reader),
	})
}

// GetByEmail handles POST /reader/data.
func (h *ReadersHandler) GetByEmail(c *fiber.Ctx) error {
	var req dto.ReaderDataRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", dto.ValidationDetails(err))
	}

	reader, err := h.readers.GetReaderByEmail(c.UserContext(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"reader": dto.NewReaderResponse(reader)})
}

// Delete handles DELETE /reader/:id.
func (h *ReadersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.readers.DeleteReader(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"delete": "successfully"})
}
