package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/dto"
	"github.com/spec-kit/library-service/internal/service"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

// InventoryHandler exposes the issue/return workflow.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventoryService}
}

// Issue handles POST /inventory/issue/.
func (h *InventoryHandler) Issue(c *fiber.Ctx) error {
	var req dto.IssueBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", dto.ValidationDetails(err))
	}

	loan, err := h.inventory.IssueBook(c.UserContext(), req.BookID, req.ReaderID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"issue":   "book issued",
		"loan_id": loan.ID,
	})
}

// Return handles POST /inventory/return/.
func (h *InventoryHandler) Return(c *fiber.Ctx) error {
	var req dto.ReturnBookRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", dto.ValidationDetails(err))
	}

	if err := h.inventory.ReturnBook(c.UserContext(), req.ID, req.BookID); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"return": "book returned"})
}
