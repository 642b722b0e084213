package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/dto"
	"github.com/spec-kit/library-service/internal/service"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

// LibrariansHandler exposes librarian registration and login.
type LibrariansHandler struct {
	auth *service.AuthService
}

// NewLibrariansHandler constructs handler.
func NewLibrariansHandler(authService *service.AuthService) *LibrariansHandler {
	return &LibrariansHandler{auth: authService}
}

// Register handles POST /librarian/register/.
func (h *LibrariansHandler) Register(c *fiber.Ctx) error {
	var req dto.LibrarianRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", dto.ValidationDetails(err))
	}

	if _, err := h.auth.Register(c.UserContext(), req.Email, req.Password); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"librarian": "librarian registered",
	})
}

// Login handles POST /librarian/login/.
func (h *LibrariansHandler) Login(c *fiber.Ctx) error {
	var req dto.LibrarianLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError("invalid payload", dto.ValidationDetails(err))
	}

	token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "Bearer"})
}
