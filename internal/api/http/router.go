package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/library-service/internal/api/http/handlers"
	"github.com/spec-kit/library-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Librarians     *handlers.LibrariansHandler
	Books          *handlers.BooksHandler
	Readers        *handlers.ReadersHandler
	Inventory      *handlers.InventoryHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Reader and inventory endpoints require a
// valid access token; the book catalog and librarian auth endpoints do not.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	librarian := app.Group("/librarian")
	librarian.Post("/register/", cfg.Librarians.Register)
	librarian.Post("/login/", cfg.Librarians.Login)

	book := app.Group("/book")
	book.Post("/", cfg.Books.Add)
	book.Get("/", cfg.Books.List)
	book.Get("/:id", cfg.Books.GetByID)
	book.Patch("/:id", cfg.Books.Update)
	book.Delete("/:id", cfg.Books.Delete)

	reader := app.Group("/reader", cfg.AuthMiddleware.Handle)
	reader.Post("/", cfg.Readers.Add)
	reader.Post("/data", cfg.Readers.GetByEmail)
	reader.Delete("/:id", cfg.Readers.Delete)

	inventory := app.Group("/inventory", cfg.AuthMiddleware.Handle)
	inventory.Post("/issue/", cfg.Inventory.Issue)
	inventory.Post("/return/", cfg.Inventory.Return)
}
