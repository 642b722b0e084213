package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/library-service/internal/api/http"
	"github.com/spec-kit/library-service/internal/api/http/handlers"
	"github.com/spec-kit/library-service/internal/auth"
	"github.com/spec-kit/library-service/internal/config"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/observability"
	"github.com/spec-kit/library-service/internal/persistence"
	"github.com/spec-kit/library-service/internal/repository"
	"github.com/spec-kit/library-service/internal/service"
	"github.com/spec-kit/library-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if pool := pg.PoolHandle(); pool != nil {
			if err := persistence.RunMigrations(ctx, pool, cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		} else {
			logger.Warn("no postgres pool available; skipping migrations")
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	tokens, err := auth.LoadTokenManager(cfg.Auth, logger)
	if err != nil {
		logger.Fatal("failed to load token keys", zap.Error(err))
	}

	pool := pg.PoolHandle()
	bookRepo := repository.NewBookRepository(pool)
	readerRepo := repository.NewReaderRepository(pool)
	librarianRepo := repository.NewLibrarianRepository(pool)
	loanRepo := repository.NewLoanRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(librarianRepo, tokens, cfg.Auth.BcryptCost)
	catalogService := service.NewCatalogService(bookRepo, redis, dispatcher, logger)
	readerService := service.NewReaderService(readerRepo, dispatcher)
	inventoryService := service.NewInventoryService(service.InventoryDependencies{
		BookRepo:   bookRepo,
		ReaderRepo: readerRepo,
		LoanRepo:   loanRepo,
		Cache:      redis,
		Dispatcher: dispatcher,
	})

	authMiddleware := auth.NewMiddleware(tokens)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Librarians:     handlers.NewLibrariansHandler(authService),
		Books:          handlers.NewBooksHandler(catalogService),
		Readers:        handlers.NewReadersHandler(readerService),
		Inventory:      handlers.NewInventoryHandler(inventoryService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
