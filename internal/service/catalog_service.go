package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/repository"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

const (
	bookListCacheKey = "books:all"
	bookCacheTTL     = 5 * time.Minute
)

// BookCache is the read-through cache used for catalog reads. Implemented by
// persistence.Redis; a nil cache disables caching.
type BookCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// BookInput describes book creation payload.
type BookInput struct {
	Name            string
	Author          string
	YearPublication *int
	ISNB            *string
	Amount          int
}

// CatalogService coordinates book catalog CRUD.
type CatalogService struct {
	books      repository.BookRepository
	cache      BookCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewCatalogService builds the service.
func NewCatalogService(books repository.BookRepository, cache BookCache, dispatcher events.Dispatcher, logger *zap.Logger) *CatalogService {
	return &CatalogService{books: books, cache: cache, dispatcher: dispatcher, logger: logger}
}

// AddBook catalogues a new book.
func (s *CatalogService) AddBook(ctx context.Context, input BookInput) (*domain.Book, error) {
	if input.Amount < 0 {
		return nil, apperrors.NewConflict("book amount cannot be negative", nil)
	}

	book := &domain.Book{
		Name:            input.Name,
		Author:          input.Author,
		YearPublication: input.YearPublication,
		ISNB:            input.ISNB,
		Amount:          input.Amount,
	}
	if err := s.books.Create(ctx, book); err != nil {
		if errors.Is(err, domain.ErrDuplicateISBN) {
			return nil, apperrors.NewConflict("book with this isbn already exists", nil)
		}
		return nil, err
	}

	s.invalidate(ctx, bookListCacheKey)
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventBookCreated, events.BookCreatedPayload{
			BookID: book.ID,
			Name:   book.Name,
			Author: book.Author,
			Amount: book.Amount,
		}))
	}
	return book, nil
}

// ListBooks returns all catalogued books, serving from cache when possible.
func (s *CatalogService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if s.cache != nil {
		var cached []domain.Book
		if hit, err := s.cache.GetJSON(ctx, bookListCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	books, err := s.books.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, bookListCacheKey, books, bookCacheTTL); err != nil {
			s.logger.Debug("book list cache write failed", zap.Error(err))
		}
	}
	return books, nil
}

// GetBook returns one book by id.
func (s *CatalogService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	key := bookCacheKey(id)
	if s.cache != nil {
		var cached domain.Book
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("book", map[string]any{"book_id": id})
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, book, bookCacheTTL); err != nil {
			s.logger.Debug("book cache write failed", zap.Error(err))
		}
	}
	return book, nil
}

// UpdateAmount sets a book's available amount.
func (s *CatalogService) UpdateAmount(ctx context.Context, id int64, amount int) error {
	if amount < 0 {
		return apperrors.NewConflict("book amount cannot be negative", nil)
	}
	if err := s.books.UpdateAmount(ctx, id, amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("book", map[string]any{"book_id": id})
		}
		return err
	}
	s.invalidate(ctx, bookListCacheKey, bookCacheKey(id))
	return nil
}

// DeleteBook removes a book from the catalog.
func (s *CatalogService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.books.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("book", map[string]any{"book_id": id})
		}
		return err
	}
	s.invalidate(ctx, bookListCacheKey, bookCacheKey(id))
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Debug("cache invalidation failed", zap.Error(err))
	}
}

func bookCacheKey(id int64) string {
	return fmt.Sprintf("books:%d", id)
}
