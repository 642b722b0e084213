package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/repository"
	apperrors "github.com/spec-kit/library-service/pkg/util"
)

// ReaderService coordinates reader registration and lookup.
type ReaderService struct {
	readers    repository.ReaderRepository
	dispatcher events.Dispatcher
}

// NewReaderService builds the service.
func NewReaderService(readers repository.ReaderRepository, dispatcher events.Dispatcher) *ReaderService {
	return &ReaderService{readers: readers, dispatcher: dispatcher}
}

// RegisterReader adds a new reader.
func (s *ReaderService) RegisterReader(ctx context.Context, fullname, email string) (*domain.Reader, error) {
	reader := &domain.Reader{Fullname: fullname, Email: email}
	if err := s.readers.Create(ctx, reader); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperrors.NewConflict("reader with this email already exists", nil)
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventReaderRegistered, events.ReaderRegisteredPayload{
			ReaderID: reader.ID,
			Email:    reader.Email,
		}))
	}
	return reader, nil
}

// GetReaderByEmail looks a reader up by email.
func (s *ReaderService) GetReaderByEmail(ctx context.Context, email string) (*domain.Reader, error) {
	reader, err := s.readers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("reader", map[string]any{"email": email})
		}
		return nil, err
	}
	return reader, nil
}

// DeleteReader removes a reader.
func (s *ReaderService) DeleteReader(ctx context.Context, id int64) error {
	if err := s.readers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("reader", map[string]any{"reader_id": id})
		}
		return err
	}
	return nil
}
