package service

import (
	"context"
	"errors"

	"github.com/classfit/class-booking/internal/models"
	"github.com/classfit/class-booking/internal/repository"
	"github.com/classfit/class-booking/pkg/rabbitmq"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrClassNotFound = errors.New("class not found")
	// ErrSlotsExhausted is the business-rule rejection: the class exists but
	// has no slots left. Not a fault, not retryable.
	ErrSlotsExhausted = errors.New("no available slots for this class")
	// ErrBookingConflict is a transient commit conflict; the caller may retry
	// immediately.
	ErrBookingConflict = errors.New("booking conflict, please retry")
)

type BookingService interface {
	Book(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error)
	ListForUser(ctx context.Context, userID uint) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	classRepo   repository.ClassRepository
	publisher   *rabbitmq.Publisher
}

func NewBookingService(bookingRepo repository.BookingRepository, classRepo repository.ClassRepository, publisher *rabbitmq.Publisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		classRepo:   classRepo,
		publisher:   publisher,
	}
}

// Book admits at most available_slots bookings per class, however many callers
// race. The row lock taken in step 1 serializes concurrent attempts on the
// same class; the decrement and the booking insert commit together or not at
// all.
func (s *bookingService) Book(ctx context.Context, classID uint, userID uint, clientName, clientEmail string) (*models.Booking, int, error) {
	var (
		booking   *models.Booking
		remaining int
	)

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the class row
		class, err := s.classRepo.FindByIDForUpdate(ctx, tx, classID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClassNotFound
			}
			return err
		}

		// 2. Admission check
		if class.AvailableSlots <= 0 {
			return ErrSlotsExhausted
		}

		// 3. Guarded decrement
		if err := s.classRepo.DecrementSlots(ctx, tx, classID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotsExhausted
			}
			return err
		}

		// 4. Record the booking in the same transaction
		b := &models.Booking{
			ClassID:     classID,
			UserID:      userID,
			ClientName:  clientName,
			ClientEmail: clientEmail,
		}
		if err := s.bookingRepo.Create(ctx, tx, b); err != nil {
			return err
		}

		booking = b
		remaining = class.AvailableSlots - 1
		return nil
	})
	if err != nil {
		if isSerializationFailure(err) {
			return nil, 0, ErrBookingConflict
		}
		return nil, 0, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("booking.created", booking)
	}
	return booking, remaining, nil
}

func (s *bookingService) ListForUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	return s.bookingRepo.FindByUserID(ctx, userID)
}

// isSerializationFailure reports whether the store aborted the transaction
// because of a concurrent conflicting writer (serialization failure or
// deadlock). Those commits are safe to retry.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
