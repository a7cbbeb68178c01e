package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/classfit/class-booking/internal/models"
	"github.com/classfit/class-booking/internal/repository"
	"github.com/classfit/class-booking/pkg/rabbitmq"
)

var ErrInvalidCapacity = errors.New("capacity must not be negative")

type ClassService interface {
	CreateClass(ctx context.Context, class *models.Class) error
	ListUpcoming(ctx context.Context, now time.Time) ([]models.Class, error)
}

type classService struct {
	classRepo repository.ClassRepository
	publisher *rabbitmq.Publisher
}

func NewClassService(classRepo repository.ClassRepository, publisher *rabbitmq.Publisher) ClassService {
	return &classService{classRepo: classRepo, publisher: publisher}
}

func (s *classService) CreateClass(ctx context.Context, class *models.Class) error {
	if class.Capacity < 0 {
		return ErrInvalidCapacity
	}
	class.AvailableSlots = class.Capacity

	if err := s.classRepo.Create(ctx, class); err != nil {
		return fmt.Errorf("create class: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("class.created", class)
	}
	return nil
}

func (s *classService) ListUpcoming(ctx context.Context, now time.Time) ([]models.Class, error) {
	return s.classRepo.FindUpcoming(ctx, now)
}
