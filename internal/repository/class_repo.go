package repository

import (
	"context"
	"time"

	"github.com/classfit/class-booking/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) error
	FindUpcoming(ctx context.Context, now time.Time) ([]models.Class, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Class, error)
	DecrementSlots(ctx context.Context, tx *gorm.DB, id uint) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) FindUpcoming(ctx context.Context, now time.Time) ([]models.Class, error) {
	var classes []models.Class
	err := r.db.WithContext(ctx).
		Where("starts_at > ?", now).
		Order("starts_at ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

// FindByIDForUpdate acquires a row-level lock on the class within the given
// transaction, serializing concurrent booking attempts on the same class.
func (r *classRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Class, error) {
	var class models.Class
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

// DecrementSlots applies the guarded decrement. The available_slots > 0
// predicate is evaluated in the same statement as the update, so the counter
// can never go negative even if the caller's earlier read was stale.
func (r *classRepository) DecrementSlots(ctx context.Context, tx *gorm.DB, id uint) error {
	res := tx.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ? AND available_slots > 0", id).
		Update("available_slots", gorm.Expr("available_slots - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
