package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/types"
)

type TimeSlotRepo interface {
	Create(ctx context.Context, tx *gorm.DB, slots []*types.TimeSlot) ([]*types.TimeSlot, error)
	GetAll(ctx context.Context, tx *gorm.DB) ([]*types.TimeSlot, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TimeSlot, error)
	Update(ctx context.Context, tx *gorm.DB, slot *types.TimeSlot) (*types.TimeSlot, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type timeSlotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTimeSlotRepo(db *gorm.DB, baseLog *logger.Logger) TimeSlotRepo {
	repoLog := baseLog.With("repo", "TimeSlotRepo")
	return &timeSlotRepo{db: db, log: repoLog}
}

func (tr *timeSlotRepo) Create(ctx context.Context, tx *gorm.DB, slots []*types.TimeSlot) ([]*types.TimeSlot, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if len(slots) == 0 {
		return []*types.TimeSlot{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (tr *timeSlotRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.TimeSlot, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.TimeSlot
	if err := transaction.WithContext(ctx).
		Order("day, start_time").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *timeSlotRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TimeSlot, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.TimeSlot
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (tr *timeSlotRepo) Update(ctx context.Context, tx *gorm.DB, slot *types.TimeSlot) (*types.TimeSlot, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	if err := transaction.WithContext(ctx).Save(slot).Error; err != nil {
		return nil, err
	}
	return slot, nil
}

func (tr *timeSlotRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.TimeSlot{}).Error
}
