package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/types"
)

type StudyPlanRepo interface {
	// Replace deletes any existing plan before creating the new one.
	// There is at most one active plan at a time.
	Replace(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) (*types.StudyPlan, error)
	GetCurrent(ctx context.Context, tx *gorm.DB) (*types.StudyPlan, error)
	DeleteAll(ctx context.Context, tx *gorm.DB) error
	GetSessionByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.StudySession, error)
	GetSessionsInRange(ctx context.Context, tx *gorm.DB, from, to time.Time) ([]*types.StudySession, error)
}

type studyPlanRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyPlanRepo(db *gorm.DB, baseLog *logger.Logger) StudyPlanRepo {
	repoLog := baseLog.With("repo", "StudyPlanRepo")
	return &studyPlanRepo{db: db, log: repoLog}
}

func (pr *studyPlanRepo) Replace(ctx context.Context, tx *gorm.DB, plan *types.StudyPlan) (*types.StudyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	err := transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		if err := inner.Where("1 = 1").Delete(&types.StudySession{}).Error; err != nil {
			return err
		}
		if err := inner.Where("1 = 1").Delete(&types.StudyPlan{}).Error; err != nil {
			return err
		}
		return inner.Create(plan).Error
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (pr *studyPlanRepo) GetCurrent(ctx context.Context, tx *gorm.DB) (*types.StudyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.StudyPlan
	if err := transaction.WithContext(ctx).
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		Order("created_at DESC").
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *studyPlanRepo) DeleteAll(ctx context.Context, tx *gorm.DB) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	return transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		if err := inner.Where("1 = 1").Delete(&types.StudySession{}).Error; err != nil {
			return err
		}
		return inner.Where("1 = 1").Delete(&types.StudyPlan{}).Error
	})
}

func (pr *studyPlanRepo) GetSessionByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var result types.StudySession
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (pr *studyPlanRepo) GetSessionsInRange(ctx context.Context, tx *gorm.DB, from, to time.Time) ([]*types.StudySession, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.StudySession
	if err := transaction.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("seq").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
