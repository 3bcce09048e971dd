package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/advice-board/internal/model"
)

type AdviceRepository interface {
	Create(ctx context.Context, advice *model.Advice) error
	GetByID(ctx context.Context, id string) (*model.Advice, error)
	DeleteByID(ctx context.Context, id string) error
	ListByProfileID(ctx context.Context, profileID string, offset, limit int) ([]*model.Advice, error)
}

type adviceRepository struct{ db *gorm.DB }

func NewAdviceRepository(db *gorm.DB) AdviceRepository { return &adviceRepository{db: db} }

func (r *adviceRepository) Create(ctx context.Context, a *model.Advice) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adviceRepository) GetByID(ctx context.Context, id string) (*model.Advice, error) {
	var a model.Advice
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adviceRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Advice{}).Error
}

func (r *adviceRepository) ListByProfileID(ctx context.Context, profileID string, offset, limit int) ([]*model.Advice, error) {
	var res []*model.Advice
	err := r.db.WithContext(ctx).
		Where("target_profile_id = ?", profileID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}
