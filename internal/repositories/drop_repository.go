package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "eon-tracker.com/eon-tracker/internal/errors"
	model "eon-tracker.com/eon-tracker/internal/models"
)

type DropRepository struct {
	db *gorm.DB
}

func NewDropRepository(db *gorm.DB) *DropRepository {
	return &DropRepository{db: db}
}

func (r *DropRepository) CreateDrop(ctx context.Context, title, content, createdAt string) (*model.Drop, error) {
	drop := &model.Drop{
		Title:     title,
		Content:   content,
		CreatedAt: createdAt,
	}

	if err := r.db.WithContext(ctx).Create(drop).Error; err != nil {
		return nil, err
	}

	return drop, nil
}

func (r *DropRepository) FindByID(ctx context.Context, id int64) (*model.Drop, error) {
	var drop model.Drop
	err := r.db.WithContext(ctx).First(&drop, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDropNotFound
		}
		return nil, err
	}
	return &drop, nil
}

// List returns drops newest first.
func (r *DropRepository) List(ctx context.Context) ([]model.Drop, error) {
	var drops []model.Drop
	err := r.db.WithContext(ctx).Order("id desc").Find(&drops).Error
	return drops, err
}

func (r *DropRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Drop{}, id).Error
}
