package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type ColorMappingRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]types.ColorMapping, error)
	Get(ctx context.Context, tx *gorm.DB, colorName string) (*types.ColorMapping, error)
	Create(ctx context.Context, tx *gorm.DB, mapping *types.ColorMapping) (*types.ColorMapping, error)
	Update(ctx context.Context, tx *gorm.DB, mapping *types.ColorMapping) (*types.ColorMapping, error)
	Delete(ctx context.Context, tx *gorm.DB, colorName string) error
}

type colorMappingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewColorMappingRepo(db *gorm.DB, baseLog *logger.Logger) ColorMappingRepo {
	repoLog := baseLog.With("repo", "ColorMappingRepo")
	return &colorMappingRepo{db: db, log: repoLog}
}

func (cmr *colorMappingRepo) List(ctx context.Context, tx *gorm.DB) ([]types.ColorMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = cmr.db
	}
	var results []types.ColorMapping
	if err := transaction.WithContext(ctx).
		Order("color_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cmr *colorMappingRepo) Get(ctx context.Context, tx *gorm.DB, colorName string) (*types.ColorMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = cmr.db
	}
	var result types.ColorMapping
	if err := transaction.WithContext(ctx).
		Where("lower(color_name) = lower(?)", colorName).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (cmr *colorMappingRepo) Create(ctx context.Context, tx *gorm.DB, mapping *types.ColorMapping) (*types.ColorMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = cmr.db
	}
	if err := transaction.WithContext(ctx).Create(mapping).Error; err != nil {
		return nil, err
	}
	return mapping, nil
}

func (cmr *colorMappingRepo) Update(ctx context.Context, tx *gorm.DB, mapping *types.ColorMapping) (*types.ColorMapping, error) {
	transaction := tx
	if transaction == nil {
		transaction = cmr.db
	}
	if err := transaction.WithContext(ctx).Save(mapping).Error; err != nil {
		return nil, err
	}
	return mapping, nil
}

func (cmr *colorMappingRepo) Delete(ctx context.Context, tx *gorm.DB, colorName string) error {
	transaction := tx
	if transaction == nil {
		transaction = cmr.db
	}
	return transaction.WithContext(ctx).
		Where("lower(color_name) = lower(?)", colorName).
		Delete(&types.ColorMapping{}).Error
}
