package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type CulturalColorRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]types.CulturalColor, error)
	ListByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) ([]types.CulturalColor, error)
	Get(ctx context.Context, tx *gorm.DB, weddingType, colourName string) (*types.CulturalColor, error)
	Create(ctx context.Context, tx *gorm.DB, color *types.CulturalColor) (*types.CulturalColor, error)
	Update(ctx context.Context, tx *gorm.DB, color *types.CulturalColor) (*types.CulturalColor, error)
	Delete(ctx context.Context, tx *gorm.DB, weddingType, colourName string) error
}

type culturalColorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCulturalColorRepo(db *gorm.DB, baseLog *logger.Logger) CulturalColorRepo {
	repoLog := baseLog.With("repo", "CulturalColorRepo")
	return &culturalColorRepo{db: db, log: repoLog}
}

func (ccr *culturalColorRepo) List(ctx context.Context, tx *gorm.DB) ([]types.CulturalColor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	var results []types.CulturalColor
	if err := transaction.WithContext(ctx).
		Order("wedding_type ASC, colour_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ccr *culturalColorRepo) ListByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) ([]types.CulturalColor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	var results []types.CulturalColor
	if err := transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?)", weddingType).
		Order("colour_name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ccr *culturalColorRepo) Get(ctx context.Context, tx *gorm.DB, weddingType, colourName string) (*types.CulturalColor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	var result types.CulturalColor
	if err := transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?) AND lower(colour_name) = lower(?)", weddingType, colourName).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ccr *culturalColorRepo) Create(ctx context.Context, tx *gorm.DB, color *types.CulturalColor) (*types.CulturalColor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	if err := transaction.WithContext(ctx).Create(color).Error; err != nil {
		return nil, err
	}
	return color, nil
}

func (ccr *culturalColorRepo) Update(ctx context.Context, tx *gorm.DB, color *types.CulturalColor) (*types.CulturalColor, error) {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	if err := transaction.WithContext(ctx).Save(color).Error; err != nil {
		return nil, err
	}
	return color, nil
}

func (ccr *culturalColorRepo) Delete(ctx context.Context, tx *gorm.DB, weddingType, colourName string) error {
	transaction := tx
	if transaction == nil {
		transaction = ccr.db
	}
	return transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?) AND lower(colour_name) = lower(?)", weddingType, colourName).
		Delete(&types.CulturalColor{}).Error
}
