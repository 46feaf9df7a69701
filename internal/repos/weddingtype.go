package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type WeddingTypeRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]*types.WeddingType, error)
	ListActive(ctx context.Context, tx *gorm.DB) ([]*types.WeddingType, error)
	GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.WeddingType, error)
	Create(ctx context.Context, tx *gorm.DB, weddingType *types.WeddingType) (*types.WeddingType, error)
	Update(ctx context.Context, tx *gorm.DB, weddingType *types.WeddingType) (*types.WeddingType, error)
	DeleteByName(ctx context.Context, tx *gorm.DB, name string) error
}

type weddingTypeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWeddingTypeRepo(db *gorm.DB, baseLog *logger.Logger) WeddingTypeRepo {
	repoLog := baseLog.With("repo", "WeddingTypeRepo")
	return &weddingTypeRepo{db: db, log: repoLog}
}

func (wtr *weddingTypeRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.WeddingType, error) {
	transaction := tx
	if transaction == nil {
		transaction = wtr.db
	}
	var results []*types.WeddingType
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wtr *weddingTypeRepo) ListActive(ctx context.Context, tx *gorm.DB) ([]*types.WeddingType, error) {
	transaction := tx
	if transaction == nil {
		transaction = wtr.db
	}
	var results []*types.WeddingType
	if err := transaction.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (wtr *weddingTypeRepo) GetByName(ctx context.Context, tx *gorm.DB, name string) (*types.WeddingType, error) {
	transaction := tx
	if transaction == nil {
		transaction = wtr.db
	}
	var result types.WeddingType
	if err := transaction.WithContext(ctx).
		Where("lower(name) = lower(?)", name).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (wtr *weddingTypeRepo) Create(ctx context.Context, tx *gorm.DB, weddingType *types.WeddingType) (*types.WeddingType, error) {
	transaction := tx
	if transaction == nil {
		transaction = wtr.db
	}
	if err := transaction.WithContext(ctx).Create(weddingType).Error; err != nil {
		return nil, err
	}
	return weddingType, nil
}

func (wtr *weddingTypeRepo) Update(ctx context.Context, tx *gorm.DB, weddingType *types.WeddingType) (*types.WeddingType, error) {
	transaction := tx
	if transaction == nil {
		transaction = wtr.db
	}
	if err := transaction.WithContext(ctx).Save(weddingType).Error; err != nil {
		return nil, err
	}
	return weddingType, nil
}

func (wtr *weddingTypeRepo) DeleteByName(ctx context.Context, tx *gorm.DB, name string) error {
	transaction := tx
	if transaction == nil {
		transaction = wtr.db
	}
	return transaction.WithContext(ctx).
		Where("lower(name) = lower(?)", name).
		Delete(&types.WeddingType{}).Error
}
