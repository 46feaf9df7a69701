package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type FoodLocationRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]types.FoodLocation, error)
	GetByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) (*types.FoodLocation, error)
	Create(ctx context.Context, tx *gorm.DB, foodLocation *types.FoodLocation) (*types.FoodLocation, error)
	Update(ctx context.Context, tx *gorm.DB, foodLocation *types.FoodLocation) (*types.FoodLocation, error)
	Delete(ctx context.Context, tx *gorm.DB, weddingType string) error
}

type foodLocationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFoodLocationRepo(db *gorm.DB, baseLog *logger.Logger) FoodLocationRepo {
	repoLog := baseLog.With("repo", "FoodLocationRepo")
	return &foodLocationRepo{db: db, log: repoLog}
}

func (flr *foodLocationRepo) List(ctx context.Context, tx *gorm.DB) ([]types.FoodLocation, error) {
	transaction := tx
	if transaction == nil {
		transaction = flr.db
	}
	var results []types.FoodLocation
	if err := transaction.WithContext(ctx).
		Order("wedding_type ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (flr *foodLocationRepo) GetByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) (*types.FoodLocation, error) {
	transaction := tx
	if transaction == nil {
		transaction = flr.db
	}
	var result types.FoodLocation
	if err := transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?)", weddingType).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (flr *foodLocationRepo) Create(ctx context.Context, tx *gorm.DB, foodLocation *types.FoodLocation) (*types.FoodLocation, error) {
	transaction := tx
	if transaction == nil {
		transaction = flr.db
	}
	if err := transaction.WithContext(ctx).Create(foodLocation).Error; err != nil {
		return nil, err
	}
	return foodLocation, nil
}

func (flr *foodLocationRepo) Update(ctx context.Context, tx *gorm.DB, foodLocation *types.FoodLocation) (*types.FoodLocation, error) {
	transaction := tx
	if transaction == nil {
		transaction = flr.db
	}
	if err := transaction.WithContext(ctx).Save(foodLocation).Error; err != nil {
		return nil, err
	}
	return foodLocation, nil
}

func (flr *foodLocationRepo) Delete(ctx context.Context, tx *gorm.DB, weddingType string) error {
	transaction := tx
	if transaction == nil {
		transaction = flr.db
	}
	return transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?)", weddingType).
		Delete(&types.FoodLocation{}).Error
}
