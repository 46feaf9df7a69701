package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type RestrictedColourRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]types.RestrictedColour, error)
	ListByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) ([]types.RestrictedColour, error)
	Create(ctx context.Context, tx *gorm.DB, restricted *types.RestrictedColour) (*types.RestrictedColour, error)
	Delete(ctx context.Context, tx *gorm.DB, weddingType, colourName string) error
}

type restrictedColourRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRestrictedColourRepo(db *gorm.DB, baseLog *logger.Logger) RestrictedColourRepo {
	repoLog := baseLog.With("repo", "RestrictedColourRepo")
	return &restrictedColourRepo{db: db, log: repoLog}
}

func (rcr *restrictedColourRepo) List(ctx context.Context, tx *gorm.DB) ([]types.RestrictedColour, error) {
	transaction := tx
	if transaction == nil {
		transaction = rcr.db
	}
	var results []types.RestrictedColour
	if err := transaction.WithContext(ctx).
		Order("wedding_type ASC, restricted_colour ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rcr *restrictedColourRepo) ListByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) ([]types.RestrictedColour, error) {
	transaction := tx
	if transaction == nil {
		transaction = rcr.db
	}
	var results []types.RestrictedColour
	if err := transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?)", weddingType).
		Order("restricted_colour ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (rcr *restrictedColourRepo) Create(ctx context.Context, tx *gorm.DB, restricted *types.RestrictedColour) (*types.RestrictedColour, error) {
	transaction := tx
	if transaction == nil {
		transaction = rcr.db
	}
	if err := transaction.WithContext(ctx).Create(restricted).Error; err != nil {
		return nil, err
	}
	return restricted, nil
}

func (rcr *restrictedColourRepo) Delete(ctx context.Context, tx *gorm.DB, weddingType, colourName string) error {
	transaction := tx
	if transaction == nil {
		transaction = rcr.db
	}
	return transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?) AND lower(restricted_colour) = lower(?)", weddingType, colourName).
		Delete(&types.RestrictedColour{}).Error
}
