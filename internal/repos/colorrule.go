package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type ColorRuleRepo interface {
	List(ctx context.Context, tx *gorm.DB) ([]types.ColorRule, error)
	ListByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) ([]types.ColorRule, error)
	Get(ctx context.Context, tx *gorm.DB, weddingType, brideColour string) (*types.ColorRule, error)
	Create(ctx context.Context, tx *gorm.DB, rule *types.ColorRule) (*types.ColorRule, error)
	Update(ctx context.Context, tx *gorm.DB, rule *types.ColorRule) (*types.ColorRule, error)
	Delete(ctx context.Context, tx *gorm.DB, weddingType, brideColour string) error
}

type colorRuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewColorRuleRepo(db *gorm.DB, baseLog *logger.Logger) ColorRuleRepo {
	repoLog := baseLog.With("repo", "ColorRuleRepo")
	return &colorRuleRepo{db: db, log: repoLog}
}

func (crr *colorRuleRepo) List(ctx context.Context, tx *gorm.DB) ([]types.ColorRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = crr.db
	}
	var results []types.ColorRule
	if err := transaction.WithContext(ctx).
		Order("wedding_type ASC, bride_colour ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (crr *colorRuleRepo) ListByWeddingType(ctx context.Context, tx *gorm.DB, weddingType string) ([]types.ColorRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = crr.db
	}
	var results []types.ColorRule
	if err := transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?)", weddingType).
		Order("bride_colour ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (crr *colorRuleRepo) Get(ctx context.Context, tx *gorm.DB, weddingType, brideColour string) (*types.ColorRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = crr.db
	}
	var result types.ColorRule
	if err := transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?) AND lower(bride_colour) = lower(?)", weddingType, brideColour).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (crr *colorRuleRepo) Create(ctx context.Context, tx *gorm.DB, rule *types.ColorRule) (*types.ColorRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = crr.db
	}
	if err := transaction.WithContext(ctx).Create(rule).Error; err != nil {
		return nil, err
	}
	return rule, nil
}

func (crr *colorRuleRepo) Update(ctx context.Context, tx *gorm.DB, rule *types.ColorRule) (*types.ColorRule, error) {
	transaction := tx
	if transaction == nil {
		transaction = crr.db
	}
	if err := transaction.WithContext(ctx).Save(rule).Error; err != nil {
		return nil, err
	}
	return rule, nil
}

func (crr *colorRuleRepo) Delete(ctx context.Context, tx *gorm.DB, weddingType, brideColour string) error {
	transaction := tx
	if transaction == nil {
		transaction = crr.db
	}
	return transaction.WithContext(ctx).
		Where("lower(wedding_type) = lower(?) AND lower(bride_colour) = lower(?)", weddingType, brideColour).
		Delete(&types.ColorRule{}).Error
}
