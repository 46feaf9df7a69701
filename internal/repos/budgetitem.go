package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type BudgetItemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, item *types.BudgetItem) (*types.BudgetItem, error)
	GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.BudgetItem, error)
	ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.BudgetItem, error)
	Update(ctx context.Context, tx *gorm.DB, item *types.BudgetItem) (*types.BudgetItem, error)
	Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error
}

type budgetItemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBudgetItemRepo(db *gorm.DB, baseLog *logger.Logger) BudgetItemRepo {
	repoLog := baseLog.With("repo", "BudgetItemRepo")
	return &budgetItemRepo{db: db, log: repoLog}
}

func (bir *budgetItemRepo) Create(ctx context.Context, tx *gorm.DB, item *types.BudgetItem) (*types.BudgetItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = bir.db
	}
	if err := transaction.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (bir *budgetItemRepo) GetByID(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) (*types.BudgetItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = bir.db
	}
	var result types.BudgetItem
	if err := transaction.WithContext(ctx).
		Where("id = ?", itemID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (bir *budgetItemRepo) ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.BudgetItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = bir.db
	}
	var results []*types.BudgetItem
	if err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (bir *budgetItemRepo) Update(ctx context.Context, tx *gorm.DB, item *types.BudgetItem) (*types.BudgetItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = bir.db
	}
	if err := transaction.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (bir *budgetItemRepo) Delete(ctx context.Context, tx *gorm.DB, itemID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = bir.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&types.BudgetItem{}).Error
}
