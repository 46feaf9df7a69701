package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type ThemeSuggestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, suggestion *types.ThemeSuggestion) (*types.ThemeSuggestion, error)
	GetByID(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) (*types.ThemeSuggestion, error)
	ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.ThemeSuggestion, error)
	ListByProjects(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.ThemeSuggestion, error)
	Delete(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) error
}

type themeSuggestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewThemeSuggestionRepo(db *gorm.DB, baseLog *logger.Logger) ThemeSuggestionRepo {
	repoLog := baseLog.With("repo", "ThemeSuggestionRepo")
	return &themeSuggestionRepo{db: db, log: repoLog}
}

func (tsr *themeSuggestionRepo) Create(ctx context.Context, tx *gorm.DB, suggestion *types.ThemeSuggestion) (*types.ThemeSuggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = tsr.db
	}
	if err := transaction.WithContext(ctx).Create(suggestion).Error; err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (tsr *themeSuggestionRepo) GetByID(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) (*types.ThemeSuggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = tsr.db
	}
	var result types.ThemeSuggestion
	if err := transaction.WithContext(ctx).
		Where("id = ?", suggestionID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (tsr *themeSuggestionRepo) ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.ThemeSuggestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = tsr.db
	}
	var results []*types.ThemeSuggestion
	if err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tsr *themeSuggestionRepo) ListByProjects(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.ThemeSuggestion, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	transaction := tx
	if transaction == nil {
		transaction = tsr.db
	}
	var results []*types.ThemeSuggestion
	if err := transaction.WithContext(ctx).
		Where("project_id IN ?", projectIDs).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tsr *themeSuggestionRepo) Delete(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tsr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", suggestionID).
		Delete(&types.ThemeSuggestion{}).Error
}
