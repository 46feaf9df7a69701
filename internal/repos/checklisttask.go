package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type ChecklistTaskRepo interface {
	Create(ctx context.Context, tx *gorm.DB, task *types.ChecklistTask) (*types.ChecklistTask, error)
	GetByID(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) (*types.ChecklistTask, error)
	ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.ChecklistTask, error)
	ListByAssignee(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChecklistTask, error)
	Update(ctx context.Context, tx *gorm.DB, task *types.ChecklistTask) (*types.ChecklistTask, error)
	Delete(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error
	CountByStatusForProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (map[string]int64, error)
}

type checklistTaskRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChecklistTaskRepo(db *gorm.DB, baseLog *logger.Logger) ChecklistTaskRepo {
	repoLog := baseLog.With("repo", "ChecklistTaskRepo")
	return &checklistTaskRepo{db: db, log: repoLog}
}

func (ctr *checklistTaskRepo) Create(ctx context.Context, tx *gorm.DB, task *types.ChecklistTask) (*types.ChecklistTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = ctr.db
	}
	if err := transaction.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (ctr *checklistTaskRepo) GetByID(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) (*types.ChecklistTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = ctr.db
	}
	var result types.ChecklistTask
	if err := transaction.WithContext(ctx).
		Where("id = ?", taskID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (ctr *checklistTaskRepo) ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.ChecklistTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = ctr.db
	}
	var results []*types.ChecklistTask
	if err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ctr *checklistTaskRepo) ListByAssignee(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChecklistTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = ctr.db
	}
	var results []*types.ChecklistTask
	if err := transaction.WithContext(ctx).
		Where("assigned_to = ?", userID).
		Order("due_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ctr *checklistTaskRepo) Update(ctx context.Context, tx *gorm.DB, task *types.ChecklistTask) (*types.ChecklistTask, error) {
	transaction := tx
	if transaction == nil {
		transaction = ctr.db
	}
	if err := transaction.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (ctr *checklistTaskRepo) Delete(ctx context.Context, tx *gorm.DB, taskID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ctr.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", taskID).
		Delete(&types.ChecklistTask{}).Error
}

func (ctr *checklistTaskRepo) CountByStatusForProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (map[string]int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ctr.db
	}
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := transaction.WithContext(ctx).
		Model(&types.ChecklistTask{}).
		Select("status, count(*) as count").
		Where("project_id = ?", projectID).
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
