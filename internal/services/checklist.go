package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/repos"
	"github.com/poruwalabs/poruwa-backend/internal/requestdata"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *time.Time
	AssignedTo  *uuid.UUID
}

type ChecklistService interface {
	AddTask(ctx context.Context, projectID uuid.UUID, task *types.ChecklistTask) (*types.ChecklistTask, error)
	ListTasks(ctx context.Context, projectID uuid.UUID) ([]*types.ChecklistTask, error)
	MyTasks(ctx context.Context) ([]*types.ChecklistTask, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, update TaskUpdate) (*types.ChecklistTask, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
}

type checklistService struct {
	db                *gorm.DB
	log               *logger.Logger
	checklistTaskRepo repos.ChecklistTaskRepo
	projectRepo       repos.ProjectRepo
	projectService    ProjectService
}

func NewChecklistService(
	db *gorm.DB,
	log *logger.Logger,
	checklistTaskRepo repos.ChecklistTaskRepo,
	projectRepo repos.ProjectRepo,
	projectService ProjectService,
) ChecklistService {
	serviceLog := log.With("service", "ChecklistService")
	return &checklistService{
		db:                db,
		log:               serviceLog,
		checklistTaskRepo: checklistTaskRepo,
		projectRepo:       projectRepo,
		projectService:    projectService,
	}
}

func (cs *checklistService) guardProject(ctx context.Context, projectID uuid.UUID) error {
	project, err := cs.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	if !cs.projectService.CanAccess(ctx, project) {
		return ErrForbidden
	}
	return nil
}

func (cs *checklistService) AddTask(ctx context.Context, projectID uuid.UUID, task *types.ChecklistTask) (*types.ChecklistTask, error) {
	if err := cs.guardProject(ctx, projectID); err != nil {
		return nil, err
	}
	if task.Title == "" {
		return nil, fmt.Errorf("a title is required")
	}
	if task.Status == "" {
		task.Status = types.TaskStatusPending
	}
	if !types.ValidTaskStatus(task.Status) {
		return nil, fmt.Errorf("invalid task status %q", task.Status)
	}
	task.ID = uuid.New()
	task.ProjectID = projectID
	if rd := requestdata.GetRequestData(ctx); rd != nil {
		userID := rd.UserID
		task.CreatedBy = &userID
	}
	created, err := cs.checklistTaskRepo.Create(ctx, nil, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return created, nil
}

func (cs *checklistService) ListTasks(ctx context.Context, projectID uuid.UUID) ([]*types.ChecklistTask, error) {
	if err := cs.guardProject(ctx, projectID); err != nil {
		return nil, err
	}
	return cs.checklistTaskRepo.ListByProject(ctx, nil, projectID)
}

func (cs *checklistService) MyTasks(ctx context.Context) ([]*types.ChecklistTask, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("no request data found in context")
	}
	return cs.checklistTaskRepo.ListByAssignee(ctx, nil, rd.UserID)
}

func (cs *checklistService) UpdateTask(ctx context.Context, taskID uuid.UUID, update TaskUpdate) (*types.ChecklistTask, error) {
	var updated *types.ChecklistTask
	err := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, gErr := cs.checklistTaskRepo.GetByID(ctx, tx, taskID)
		if gErr != nil {
			return fmt.Errorf("failed to load task: %w", gErr)
		}
		if pErr := cs.guardProject(ctx, task.ProjectID); pErr != nil {
			return pErr
		}
		if update.Title != nil {
			task.Title = *update.Title
		}
		if update.Description != nil {
			task.Description = *update.Description
		}
		if update.Status != nil {
			if !types.ValidTaskStatus(*update.Status) {
				return fmt.Errorf("invalid task status %q", *update.Status)
			}
			task.Status = *update.Status
		}
		if update.DueDate != nil {
			task.DueDate = update.DueDate
		}
		if update.AssignedTo != nil {
			task.AssignedTo = update.AssignedTo
		}
		saved, sErr := cs.checklistTaskRepo.Update(ctx, tx, task)
		if sErr != nil {
			return fmt.Errorf("failed to update task: %w", sErr)
		}
		updated = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (cs *checklistService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	task, gErr := cs.checklistTaskRepo.GetByID(ctx, nil, taskID)
	if gErr != nil {
		return fmt.Errorf("failed to load task: %w", gErr)
	}
	if pErr := cs.guardProject(ctx, task.ProjectID); pErr != nil {
		return pErr
	}
	if err := cs.checklistTaskRepo.Delete(ctx, nil, taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
