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

// BudgetSummary totals the project's budget lines against the project budget.
type BudgetSummary struct {
	ProjectBudget float64 `json:"project_budget"`
	TotalPlanned  float64 `json:"total_planned"`
	TotalActual   float64 `json:"total_actual"`
	Variance      float64 `json:"variance"`
	Remaining     float64 `json:"remaining"`
	ItemCount     int     `json:"item_count"`
}

type BudgetItemUpdate struct {
	Category      *string
	PlannedAmount *float64
	ActualAmount  *float64
	ExpenseDate   *time.Time
	Vendor        *string
	Notes         *string
}

type BudgetService interface {
	AddItem(ctx context.Context, projectID uuid.UUID, item *types.BudgetItem) (*types.BudgetItem, error)
	ListItems(ctx context.Context, projectID uuid.UUID) ([]*types.BudgetItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, update BudgetItemUpdate) (*types.BudgetItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Summary(ctx context.Context, projectID uuid.UUID) (*BudgetSummary, error)
}

type budgetService struct {
	db             *gorm.DB
	log            *logger.Logger
	budgetItemRepo repos.BudgetItemRepo
	projectService ProjectService
	projectRepo    repos.ProjectRepo
}

func NewBudgetService(
	db *gorm.DB,
	log *logger.Logger,
	budgetItemRepo repos.BudgetItemRepo,
	projectRepo repos.ProjectRepo,
	projectService ProjectService,
) BudgetService {
	serviceLog := log.With("service", "BudgetService")
	return &budgetService{
		db:             db,
		log:            serviceLog,
		budgetItemRepo: budgetItemRepo,
		projectRepo:    projectRepo,
		projectService: projectService,
	}
}

func (bs *budgetService) guardProject(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	project, err := bs.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if !bs.projectService.CanAccess(ctx, project) {
		return nil, ErrForbidden
	}
	return project, nil
}

func (bs *budgetService) AddItem(ctx context.Context, projectID uuid.UUID, item *types.BudgetItem) (*types.BudgetItem, error) {
	if _, err := bs.guardProject(ctx, projectID); err != nil {
		return nil, err
	}
	if item.Category == "" {
		return nil, fmt.Errorf("a category is required")
	}
	if item.PlannedAmount < 0 || item.ActualAmount < 0 {
		return nil, fmt.Errorf("amounts must not be negative")
	}
	item.ID = uuid.New()
	item.ProjectID = projectID
	if rd := requestdata.GetRequestData(ctx); rd != nil {
		userID := rd.UserID
		item.CreatedBy = &userID
	}
	created, err := bs.budgetItemRepo.Create(ctx, nil, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget item: %w", err)
	}
	return created, nil
}

func (bs *budgetService) ListItems(ctx context.Context, projectID uuid.UUID) ([]*types.BudgetItem, error) {
	if _, err := bs.guardProject(ctx, projectID); err != nil {
		return nil, err
	}
	return bs.budgetItemRepo.ListByProject(ctx, nil, projectID)
}

func (bs *budgetService) UpdateItem(ctx context.Context, itemID uuid.UUID, update BudgetItemUpdate) (*types.BudgetItem, error) {
	var updated *types.BudgetItem
	err := bs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		item, gErr := bs.budgetItemRepo.GetByID(ctx, tx, itemID)
		if gErr != nil {
			return fmt.Errorf("failed to load budget item: %w", gErr)
		}
		if _, pErr := bs.guardProject(ctx, item.ProjectID); pErr != nil {
			return pErr
		}
		if update.Category != nil {
			item.Category = *update.Category
		}
		if update.PlannedAmount != nil {
			if *update.PlannedAmount < 0 {
				return fmt.Errorf("planned amount must not be negative")
			}
			item.PlannedAmount = *update.PlannedAmount
		}
		if update.ActualAmount != nil {
			if *update.ActualAmount < 0 {
				return fmt.Errorf("actual amount must not be negative")
			}
			item.ActualAmount = *update.ActualAmount
		}
		if update.ExpenseDate != nil {
			item.ExpenseDate = update.ExpenseDate
		}
		if update.Vendor != nil {
			item.Vendor = *update.Vendor
		}
		if update.Notes != nil {
			item.Notes = *update.Notes
		}
		saved, sErr := bs.budgetItemRepo.Update(ctx, tx, item)
		if sErr != nil {
			return fmt.Errorf("failed to update budget item: %w", sErr)
		}
		updated = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (bs *budgetService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	item, gErr := bs.budgetItemRepo.GetByID(ctx, nil, itemID)
	if gErr != nil {
		return fmt.Errorf("failed to load budget item: %w", gErr)
	}
	if _, pErr := bs.guardProject(ctx, item.ProjectID); pErr != nil {
		return pErr
	}
	if err := bs.budgetItemRepo.Delete(ctx, nil, itemID); err != nil {
		return fmt.Errorf("failed to delete budget item: %w", err)
	}
	return nil
}

func (bs *budgetService) Summary(ctx context.Context, projectID uuid.UUID) (*BudgetSummary, error) {
	project, err := bs.guardProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	items, lErr := bs.budgetItemRepo.ListByProject(ctx, nil, projectID)
	if lErr != nil {
		return nil, fmt.Errorf("failed to list budget items: %w", lErr)
	}
	return summarizeBudget(project.Budget, items), nil
}

func summarizeBudget(projectBudget float64, items []*types.BudgetItem) *BudgetSummary {
	summary := &BudgetSummary{
		ProjectBudget: projectBudget,
		ItemCount:     len(items),
	}
	for _, item := range items {
		summary.TotalPlanned += item.PlannedAmount
		summary.TotalActual += item.ActualAmount
	}
	summary.Variance = summary.TotalPlanned - summary.TotalActual
	summary.Remaining = projectBudget - summary.TotalActual
	return summary
}
