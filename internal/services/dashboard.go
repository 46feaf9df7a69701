package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/repos"
	"github.com/poruwalabs/poruwa-backend/internal/requestdata"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

// DashboardStats is the aggregate snapshot behind the landing dashboard.
type DashboardStats struct {
	TotalProjects    int              `json:"total_projects"`
	ProjectsByStatus map[string]int64 `json:"projects_by_status"`
	UpcomingWeddings []*types.Project `json:"upcoming_weddings"`
	TotalBudget      float64          `json:"total_budget"`
	PendingTasks     int              `json:"pending_tasks"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	db                *gorm.DB
	log               *logger.Logger
	projectRepo       repos.ProjectRepo
	checklistTaskRepo repos.ChecklistTaskRepo
}

func NewDashboardService(
	db *gorm.DB,
	log *logger.Logger,
	projectRepo repos.ProjectRepo,
	checklistTaskRepo repos.ChecklistTaskRepo,
) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{
		db:                db,
		log:               serviceLog,
		projectRepo:       projectRepo,
		checklistTaskRepo: checklistTaskRepo,
	}
}

// Stats aggregates over the projects the caller can see: all of them for
// admins, otherwise created-or-assigned only.
func (ds *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("no request data found in context")
	}

	var projects []*types.Project
	var err error
	if rd.Role == types.RoleAdmin {
		projects, err = ds.projectRepo.List(ctx, nil)
	} else {
		projects, err = ds.projectRepo.ListVisibleTo(ctx, nil, rd.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	stats := &DashboardStats{
		TotalProjects:    len(projects),
		ProjectsByStatus: make(map[string]int64),
	}
	now := time.Now()
	for _, project := range projects {
		stats.ProjectsByStatus[project.Status]++
		stats.TotalBudget += project.Budget
		if project.WeddingDate.After(now) && project.Status != types.ProjectStatusCancelled {
			stats.UpcomingWeddings = append(stats.UpcomingWeddings, project)
		}
	}
	// Closest wedding first, capped at five.
	sort.Slice(stats.UpcomingWeddings, func(i, j int) bool {
		return stats.UpcomingWeddings[i].WeddingDate.Before(stats.UpcomingWeddings[j].WeddingDate)
	})
	if len(stats.UpcomingWeddings) > 5 {
		stats.UpcomingWeddings = stats.UpcomingWeddings[:5]
	}

	for _, project := range projects {
		counts, cErr := ds.checklistTaskRepo.CountByStatusForProject(ctx, nil, project.ID)
		if cErr != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", cErr)
		}
		stats.PendingTasks += int(counts[types.TaskStatusPending] + counts[types.TaskStatusInProgress])
	}
	return stats, nil
}
