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

var ErrForbidden = fmt.Errorf("forbidden")

type ProjectUpdate struct {
	BrideName     *string
	GroomName     *string
	ContactNumber *string
	ContactEmail  *string
	WeddingDate   *time.Time
	WeddingType   *string
	BrideColor    *string
	Status        *string
	Budget        *float64
	Notes         *string
	AssignedTo    *uuid.UUID
}

type ProjectService interface {
	Create(ctx context.Context, project *types.Project) (*types.Project, error)
	Get(ctx context.Context, projectID uuid.UUID) (*types.Project, error)
	List(ctx context.Context) ([]*types.Project, error)
	Update(ctx context.Context, projectID uuid.UUID, update ProjectUpdate) (*types.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
	CanAccess(ctx context.Context, project *types.Project) bool
}

type projectService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewProjectService(db *gorm.DB, log *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	serviceLog := log.With("service", "ProjectService")
	return &projectService{db: db, log: serviceLog, projectRepo: projectRepo}
}

func (ps *projectService) Create(ctx context.Context, project *types.Project) (*types.Project, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("no request data found in context")
	}
	if project.BrideName == "" || project.GroomName == "" {
		return nil, fmt.Errorf("bride and groom names are required")
	}
	if project.Status == "" {
		project.Status = types.ProjectStatusPlanning
	}
	if !types.ValidProjectStatus(project.Status) {
		return nil, fmt.Errorf("invalid project status %q", project.Status)
	}
	project.ID = uuid.New()
	project.CreatedBy = rd.UserID
	created, err := ps.projectRepo.Create(ctx, nil, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (ps *projectService) Get(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	project, err := ps.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if !ps.CanAccess(ctx, project) {
		return nil, ErrForbidden
	}
	return project, nil
}

// List returns every project for admins and only created-or-assigned
// projects for everyone else.
func (ps *projectService) List(ctx context.Context) ([]*types.Project, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return nil, fmt.Errorf("no request data found in context")
	}
	if rd.Role == types.RoleAdmin {
		return ps.projectRepo.List(ctx, nil)
	}
	return ps.projectRepo.ListVisibleTo(ctx, nil, rd.UserID)
}

func (ps *projectService) Update(ctx context.Context, projectID uuid.UUID, update ProjectUpdate) (*types.Project, error) {
	var updated *types.Project
	err := ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		project, gErr := ps.projectRepo.GetByID(ctx, tx, projectID)
		if gErr != nil {
			return fmt.Errorf("failed to load project: %w", gErr)
		}
		if !ps.CanAccess(ctx, project) {
			return ErrForbidden
		}
		if update.BrideName != nil {
			project.BrideName = *update.BrideName
		}
		if update.GroomName != nil {
			project.GroomName = *update.GroomName
		}
		if update.ContactNumber != nil {
			project.ContactNumber = *update.ContactNumber
		}
		if update.ContactEmail != nil {
			project.ContactEmail = *update.ContactEmail
		}
		if update.WeddingDate != nil {
			project.WeddingDate = *update.WeddingDate
		}
		if update.WeddingType != nil {
			project.WeddingType = *update.WeddingType
		}
		if update.BrideColor != nil {
			project.BrideColor = *update.BrideColor
		}
		if update.Status != nil {
			if !types.ValidProjectStatus(*update.Status) {
				return fmt.Errorf("invalid project status %q", *update.Status)
			}
			project.Status = *update.Status
		}
		if update.Budget != nil {
			project.Budget = *update.Budget
		}
		if update.Notes != nil {
			project.Notes = *update.Notes
		}
		if update.AssignedTo != nil {
			project.AssignedTo = update.AssignedTo
		}
		saved, sErr := ps.projectRepo.Update(ctx, tx, project)
		if sErr != nil {
			return fmt.Errorf("failed to update project: %w", sErr)
		}
		updated = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (ps *projectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		return fmt.Errorf("no request data found in context")
	}
	project, gErr := ps.projectRepo.GetByID(ctx, nil, projectID)
	if gErr != nil {
		return fmt.Errorf("failed to load project: %w", gErr)
	}
	// Only admins and the creator may delete.
	if rd.Role != types.RoleAdmin && project.CreatedBy != rd.UserID {
		return ErrForbidden
	}
	if err := ps.projectRepo.Delete(ctx, nil, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// CanAccess reports whether the caller may read or modify the project:
// admins always, otherwise the creator or the assignee.
func (ps *projectService) CanAccess(ctx context.Context, project *types.Project) bool {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || project == nil {
		return false
	}
	if rd.Role == types.RoleAdmin {
		return true
	}
	if project.CreatedBy == rd.UserID {
		return true
	}
	return project.AssignedTo != nil && *project.AssignedTo == rd.UserID
}
