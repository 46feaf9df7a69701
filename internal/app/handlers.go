package app

import (
	"github.com/poruwalabs/poruwa-backend/internal/handlers"
	"github.com/poruwalabs/poruwa-backend/internal/logger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Wedding   *handlers.WeddingHandler
	Project   *handlers.ProjectHandler
	Budget    *handlers.BudgetHandler
	Checklist *handlers.ChecklistHandler
	Dashboard *handlers.DashboardHandler
	AdminData *handlers.AdminDataHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(serviceset.Auth),
		User:      handlers.NewUserHandler(serviceset.User),
		Wedding:   handlers.NewWeddingHandler(serviceset.Wedding, serviceset.Suggestion),
		Project:   handlers.NewProjectHandler(serviceset.Project),
		Budget:    handlers.NewBudgetHandler(serviceset.Budget),
		Checklist: handlers.NewChecklistHandler(serviceset.Checklist),
		Dashboard: handlers.NewDashboardHandler(serviceset.Dashboard),
		AdminData: handlers.NewAdminDataHandler(serviceset.AdminData),
	}
}
