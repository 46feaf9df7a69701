package app

import (
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/engine"
	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	User       services.UserService
	Suggestion services.SuggestionService
	Wedding    services.WeddingService
	Project    services.ProjectService
	Budget     services.BudgetService
	Checklist  services.ChecklistService
	Dashboard  services.DashboardService
	AdminData  services.AdminDataService
	Engine     *engine.Engine
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")

	loader := services.NewSnapshotLoader(
		reposet.WeddingType,
		reposet.CulturalColor,
		reposet.ColorRule,
		reposet.FoodLocation,
		reposet.ColorMapping,
		reposet.RestrictedColour,
	)
	eng := engine.NewEngine(log, loader)

	authService := services.NewAuthService(db, log, reposet.User, reposet.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	userService := services.NewUserService(db, log, reposet.User)
	weddingService := services.NewWeddingService(db, log, eng, reposet.WeddingType, reposet.RestrictedColour)
	projectService := services.NewProjectService(db, log, reposet.Project)
	suggestionService := services.NewSuggestionService(db, log, eng, reposet.ThemeSuggestion, projectService)
	budgetService := services.NewBudgetService(db, log, reposet.BudgetItem, reposet.Project, projectService)
	checklistService := services.NewChecklistService(db, log, reposet.ChecklistTask, reposet.Project, projectService)
	dashboardService := services.NewDashboardService(db, log, reposet.Project, reposet.ChecklistTask)
	adminDataService := services.NewAdminDataService(db, log, eng,
		reposet.WeddingType,
		reposet.CulturalColor,
		reposet.ColorRule,
		reposet.FoodLocation,
		reposet.ColorMapping,
		reposet.RestrictedColour,
	)

	return Services{
		Auth:       authService,
		User:       userService,
		Suggestion: suggestionService,
		Wedding:    weddingService,
		Project:    projectService,
		Budget:     budgetService,
		Checklist:  checklistService,
		Dashboard:  dashboardService,
		AdminData:  adminDataService,
		Engine:     eng,
	}
}
