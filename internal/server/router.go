package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/poruwalabs/poruwa-backend/internal/handlers"
	"github.com/poruwalabs/poruwa-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler      *handlers.AuthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	UserHandler      *handlers.UserHandler
	WeddingHandler   *handlers.WeddingHandler
	ProjectHandler   *handlers.ProjectHandler
	BudgetHandler    *handlers.BudgetHandler
	ChecklistHandler *handlers.ChecklistHandler
	DashboardHandler *handlers.DashboardHandler
	AdminDataHandler *handlers.AdminDataHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-Refresh-Token"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/auth/register", cfg.AuthHandler.Register)
	router.POST("/auth/login", cfg.AuthHandler.Login)

	wedding := router.Group("/api/wedding")
	{
		wedding.POST("/suggest", cfg.WeddingHandler.Suggest)
		wedding.GET("/wedding-types", cfg.WeddingHandler.WeddingTypes)
		wedding.GET("/colors/:type", cfg.WeddingHandler.Colors)
		wedding.GET("/health", handlers.HealthCheck)
		wedding.GET("/decision-tree/info", cfg.WeddingHandler.TreeInfo)
	}
	router.POST("/api/wedding/decision-tree/rebuild",
		cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin(), cfg.WeddingHandler.RebuildTree)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	protected.GET("/auth/profile", cfg.UserHandler.GetMe)
	protected.PUT("/auth/profile", cfg.UserHandler.UpdateMe)
	protected.POST("/auth/change-password", cfg.UserHandler.ChangePassword)
	// Projects
	protected.GET("/api/projects", cfg.ProjectHandler.List)
	protected.POST("/api/projects", cfg.ProjectHandler.Create)
	protected.GET("/api/projects/assignees", cfg.UserHandler.ListUsers)
	protected.GET("/api/projects/theme-suggestions", cfg.WeddingHandler.AllSuggestionHistory)
	protected.GET("/api/projects/:id", cfg.ProjectHandler.Get)
	protected.PUT("/api/projects/:id", cfg.ProjectHandler.Update)
	protected.DELETE("/api/projects/:id", cfg.ProjectHandler.Delete)
	protected.POST("/api/projects/:id/theme-suggestions", cfg.WeddingHandler.SuggestForProject)
	protected.GET("/api/projects/:id/theme-suggestions", cfg.WeddingHandler.SuggestionHistory)
	// Budget
	protected.GET("/api/budget/projects/:id/items", cfg.BudgetHandler.ListItems)
	protected.POST("/api/budget/projects/:id/items", cfg.BudgetHandler.AddItem)
	protected.GET("/api/budget/projects/:id/summary", cfg.BudgetHandler.Summary)
	protected.PUT("/api/budget/items/:itemId", cfg.BudgetHandler.UpdateItem)
	protected.DELETE("/api/budget/items/:itemId", cfg.BudgetHandler.DeleteItem)
	// Checklist
	protected.GET("/api/projects/:id/tasks", cfg.ChecklistHandler.ListTasks)
	protected.POST("/api/projects/:id/tasks", cfg.ChecklistHandler.AddTask)
	protected.GET("/api/tasks/mine", cfg.ChecklistHandler.MyTasks)
	protected.PUT("/api/tasks/:taskId", cfg.ChecklistHandler.UpdateTask)
	protected.DELETE("/api/tasks/:taskId", cfg.ChecklistHandler.DeleteTask)
	// Dashboard
	protected.GET("/api/dashboard/stats", cfg.DashboardHandler.Stats)

	// ===============
	// || Admin     ||
	// ===============
	admin := router.Group("/api/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	// Users
	admin.GET("/users", cfg.UserHandler.ListUsers)
	admin.PUT("/users/:id/role", cfg.UserHandler.UpdateUserRole)
	admin.DELETE("/users/:id", cfg.UserHandler.DeleteUser)
	// Rule tables
	data := admin.Group("/data")
	{
		data.GET("/wedding-types", cfg.AdminDataHandler.ListWeddingTypes)
		data.POST("/wedding-types", cfg.AdminDataHandler.CreateWeddingType)
		data.PUT("/wedding-types/:name", cfg.AdminDataHandler.UpdateWeddingType)
		data.DELETE("/wedding-types/:name", cfg.AdminDataHandler.DeleteWeddingType)
		data.GET("/cultural-colors", cfg.AdminDataHandler.ListCulturalColors)
		data.POST("/cultural-colors", cfg.AdminDataHandler.UpsertCulturalColor)
		data.DELETE("/cultural-colors/:type/:colour", cfg.AdminDataHandler.DeleteCulturalColor)
		data.GET("/color-rules", cfg.AdminDataHandler.ListColorRules)
		data.POST("/color-rules", cfg.AdminDataHandler.UpsertColorRule)
		data.DELETE("/color-rules/:type/:colour", cfg.AdminDataHandler.DeleteColorRule)
		data.GET("/food-locations", cfg.AdminDataHandler.ListFoodLocations)
		data.POST("/food-locations", cfg.AdminDataHandler.UpsertFoodLocation)
		data.DELETE("/food-locations/:type", cfg.AdminDataHandler.DeleteFoodLocation)
		data.GET("/color-mappings", cfg.AdminDataHandler.ListColorMappings)
		data.POST("/color-mappings", cfg.AdminDataHandler.UpsertColorMapping)
		data.DELETE("/color-mappings/:name", cfg.AdminDataHandler.DeleteColorMapping)
		data.GET("/restricted-colours", cfg.AdminDataHandler.ListRestrictedColours)
		data.POST("/restricted-colours", cfg.AdminDataHandler.CreateRestrictedColour)
		data.DELETE("/restricted-colours/:type/:colour", cfg.AdminDataHandler.DeleteRestrictedColour)
		data.POST("/import", cfg.AdminDataHandler.ImportSeed)
	}

	return router
}
