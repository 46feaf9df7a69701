package app

import (
	"github.com/gin-gonic/gin"

	"github.com/poruwalabs/poruwa-backend/internal/server"
)

func wireRouter(handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:      handlerset.Auth,
		AuthMiddleware:   middlewareset.Auth,
		UserHandler:      handlerset.User,
		WeddingHandler:   handlerset.Wedding,
		ProjectHandler:   handlerset.Project,
		BudgetHandler:    handlerset.Budget,
		ChecklistHandler: handlerset.Checklist,
		DashboardHandler: handlerset.Dashboard,
		AdminDataHandler: handlerset.AdminData,
	})
}
