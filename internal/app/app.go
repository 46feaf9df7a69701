package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/db"
	"github.com/poruwalabs/poruwa-backend/internal/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("database automigrate: %w", err)
	}
	theDB := pg.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet)
	handlerset := wireHandlers(log, serviceset)
	middlewareset := wireMiddleware(log, serviceset)
	router := wireRouter(handlerset, middlewareset)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

// Start seeds the rule tables when SEED_FILE is set and warms the decision
// tree so the first suggestion request doesn't pay the build cost.
func (a *App) Start(ctx context.Context) {
	if a == nil {
		return
	}
	if a.Cfg.SeedFile != "" {
		report, err := a.Services.AdminData.ImportSeedFile(ctx, a.Cfg.SeedFile)
		if err != nil {
			a.Log.Warn("Seed import failed", "path", a.Cfg.SeedFile, "error", err)
		} else {
			a.Log.Info("Seed import complete",
				"wedding_types", report.WeddingTypes,
				"cultural_colors", report.CulturalColors,
				"color_rules", report.ColorRules)
		}
	}
	if _, err := a.Services.Suggestion.Rebuild(ctx); err != nil {
		a.Log.Warn("Initial tree build failed", "error", err)
	}
}

func (a *App) Run(addr string) error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
