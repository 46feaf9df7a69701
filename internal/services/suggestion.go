package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/engine"
	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/repos"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type SuggestionService interface {
	Suggest(ctx context.Context, weddingType, brideColour string, projectID *uuid.UUID) (*engine.Suggestion, error)
	Rebuild(ctx context.Context) (engine.TreeInfo, error)
	TreeInfo(ctx context.Context) engine.TreeInfo
	History(ctx context.Context, projectID uuid.UUID) ([]*types.ThemeSuggestion, error)
	AllHistory(ctx context.Context) ([]*types.ThemeSuggestion, error)
}

type suggestionService struct {
	db                  *gorm.DB
	log                 *logger.Logger
	eng                 *engine.Engine
	themeSuggestionRepo repos.ThemeSuggestionRepo
	projectService      ProjectService
}

// NewSnapshotLoader assembles an engine snapshot from a fresh read of the six
// rule tables.
func NewSnapshotLoader(
	weddingTypeRepo repos.WeddingTypeRepo,
	culturalColorRepo repos.CulturalColorRepo,
	colorRuleRepo repos.ColorRuleRepo,
	foodLocationRepo repos.FoodLocationRepo,
	colorMappingRepo repos.ColorMappingRepo,
	restrictedColourRepo repos.RestrictedColourRepo,
) engine.SnapshotLoader {
	return func(ctx context.Context) (*engine.Snapshot, error) {
		weddingTypes, err := weddingTypeRepo.List(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("loading wedding types: %w", err)
		}
		culturalColors, err := culturalColorRepo.List(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("loading cultural colors: %w", err)
		}
		colorRules, err := colorRuleRepo.List(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("loading color rules: %w", err)
		}
		foodLocations, err := foodLocationRepo.List(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("loading food locations: %w", err)
		}
		colorMappings, err := colorMappingRepo.List(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("loading color mappings: %w", err)
		}
		restrictedColours, err := restrictedColourRepo.List(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("loading restricted colours: %w", err)
		}
		flattened := make([]types.WeddingType, 0, len(weddingTypes))
		for _, wt := range weddingTypes {
			flattened = append(flattened, *wt)
		}
		return engine.NewSnapshot(flattened, culturalColors, colorRules, foodLocations, colorMappings, restrictedColours), nil
	}
}

func NewSuggestionService(
	db *gorm.DB,
	log *logger.Logger,
	eng *engine.Engine,
	themeSuggestionRepo repos.ThemeSuggestionRepo,
	projectService ProjectService,
) SuggestionService {
	serviceLog := log.With("service", "SuggestionService")
	return &suggestionService{
		db:                  db,
		log:                 serviceLog,
		eng:                 eng,
		themeSuggestionRepo: themeSuggestionRepo,
		projectService:      projectService,
	}
}

func (ss *suggestionService) Suggest(ctx context.Context, weddingType, brideColour string, projectID *uuid.UUID) (*engine.Suggestion, error) {
	if projectID != nil {
		// Only admins, creators, and assignees may attach suggestions to a
		// project; the project service enforces that.
		if _, err := ss.projectService.Get(ctx, *projectID); err != nil {
			return nil, err
		}
	}
	suggestion, err := ss.eng.Predict(ctx, weddingType, brideColour)
	if err != nil {
		return nil, err
	}
	if projectID != nil {
		if sErr := ss.persist(ctx, *projectID, suggestion); sErr != nil {
			// Storage failure after an authorized request is best-effort; the
			// caller still gets the answer.
			ss.log.Warn("Failed to persist theme suggestion", "project_id", projectID, "error", sErr)
		}
	}
	return suggestion, nil
}

func (ss *suggestionService) persist(ctx context.Context, projectID uuid.UUID, suggestion *engine.Suggestion) error {
	detailsJSON, err := json.Marshal(suggestion.ColorDetails)
	if err != nil {
		return fmt.Errorf("marshaling color details: %w", err)
	}
	record := &types.ThemeSuggestion{
		ID:                uuid.New(),
		ProjectID:         projectID,
		WeddingType:       suggestion.WeddingType,
		BrideColour:       suggestion.BrideColour,
		GroomColour:       suggestion.GroomColour,
		BridesmaidsColour: suggestion.BridesmaidsColour,
		BestMenColour:     suggestion.BestMenColour,
		FlowerDecoColour:  suggestion.FlowerDecoColour,
		HallDecorColour:   suggestion.HallDecorColour,
		FoodMenu:          suggestion.FoodMenu,
		Drinks:            suggestion.Drinks,
		PreShootLocations: suggestion.PreShootLocations,
		ColorDetails:      datatypes.JSON(detailsJSON),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	_, cErr := ss.themeSuggestionRepo.Create(ctx, nil, record)
	return cErr
}

func (ss *suggestionService) Rebuild(ctx context.Context) (engine.TreeInfo, error) {
	if err := ss.eng.Rebuild(ctx); err != nil {
		return engine.TreeInfo{}, err
	}
	return ss.eng.Info(), nil
}

func (ss *suggestionService) TreeInfo(ctx context.Context) engine.TreeInfo {
	return ss.eng.Info()
}

func (ss *suggestionService) History(ctx context.Context, projectID uuid.UUID) ([]*types.ThemeSuggestion, error) {
	// Project access check rides on the project service.
	if _, err := ss.projectService.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return ss.themeSuggestionRepo.ListByProject(ctx, nil, projectID)
}

// AllHistory returns suggestions across every project the caller can see.
func (ss *suggestionService) AllHistory(ctx context.Context) ([]*types.ThemeSuggestion, error) {
	projects, err := ss.projectService.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		ids = append(ids, project.ID)
	}
	return ss.themeSuggestionRepo.ListByProjects(ctx, nil, ids)
}
