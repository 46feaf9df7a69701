package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/engine"
	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

type stubProjectService struct {
	visible map[uuid.UUID]*types.Project
}

func (s *stubProjectService) Create(ctx context.Context, project *types.Project) (*types.Project, error) {
	return project, nil
}

func (s *stubProjectService) Get(ctx context.Context, projectID uuid.UUID) (*types.Project, error) {
	if project, ok := s.visible[projectID]; ok {
		return project, nil
	}
	return nil, ErrForbidden
}

func (s *stubProjectService) List(ctx context.Context) ([]*types.Project, error) {
	projects := make([]*types.Project, 0, len(s.visible))
	for _, project := range s.visible {
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *stubProjectService) Update(ctx context.Context, projectID uuid.UUID, update ProjectUpdate) (*types.Project, error) {
	return s.Get(ctx, projectID)
}

func (s *stubProjectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	_, err := s.Get(ctx, projectID)
	return err
}

func (s *stubProjectService) CanAccess(ctx context.Context, project *types.Project) bool {
	_, ok := s.visible[project.ID]
	return ok
}

type stubSuggestionStore struct {
	created []*types.ThemeSuggestion
}

func (s *stubSuggestionStore) Create(ctx context.Context, tx *gorm.DB, suggestion *types.ThemeSuggestion) (*types.ThemeSuggestion, error) {
	s.created = append(s.created, suggestion)
	return suggestion, nil
}

func (s *stubSuggestionStore) GetByID(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) (*types.ThemeSuggestion, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubSuggestionStore) ListByProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.ThemeSuggestion, error) {
	var out []*types.ThemeSuggestion
	for _, suggestion := range s.created {
		if suggestion.ProjectID == projectID {
			out = append(out, suggestion)
		}
	}
	return out, nil
}

func (s *stubSuggestionStore) ListByProjects(ctx context.Context, tx *gorm.DB, projectIDs []uuid.UUID) ([]*types.ThemeSuggestion, error) {
	var out []*types.ThemeSuggestion
	for _, id := range projectIDs {
		byProject, _ := s.ListByProject(ctx, tx, id)
		out = append(out, byProject...)
	}
	return out, nil
}

func (s *stubSuggestionStore) Delete(ctx context.Context, tx *gorm.DB, suggestionID uuid.UUID) error {
	return nil
}

func newSuggestionServiceForTest(t *testing.T, store *stubSuggestionStore, projects *stubProjectService) SuggestionService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	eng := engine.NewEngine(log, func(ctx context.Context) (*engine.Snapshot, error) {
		return engine.NewSnapshot(
			[]types.WeddingType{{Name: "Kandyan Wedding", IsActive: true}},
			[]types.CulturalColor{{WeddingType: "Kandyan Wedding", ColourName: "red", RGB: "220,20,60"}},
			[]types.ColorRule{{WeddingType: "Kandyan Wedding", BrideColour: "red", GroomColour: "Gold", BridesmaidsColour: "Red and Gold", BestMenColour: "White", FlowerDecoColour: "Red", HallDecorColour: "Gold and White"}},
			[]types.FoodLocation{{WeddingType: "Kandyan Wedding", FoodMenu: "Rice and curry buffet", Drinks: "King coconut", PreShootLocations: "Temple of the Tooth"}},
			nil, nil,
		), nil
	})
	return NewSuggestionService(nil, log, eng, store, projects)
}

func TestSuggestRequiresProjectAccess(t *testing.T) {
	store := &stubSuggestionStore{}
	projects := &stubProjectService{visible: map[uuid.UUID]*types.Project{}}
	service := newSuggestionServiceForTest(t, store, projects)

	foreignID := uuid.New()
	_, err := service.Suggest(context.Background(), "Kandyan Wedding", "red", &foreignID)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("Suggest against an inaccessible project: err = %v, want ErrForbidden", err)
	}
	if len(store.created) != 0 {
		t.Errorf("persisted %d suggestions against an inaccessible project, want 0", len(store.created))
	}
}

func TestSuggestPersistsForAccessibleProject(t *testing.T) {
	projectID := uuid.New()
	store := &stubSuggestionStore{}
	projects := &stubProjectService{visible: map[uuid.UUID]*types.Project{
		projectID: {ID: projectID, BrideName: "Nethmi", GroomName: "Kasun"},
	}}
	service := newSuggestionServiceForTest(t, store, projects)

	suggestion, err := service.Suggest(context.Background(), "Kandyan Wedding", "red", &projectID)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if suggestion.GroomColour != "Gold" {
		t.Errorf("groom colour = %q, want %q", suggestion.GroomColour, "Gold")
	}
	if len(store.created) != 1 {
		t.Fatalf("persisted %d suggestions, want 1", len(store.created))
	}
	if store.created[0].ProjectID != projectID {
		t.Errorf("persisted project id = %v, want %v", store.created[0].ProjectID, projectID)
	}
}
