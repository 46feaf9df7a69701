package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/engine"
	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/normalization"
	"github.com/poruwalabs/poruwa-backend/internal/repos"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

// AdminDataService maintains the rule tables behind the suggestion engine.
// Every write schedules a tree rebuild so predictions pick up the change.
type AdminDataService interface {
	ListWeddingTypes(ctx context.Context) ([]*types.WeddingType, error)
	CreateWeddingType(ctx context.Context, weddingType *types.WeddingType) (*types.WeddingType, error)
	UpdateWeddingType(ctx context.Context, name string, description *string, isActive *bool) (*types.WeddingType, error)
	DeleteWeddingType(ctx context.Context, name string) error

	ListCulturalColors(ctx context.Context, weddingType string) ([]types.CulturalColor, error)
	UpsertCulturalColor(ctx context.Context, color *types.CulturalColor) (*types.CulturalColor, error)
	DeleteCulturalColor(ctx context.Context, weddingType, colourName string) error

	ListColorRules(ctx context.Context, weddingType string) ([]types.ColorRule, error)
	UpsertColorRule(ctx context.Context, rule *types.ColorRule) (*types.ColorRule, error)
	DeleteColorRule(ctx context.Context, weddingType, brideColour string) error

	ListFoodLocations(ctx context.Context) ([]types.FoodLocation, error)
	UpsertFoodLocation(ctx context.Context, foodLocation *types.FoodLocation) (*types.FoodLocation, error)
	DeleteFoodLocation(ctx context.Context, weddingType string) error

	ListColorMappings(ctx context.Context) ([]types.ColorMapping, error)
	UpsertColorMapping(ctx context.Context, mapping *types.ColorMapping) (*types.ColorMapping, error)
	DeleteColorMapping(ctx context.Context, colorName string) error

	ListRestrictedColours(ctx context.Context, weddingType string) ([]types.RestrictedColour, error)
	CreateRestrictedColour(ctx context.Context, restricted *types.RestrictedColour) (*types.RestrictedColour, error)
	DeleteRestrictedColour(ctx context.Context, weddingType, colourName string) error

	ImportSeedFile(ctx context.Context, path string) (*SeedReport, error)
}

type adminDataService struct {
	db                   *gorm.DB
	log                  *logger.Logger
	eng                  *engine.Engine
	weddingTypeRepo      repos.WeddingTypeRepo
	culturalColorRepo    repos.CulturalColorRepo
	colorRuleRepo        repos.ColorRuleRepo
	foodLocationRepo     repos.FoodLocationRepo
	colorMappingRepo     repos.ColorMappingRepo
	restrictedColourRepo repos.RestrictedColourRepo
}

func NewAdminDataService(
	db *gorm.DB,
	log *logger.Logger,
	eng *engine.Engine,
	weddingTypeRepo repos.WeddingTypeRepo,
	culturalColorRepo repos.CulturalColorRepo,
	colorRuleRepo repos.ColorRuleRepo,
	foodLocationRepo repos.FoodLocationRepo,
	colorMappingRepo repos.ColorMappingRepo,
	restrictedColourRepo repos.RestrictedColourRepo,
) AdminDataService {
	serviceLog := log.With("service", "AdminDataService")
	return &adminDataService{
		db:                   db,
		log:                  serviceLog,
		eng:                  eng,
		weddingTypeRepo:      weddingTypeRepo,
		culturalColorRepo:    culturalColorRepo,
		colorRuleRepo:        colorRuleRepo,
		foodLocationRepo:     foodLocationRepo,
		colorMappingRepo:     colorMappingRepo,
		restrictedColourRepo: restrictedColourRepo,
	}
}

// ValidateRGB checks an "r,g,b" string with all components in 0..255.
func ValidateRGB(rgb string) error {
	parts := strings.Split(rgb, ",")
	if len(parts) != 3 {
		return fmt.Errorf("rgb must have exactly three comma-separated components, got %q", rgb)
	}
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("rgb component %q is not a number", part)
		}
		if v < 0 || v > 255 {
			return fmt.Errorf("rgb component %d out of range 0..255", v)
		}
	}
	return nil
}

func (ads *adminDataService) rebuild(ctx context.Context) {
	if err := ads.eng.Rebuild(ctx); err != nil {
		ads.log.Warn("Tree rebuild after data change failed", "error", err)
	}
}

func (ads *adminDataService) ListWeddingTypes(ctx context.Context) ([]*types.WeddingType, error) {
	return ads.weddingTypeRepo.List(ctx, nil)
}

func (ads *adminDataService) CreateWeddingType(ctx context.Context, weddingType *types.WeddingType) (*types.WeddingType, error) {
	weddingType.Name = strings.TrimSpace(weddingType.Name)
	if weddingType.Name == "" {
		return nil, fmt.Errorf("a name is required")
	}
	weddingType.ID = uuid.New()
	created, err := ads.weddingTypeRepo.Create(ctx, nil, weddingType)
	if err != nil {
		return nil, fmt.Errorf("failed to create wedding type: %w", err)
	}
	ads.rebuild(ctx)
	return created, nil
}

func (ads *adminDataService) UpdateWeddingType(ctx context.Context, name string, description *string, isActive *bool) (*types.WeddingType, error) {
	weddingType, gErr := ads.weddingTypeRepo.GetByName(ctx, nil, name)
	if gErr != nil {
		return nil, fmt.Errorf("failed to load wedding type: %w", gErr)
	}
	if description != nil {
		weddingType.Description = *description
	}
	if isActive != nil {
		weddingType.IsActive = *isActive
	}
	updated, err := ads.weddingTypeRepo.Update(ctx, nil, weddingType)
	if err != nil {
		return nil, fmt.Errorf("failed to update wedding type: %w", err)
	}
	ads.rebuild(ctx)
	return updated, nil
}

func (ads *adminDataService) DeleteWeddingType(ctx context.Context, name string) error {
	if err := ads.weddingTypeRepo.DeleteByName(ctx, nil, name); err != nil {
		return fmt.Errorf("failed to delete wedding type: %w", err)
	}
	ads.rebuild(ctx)
	return nil
}

func (ads *adminDataService) ListCulturalColors(ctx context.Context, weddingType string) ([]types.CulturalColor, error) {
	if weddingType == "" {
		return ads.culturalColorRepo.List(ctx, nil)
	}
	return ads.culturalColorRepo.ListByWeddingType(ctx, nil, weddingType)
}

func (ads *adminDataService) UpsertCulturalColor(ctx context.Context, color *types.CulturalColor) (*types.CulturalColor, error) {
	color.WeddingType = strings.TrimSpace(color.WeddingType)
	color.ColourName = normalization.ParseInputString(color.ColourName)
	if color.WeddingType == "" || color.ColourName == "" {
		return nil, fmt.Errorf("wedding type and colour name are required")
	}
	if err := ValidateRGB(color.RGB); err != nil {
		return nil, err
	}
	var saved *types.CulturalColor
	err := ads.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, gErr := ads.culturalColorRepo.Get(ctx, tx, color.WeddingType, color.ColourName)
		if gErr == nil {
			existing.RGB = color.RGB
			existing.CulturalSignificance = color.CulturalSignificance
			updated, uErr := ads.culturalColorRepo.Update(ctx, tx, existing)
			if uErr != nil {
				return fmt.Errorf("failed to update cultural color: %w", uErr)
			}
			saved = updated
			return nil
		}
		created, cErr := ads.culturalColorRepo.Create(ctx, tx, color)
		if cErr != nil {
			return fmt.Errorf("failed to create cultural color: %w", cErr)
		}
		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	ads.rebuild(ctx)
	return saved, nil
}

func (ads *adminDataService) DeleteCulturalColor(ctx context.Context, weddingType, colourName string) error {
	if err := ads.culturalColorRepo.Delete(ctx, nil, weddingType, colourName); err != nil {
		return fmt.Errorf("failed to delete cultural color: %w", err)
	}
	ads.rebuild(ctx)
	return nil
}

func (ads *adminDataService) ListColorRules(ctx context.Context, weddingType string) ([]types.ColorRule, error) {
	if weddingType == "" {
		return ads.colorRuleRepo.List(ctx, nil)
	}
	return ads.colorRuleRepo.ListByWeddingType(ctx, nil, weddingType)
}

func (ads *adminDataService) UpsertColorRule(ctx context.Context, rule *types.ColorRule) (*types.ColorRule, error) {
	rule.WeddingType = strings.TrimSpace(rule.WeddingType)
	rule.BrideColour = normalization.ParseInputString(rule.BrideColour)
	if rule.WeddingType == "" || rule.BrideColour == "" {
		return nil, fmt.Errorf("wedding type and bride colour are required")
	}
	var saved *types.ColorRule
	err := ads.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, gErr := ads.colorRuleRepo.Get(ctx, tx, rule.WeddingType, rule.BrideColour)
		if gErr == nil {
			existing.GroomColour = rule.GroomColour
			existing.BridesmaidsColour = rule.BridesmaidsColour
			existing.BestMenColour = rule.BestMenColour
			existing.FlowerDecoColour = rule.FlowerDecoColour
			existing.HallDecorColour = rule.HallDecorColour
			updated, uErr := ads.colorRuleRepo.Update(ctx, tx, existing)
			if uErr != nil {
				return fmt.Errorf("failed to update color rule: %w", uErr)
			}
			saved = updated
			return nil
		}
		created, cErr := ads.colorRuleRepo.Create(ctx, tx, rule)
		if cErr != nil {
			return fmt.Errorf("failed to create color rule: %w", cErr)
		}
		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	ads.rebuild(ctx)
	return saved, nil
}

func (ads *adminDataService) DeleteColorRule(ctx context.Context, weddingType, brideColour string) error {
	if err := ads.colorRuleRepo.Delete(ctx, nil, weddingType, brideColour); err != nil {
		return fmt.Errorf("failed to delete color rule: %w", err)
	}
	ads.rebuild(ctx)
	return nil
}

func (ads *adminDataService) ListFoodLocations(ctx context.Context) ([]types.FoodLocation, error) {
	return ads.foodLocationRepo.List(ctx, nil)
}

func (ads *adminDataService) UpsertFoodLocation(ctx context.Context, foodLocation *types.FoodLocation) (*types.FoodLocation, error) {
	foodLocation.WeddingType = strings.TrimSpace(foodLocation.WeddingType)
	if foodLocation.WeddingType == "" {
		return nil, fmt.Errorf("wedding type is required")
	}
	var saved *types.FoodLocation
	err := ads.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, gErr := ads.foodLocationRepo.GetByWeddingType(ctx, tx, foodLocation.WeddingType)
		if gErr == nil {
			existing.FoodMenu = foodLocation.FoodMenu
			existing.Drinks = foodLocation.Drinks
			existing.PreShootLocations = foodLocation.PreShootLocations
			updated, uErr := ads.foodLocationRepo.Update(ctx, tx, existing)
			if uErr != nil {
				return fmt.Errorf("failed to update food location: %w", uErr)
			}
			saved = updated
			return nil
		}
		created, cErr := ads.foodLocationRepo.Create(ctx, tx, foodLocation)
		if cErr != nil {
			return fmt.Errorf("failed to create food location: %w", cErr)
		}
		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	ads.rebuild(ctx)
	return saved, nil
}

func (ads *adminDataService) DeleteFoodLocation(ctx context.Context, weddingType string) error {
	if err := ads.foodLocationRepo.Delete(ctx, nil, weddingType); err != nil {
		return fmt.Errorf("failed to delete food location: %w", err)
	}
	ads.rebuild(ctx)
	return nil
}

func (ads *adminDataService) ListColorMappings(ctx context.Context) ([]types.ColorMapping, error) {
	return ads.colorMappingRepo.List(ctx, nil)
}

func (ads *adminDataService) UpsertColorMapping(ctx context.Context, mapping *types.ColorMapping) (*types.ColorMapping, error) {
	mapping.ColorName = normalization.ParseInputString(mapping.ColorName)
	if mapping.ColorName == "" {
		return nil, fmt.Errorf("a color name is required")
	}
	if err := ValidateRGB(mapping.RGB); err != nil {
		return nil, err
	}
	var saved *types.ColorMapping
	err := ads.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, gErr := ads.colorMappingRepo.Get(ctx, tx, mapping.ColorName)
		if gErr == nil {
			existing.RGB = mapping.RGB
			existing.Description = mapping.Description
			updated, uErr := ads.colorMappingRepo.Update(ctx, tx, existing)
			if uErr != nil {
				return fmt.Errorf("failed to update color mapping: %w", uErr)
			}
			saved = updated
			return nil
		}
		created, cErr := ads.colorMappingRepo.Create(ctx, tx, mapping)
		if cErr != nil {
			return fmt.Errorf("failed to create color mapping: %w", cErr)
		}
		saved = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	ads.rebuild(ctx)
	return saved, nil
}

func (ads *adminDataService) DeleteColorMapping(ctx context.Context, colorName string) error {
	if err := ads.colorMappingRepo.Delete(ctx, nil, colorName); err != nil {
		return fmt.Errorf("failed to delete color mapping: %w", err)
	}
	ads.rebuild(ctx)
	return nil
}

func (ads *adminDataService) ListRestrictedColours(ctx context.Context, weddingType string) ([]types.RestrictedColour, error) {
	if weddingType == "" {
		return ads.restrictedColourRepo.List(ctx, nil)
	}
	return ads.restrictedColourRepo.ListByWeddingType(ctx, nil, weddingType)
}

func (ads *adminDataService) CreateRestrictedColour(ctx context.Context, restricted *types.RestrictedColour) (*types.RestrictedColour, error) {
	restricted.WeddingType = strings.TrimSpace(restricted.WeddingType)
	restricted.RestrictedColour = normalization.ParseInputString(restricted.RestrictedColour)
	if restricted.WeddingType == "" || restricted.RestrictedColour == "" {
		return nil, fmt.Errorf("wedding type and colour are required")
	}
	created, err := ads.restrictedColourRepo.Create(ctx, nil, restricted)
	if err != nil {
		return nil, fmt.Errorf("failed to create restricted colour: %w", err)
	}
	ads.rebuild(ctx)
	return created, nil
}

func (ads *adminDataService) DeleteRestrictedColour(ctx context.Context, weddingType, colourName string) error {
	if err := ads.restrictedColourRepo.Delete(ctx, nil, weddingType, colourName); err != nil {
		return fmt.Errorf("failed to delete restricted colour: %w", err)
	}
	ads.rebuild(ctx)
	return nil
}

// seedFile is the YAML layout for bulk-loading the rule tables.
type seedFile struct {
	WeddingTypes []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		IsActive    *bool  `yaml:"is_active"`
	} `yaml:"wedding_types"`
	CulturalColors []struct {
		WeddingType          string `yaml:"wedding_type"`
		ColourName           string `yaml:"colour_name"`
		RGB                  string `yaml:"rgb"`
		CulturalSignificance string `yaml:"cultural_significance"`
	} `yaml:"cultural_colors"`
	ColorRules []struct {
		WeddingType       string `yaml:"wedding_type"`
		BrideColour       string `yaml:"bride_colour"`
		GroomColour       string `yaml:"groom_colour"`
		BridesmaidsColour string `yaml:"bridesmaids_colour"`
		BestMenColour     string `yaml:"best_men_colour"`
		FlowerDecoColour  string `yaml:"flower_deco_colour"`
		HallDecorColour   string `yaml:"hall_decor_colour"`
	} `yaml:"color_rules"`
	FoodLocations []struct {
		WeddingType       string `yaml:"wedding_type"`
		FoodMenu          string `yaml:"food_menu"`
		Drinks            string `yaml:"drinks"`
		PreShootLocations string `yaml:"pre_shoot_locations"`
	} `yaml:"food_locations"`
	ColorMappings []struct {
		ColorName   string `yaml:"color_name"`
		RGB         string `yaml:"rgb"`
		Description string `yaml:"description"`
	} `yaml:"color_mappings"`
	RestrictedColours []struct {
		WeddingType      string `yaml:"wedding_type"`
		RestrictedColour string `yaml:"restricted_colour"`
	} `yaml:"restricted_colours"`
}

// SeedReport summarizes a seed import.
type SeedReport struct {
	WeddingTypes      int `json:"wedding_types"`
	CulturalColors    int `json:"cultural_colors"`
	ColorRules        int `json:"color_rules"`
	FoodLocations     int `json:"food_locations"`
	ColorMappings     int `json:"color_mappings"`
	RestrictedColours int `json:"restricted_colours"`
}

// ImportSeedFile bulk-loads the rule tables from a YAML file, upserting row
// by row, then rebuilds the tree once at the end.
func (ads *adminDataService) ImportSeedFile(ctx context.Context, path string) (*SeedReport, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	report := &SeedReport{}
	for _, wt := range seed.WeddingTypes {
		isActive := true
		if wt.IsActive != nil {
			isActive = *wt.IsActive
		}
		if _, gErr := ads.weddingTypeRepo.GetByName(ctx, nil, wt.Name); gErr == nil {
			if _, uErr := ads.UpdateWeddingType(ctx, wt.Name, &wt.Description, &isActive); uErr != nil {
				return nil, uErr
			}
		} else {
			record := &types.WeddingType{Name: wt.Name, Description: wt.Description, IsActive: isActive, ID: uuid.New()}
			if _, cErr := ads.weddingTypeRepo.Create(ctx, nil, record); cErr != nil {
				return nil, fmt.Errorf("seeding wedding type %q: %w", wt.Name, cErr)
			}
		}
		report.WeddingTypes++
	}
	for _, cc := range seed.CulturalColors {
		record := &types.CulturalColor{
			WeddingType:          cc.WeddingType,
			ColourName:           cc.ColourName,
			RGB:                  cc.RGB,
			CulturalSignificance: cc.CulturalSignificance,
		}
		if _, uErr := ads.UpsertCulturalColor(ctx, record); uErr != nil {
			return nil, fmt.Errorf("seeding cultural color %q/%q: %w", cc.WeddingType, cc.ColourName, uErr)
		}
		report.CulturalColors++
	}
	for _, cr := range seed.ColorRules {
		record := &types.ColorRule{
			WeddingType:       cr.WeddingType,
			BrideColour:       cr.BrideColour,
			GroomColour:       cr.GroomColour,
			BridesmaidsColour: cr.BridesmaidsColour,
			BestMenColour:     cr.BestMenColour,
			FlowerDecoColour:  cr.FlowerDecoColour,
			HallDecorColour:   cr.HallDecorColour,
		}
		if _, uErr := ads.UpsertColorRule(ctx, record); uErr != nil {
			return nil, fmt.Errorf("seeding color rule %q/%q: %w", cr.WeddingType, cr.BrideColour, uErr)
		}
		report.ColorRules++
	}
	for _, fl := range seed.FoodLocations {
		record := &types.FoodLocation{
			WeddingType:       fl.WeddingType,
			FoodMenu:          fl.FoodMenu,
			Drinks:            fl.Drinks,
			PreShootLocations: fl.PreShootLocations,
		}
		if _, uErr := ads.UpsertFoodLocation(ctx, record); uErr != nil {
			return nil, fmt.Errorf("seeding food location %q: %w", fl.WeddingType, uErr)
		}
		report.FoodLocations++
	}
	for _, cm := range seed.ColorMappings {
		record := &types.ColorMapping{
			ColorName:   cm.ColorName,
			RGB:         cm.RGB,
			Description: cm.Description,
		}
		if _, uErr := ads.UpsertColorMapping(ctx, record); uErr != nil {
			return nil, fmt.Errorf("seeding color mapping %q: %w", cm.ColorName, uErr)
		}
		report.ColorMappings++
	}
	for _, rc := range seed.RestrictedColours {
		if _, cErr := ads.CreateRestrictedColour(ctx, &types.RestrictedColour{
			WeddingType:      rc.WeddingType,
			RestrictedColour: rc.RestrictedColour,
		}); cErr != nil {
			// Duplicate restriction rows are fine on re-import.
			ads.log.Warn("Skipping restricted colour on import", "wedding_type", rc.WeddingType, "colour", rc.RestrictedColour, "error", cErr)
			continue
		}
		report.RestrictedColours++
	}

	ads.rebuild(ctx)
	return report, nil
}
