package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/poruwalabs/poruwa-backend/internal/engine"
	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/repos"
)

// WeddingTypeInfo is the enriched listing entry for one wedding type.
type WeddingTypeInfo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ColorCount      int    `json:"color_count"`
	RuleCount       int    `json:"rule_count"`
	HasRestrictions bool   `json:"has_restrictions"`
	HasFoodProfile  bool   `json:"has_food_profile"`
}

// ColorInfo is one valid bride color for a wedding type, with display data.
type ColorInfo struct {
	ColourName           string  `json:"colour_name"`
	RGB                  string  `json:"rgb"`
	Hex                  *string `json:"hex"`
	CulturalSignificance string  `json:"cultural_significance"`
	IsDefault            bool    `json:"is_default"`
}

type WeddingService interface {
	AvailableWeddingTypes(ctx context.Context) ([]WeddingTypeInfo, error)
	ColorsForType(ctx context.Context, weddingType string) (string, []ColorInfo, []string, error)
}

type weddingService struct {
	db                   *gorm.DB
	log                  *logger.Logger
	eng                  *engine.Engine
	weddingTypeRepo      repos.WeddingTypeRepo
	restrictedColourRepo repos.RestrictedColourRepo
}

func NewWeddingService(
	db *gorm.DB,
	log *logger.Logger,
	eng *engine.Engine,
	weddingTypeRepo repos.WeddingTypeRepo,
	restrictedColourRepo repos.RestrictedColourRepo,
) WeddingService {
	serviceLog := log.With("service", "WeddingService")
	return &weddingService{
		db:                   db,
		log:                  serviceLog,
		eng:                  eng,
		weddingTypeRepo:      weddingTypeRepo,
		restrictedColourRepo: restrictedColourRepo,
	}
}

// AvailableWeddingTypes lists active wedding types enriched with how much
// rule data stands behind each one.
func (ws *weddingService) AvailableWeddingTypes(ctx context.Context) ([]WeddingTypeInfo, error) {
	snapshot, err := ws.eng.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading rule snapshot: %w", err)
	}
	active, lErr := ws.weddingTypeRepo.ListActive(ctx, nil)
	if lErr != nil {
		return nil, fmt.Errorf("listing wedding types: %w", lErr)
	}
	infos := make([]WeddingTypeInfo, 0, len(active))
	for _, wt := range active {
		colors := snapshot.ColorsFor(wt.Name)
		infos = append(infos, WeddingTypeInfo{
			Name:            wt.Name,
			Description:     wt.Description,
			ColorCount:      len(colors),
			RuleCount:       snapshot.RuleCount(wt.Name),
			HasRestrictions: snapshot.HasRestrictions(wt.Name),
			HasFoodProfile:  snapshot.FoodProfileExists(wt.Name),
		})
	}
	return infos, nil
}

// ColorsForType returns the canonical name, the valid (non-sentinel) colors,
// and the restricted colour names for a wedding type. The input is run
// through the normalizer first so fuzzy names work here as well.
func (ws *weddingService) ColorsForType(ctx context.Context, weddingType string) (string, []ColorInfo, []string, error) {
	snapshot, err := ws.eng.Snapshot(ctx)
	if err != nil {
		return "", nil, nil, fmt.Errorf("loading rule snapshot: %w", err)
	}
	canonical := snapshot.Normalize(weddingType)
	colors := snapshot.ColorsFor(canonical)
	if len(colors) == 0 {
		return "", nil, nil, fmt.Errorf("%w: %q", engine.ErrWeddingTypeNotFound, weddingType)
	}

	infos := make([]ColorInfo, 0, len(colors))
	for _, color := range colors {
		info := ColorInfo{
			ColourName:           color.ColourName,
			RGB:                  color.RGB,
			CulturalSignificance: color.CulturalSignificance,
			IsDefault:            isDefaultName(color.ColourName),
		}
		if hex, ok := engine.RGBToHex(color.RGB); ok {
			info.Hex = &hex
		}
		infos = append(infos, info)
	}

	restricted, rErr := ws.restrictedColourRepo.ListByWeddingType(ctx, nil, canonical)
	if rErr != nil {
		return "", nil, nil, fmt.Errorf("listing restricted colours: %w", rErr)
	}
	names := make([]string, 0, len(restricted))
	for _, rc := range restricted {
		names = append(names, rc.RestrictedColour)
	}
	return canonical, infos, names, nil
}

func isDefaultName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), "default")
}
