package engine

import (
	"strings"

	"github.com/poruwalabs/poruwa-backend/internal/types"
)

// Snapshot is an immutable view of the rule tables taken at build time. All
// engine lookups run against it; nothing here touches the database. Keys in
// the derived maps are folded (lowercased, trimmed) once so the resolver and
// predictor compare folded values throughout.
type Snapshot struct {
	WeddingTypes      []types.WeddingType
	CulturalColors    []types.CulturalColor
	ColorRules        []types.ColorRule
	FoodLocations     []types.FoodLocation
	ColorMappings     []types.ColorMapping
	RestrictedColours []types.RestrictedColour

	typeNames       []string // distinct cultural-color wedding types, first-seen order
	colorsByType    map[string][]types.CulturalColor
	culturalByKey   map[string]map[string]*types.CulturalColor
	rulesByType     map[string][]types.ColorRule
	ruleByKey       map[string]map[string]*types.ColorRule
	foodByType      map[string]*types.FoodLocation
	restrictedByKey map[string]map[string]bool
	mappingRGB      map[string]string
	culturalRGB     map[string]string // colour name across all wedding types, first wins
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewSnapshot builds the derived lookup maps over the raw relations. The
// slices are not copied; callers hand ownership to the snapshot.
func NewSnapshot(
	weddingTypes []types.WeddingType,
	culturalColors []types.CulturalColor,
	colorRules []types.ColorRule,
	foodLocations []types.FoodLocation,
	colorMappings []types.ColorMapping,
	restrictedColours []types.RestrictedColour,
) *Snapshot {
	s := &Snapshot{
		WeddingTypes:      weddingTypes,
		CulturalColors:    culturalColors,
		ColorRules:        colorRules,
		FoodLocations:     foodLocations,
		ColorMappings:     colorMappings,
		RestrictedColours: restrictedColours,

		colorsByType:    make(map[string][]types.CulturalColor),
		culturalByKey:   make(map[string]map[string]*types.CulturalColor),
		rulesByType:     make(map[string][]types.ColorRule),
		ruleByKey:       make(map[string]map[string]*types.ColorRule),
		foodByType:      make(map[string]*types.FoodLocation),
		restrictedByKey: make(map[string]map[string]bool),
		mappingRGB:      make(map[string]string),
		culturalRGB:     make(map[string]string),
	}

	seenTypes := make(map[string]bool)
	for i := range culturalColors {
		cc := &s.CulturalColors[i]
		ft := fold(cc.WeddingType)
		fc := fold(cc.ColourName)
		if !seenTypes[ft] {
			seenTypes[ft] = true
			s.typeNames = append(s.typeNames, cc.WeddingType)
		}
		s.colorsByType[ft] = append(s.colorsByType[ft], *cc)
		if s.culturalByKey[ft] == nil {
			s.culturalByKey[ft] = make(map[string]*types.CulturalColor)
		}
		if s.culturalByKey[ft][fc] == nil {
			s.culturalByKey[ft][fc] = cc
		}
		if _, ok := s.culturalRGB[fc]; !ok {
			s.culturalRGB[fc] = cc.RGB
		}
	}

	for i := range colorRules {
		r := &s.ColorRules[i]
		ft := fold(r.WeddingType)
		fc := fold(r.BrideColour)
		s.rulesByType[ft] = append(s.rulesByType[ft], *r)
		if s.ruleByKey[ft] == nil {
			s.ruleByKey[ft] = make(map[string]*types.ColorRule)
		}
		if s.ruleByKey[ft][fc] == nil {
			s.ruleByKey[ft][fc] = r
		}
	}

	for i := range foodLocations {
		fl := &s.FoodLocations[i]
		ft := fold(fl.WeddingType)
		if s.foodByType[ft] == nil {
			s.foodByType[ft] = fl
		}
	}

	for i := range restrictedColours {
		rc := &s.RestrictedColours[i]
		ft := fold(rc.WeddingType)
		if s.restrictedByKey[ft] == nil {
			s.restrictedByKey[ft] = make(map[string]bool)
		}
		s.restrictedByKey[ft][fold(rc.RestrictedColour)] = true
	}

	for i := range colorMappings {
		cm := &s.ColorMappings[i]
		s.mappingRGB[fold(cm.ColorName)] = cm.RGB
	}

	return s
}

// IsRestricted reports whether a colour may not be used as the bride's dress
// color for the wedding type. The restriction check is membership only; the
// colour does not need a cultural entry to be restricted.
func (s *Snapshot) IsRestricted(weddingType, colour string) bool {
	return s.restrictedByKey[fold(weddingType)][fold(colour)]
}

// HasRestrictions reports whether any colour is restricted for the type.
func (s *Snapshot) HasRestrictions(weddingType string) bool {
	return len(s.restrictedByKey[fold(weddingType)]) > 0
}

// DefaultColor returns the sentinel "default" cultural entry for the type.
func (s *Snapshot) DefaultColor(weddingType string) (*types.CulturalColor, bool) {
	cc := s.culturalByKey[fold(weddingType)]["default"]
	if cc == nil {
		return nil, false
	}
	return cc, true
}

// ColorsFor returns the cultural colors stored under the exact (folded)
// wedding type name.
func (s *Snapshot) ColorsFor(weddingType string) []types.CulturalColor {
	return s.colorsByType[fold(weddingType)]
}

// colorsForFuzzy retries with the substring heuristic when no colors exist
// under the exact canonical name (e.g. "Tamil Wedding" -> "Tamil Hindu
// Wedding").
func (s *Snapshot) colorsForFuzzy(weddingType string) []types.CulturalColor {
	if colors := s.ColorsFor(weddingType); len(colors) > 0 {
		return colors
	}
	ft := fold(weddingType)
	for _, name := range s.typeNames {
		fn := fold(name)
		if strings.Contains(fn, ft) || strings.Contains(ft, fn) {
			if colors := s.colorsByType[fn]; len(colors) > 0 {
				return colors
			}
		}
	}
	return nil
}

func (s *Snapshot) culturalColorFor(weddingType, colour string) (*types.CulturalColor, bool) {
	cc := s.culturalByKey[fold(weddingType)][fold(colour)]
	if cc == nil {
		return nil, false
	}
	return cc, true
}

func (s *Snapshot) ruleFor(weddingType, colour string) (*types.ColorRule, bool) {
	r := s.ruleByKey[fold(weddingType)][fold(colour)]
	if r == nil {
		return nil, false
	}
	return r, true
}

// RuleCount counts the ColorRule rows stored under the exact type name. The
// normalizer uses it to break fuzzy-match ties in favor of richer data.
func (s *Snapshot) RuleCount(weddingType string) int {
	count := 0
	for i := range s.ColorRules {
		if s.ColorRules[i].WeddingType == weddingType {
			count++
		}
	}
	return count
}

func (s *Snapshot) foodFor(weddingType string) *types.FoodLocation {
	ft := fold(weddingType)
	if fl := s.foodByType[ft]; fl != nil {
		return fl
	}
	for i := range s.FoodLocations {
		fn := fold(s.FoodLocations[i].WeddingType)
		if strings.Contains(fn, ft) || strings.Contains(ft, fn) {
			return &s.FoodLocations[i]
		}
	}
	return nil
}

// FoodProfileExists reports whether a food/location row exists for the type,
// fuzzy substring retry included.
func (s *Snapshot) FoodProfileExists(weddingType string) bool {
	return s.foodFor(weddingType) != nil
}

// hasAnyData reports whether the snapshot holds any rows for the type at all.
// It decides between the two prediction failure modes.
func (s *Snapshot) hasAnyData(weddingType string) bool {
	ft := fold(weddingType)
	return len(s.colorsByType[ft]) > 0 || len(s.rulesByType[ft]) > 0
}

// CulturalSignificance returns the significance text for a (type, colour)
// pair, or "" when none is recorded.
func (s *Snapshot) CulturalSignificance(weddingType, colour string) string {
	if cc, ok := s.culturalColorFor(weddingType, colour); ok {
		return cc.CulturalSignificance
	}
	return ""
}

// Confidence scores how much data backs a (type, colour) pair: 0.3 when the
// wedding type has cultural colors, 0.4 when the colour itself has a cultural
// entry, 0.3 when a color rule exists, capped at 1.0.
func (s *Snapshot) Confidence(weddingType, colour string) float64 {
	if strings.TrimSpace(weddingType) == "" || strings.TrimSpace(colour) == "" {
		return 0.0
	}
	confidence := 0.0
	if len(s.colorsByType[fold(weddingType)]) > 0 {
		confidence += 0.3
	}
	if _, ok := s.culturalColorFor(weddingType, colour); ok {
		confidence += 0.4
	}
	if _, ok := s.ruleFor(weddingType, colour); ok {
		confidence += 0.3
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
