package engine

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/poruwalabs/poruwa-backend/internal/logger"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

func newTestSnapshot() *Snapshot {
	weddingTypes := []types.WeddingType{
		{Name: "Kandyan Wedding", IsActive: true},
		{Name: "Tamil Hindu Wedding", IsActive: true},
		{Name: "Christian Wedding", IsActive: true},
		{Name: "Buddhist Wedding", IsActive: true},
	}
	culturalColors := []types.CulturalColor{
		{WeddingType: "Kandyan Wedding", ColourName: "red", RGB: "220,20,60", CulturalSignificance: "Symbol of prosperity and celebration"},
		{WeddingType: "Kandyan Wedding", ColourName: "white", RGB: "255,255,255"},
		{WeddingType: "Kandyan Wedding", ColourName: "gold", RGB: "255,215,0"},
		{WeddingType: "Kandyan Wedding", ColourName: "default", RGB: "220,20,60"},
		{WeddingType: "Tamil Hindu Wedding", ColourName: "red", RGB: "255,0,0", CulturalSignificance: "Auspicious color for the bride"},
		{WeddingType: "Tamil Hindu Wedding", ColourName: "yellow", RGB: "255,255,0"},
		{WeddingType: "Christian Wedding", ColourName: "white", RGB: "255,255,255"},
		{WeddingType: "Christian Wedding", ColourName: "blue", RGB: "0,0,255"},
		{WeddingType: "Buddhist Wedding", ColourName: "white", RGB: "255,255,255"},
	}
	colorRules := []types.ColorRule{
		{WeddingType: "Kandyan Wedding", BrideColour: "red", GroomColour: "Gold", BridesmaidsColour: "Red and Gold", BestMenColour: "White", FlowerDecoColour: "Red", HallDecorColour: "Gold and White"},
		{WeddingType: "Kandyan Wedding", BrideColour: "white", GroomColour: "White", BridesmaidsColour: "Gold", BestMenColour: "White", FlowerDecoColour: "White", HallDecorColour: "White and Gold"},
		{WeddingType: "Kandyan Wedding", BrideColour: "gold", GroomColour: "Gold", BridesmaidsColour: "Gold", BestMenColour: "Gold", FlowerDecoColour: "Gold", HallDecorColour: "Gold"},
		{WeddingType: "Kandyan Wedding", BrideColour: "default", GroomColour: "Gold", BridesmaidsColour: "Red and Gold", BestMenColour: "White", FlowerDecoColour: "Red", HallDecorColour: "Gold and White"},
		{WeddingType: "Tamil Hindu Wedding", BrideColour: "red", GroomColour: "Cream", BridesmaidsColour: "Red", BestMenColour: "Cream", FlowerDecoColour: "Red and Yellow", HallDecorColour: "Red"},
		{WeddingType: "Tamil Hindu Wedding", BrideColour: "yellow", GroomColour: "Cream", BridesmaidsColour: "Yellow", BestMenColour: "Cream", FlowerDecoColour: "Yellow", HallDecorColour: "Yellow and Red"},
		{WeddingType: "Christian Wedding", BrideColour: "white", GroomColour: "Black", BridesmaidsColour: "Blue", BestMenColour: "Black", FlowerDecoColour: "White", HallDecorColour: "White and Blue"},
		{WeddingType: "Christian Wedding", BrideColour: "blue", GroomColour: "Navy", BridesmaidsColour: "Blue", BestMenColour: "Navy", FlowerDecoColour: "Blue", HallDecorColour: "Blue and White"},
	}
	foodLocations := []types.FoodLocation{
		{WeddingType: "Kandyan Wedding", FoodMenu: "Rice and curry buffet", Drinks: "King coconut", PreShootLocations: "Temple of the Tooth"},
		{WeddingType: "Tamil Hindu Wedding", FoodMenu: "Vegetarian banana-leaf meal", Drinks: "Mango lassi", PreShootLocations: "Kovil courtyard"},
	}
	colorMappings := []types.ColorMapping{
		{ColorName: "crimson", RGB: "220,20,60"},
		{ColorName: "navy", RGB: "0,0,128"},
	}
	restrictedColours := []types.RestrictedColour{
		{WeddingType: "Kandyan Wedding", RestrictedColour: "black"},
		{WeddingType: "Tamil Hindu Wedding", RestrictedColour: "black"},
		{WeddingType: "Tamil Hindu Wedding", RestrictedColour: "white"},
	}
	return NewSnapshot(weddingTypes, culturalColors, colorRules, foodLocations, colorMappings, restrictedColours)
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return NewEngine(log, func(ctx context.Context) (*Snapshot, error) {
		return newTestSnapshot(), nil
	})
}

func TestPredictKnownCombination(t *testing.T) {
	e := newTestEngine(t)
	got, err := e.Predict(context.Background(), "Kandyan Wedding", "red")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.WeddingType != "Kandyan Wedding" {
		t.Errorf("wedding type = %q, want %q", got.WeddingType, "Kandyan Wedding")
	}
	if got.BrideColour != "red" {
		t.Errorf("bride colour = %q, want %q", got.BrideColour, "red")
	}
	if got.GroomColour != "Gold" {
		t.Errorf("groom colour = %q, want %q", got.GroomColour, "Gold")
	}
	if got.FoodMenu != "Rice and curry buffet" {
		t.Errorf("food menu = %q, want seeded menu", got.FoodMenu)
	}
	if got.SuggestionConfidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", got.SuggestionConfidence)
	}
	if got.RestrictionMessage != "" {
		t.Errorf("unexpected restriction message %q", got.RestrictionMessage)
	}
	if got.CulturalSignificance == "" {
		t.Error("expected cultural significance to be filled in")
	}
	if got.PredictionMetadata.OriginalWeddingType != "Kandyan Wedding" {
		t.Errorf("metadata original type = %q", got.PredictionMetadata.OriginalWeddingType)
	}
}

func TestPredictRestrictedColourSubstitution(t *testing.T) {
	e := newTestEngine(t)
	got, err := e.Predict(context.Background(), "Tamil Hindu Wedding", "black")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.RestrictionMessage == "" {
		t.Fatal("expected a restriction message")
	}
	if !strings.Contains(got.RestrictionMessage, "black") {
		t.Errorf("restriction message %q should name the rejected colour", got.RestrictionMessage)
	}
	if got.OriginalBrideColour != "black" {
		t.Errorf("original bride colour = %q, want %q", got.OriginalBrideColour, "black")
	}
	// No default entry for Tamil: nearest non-restricted neighbour of black
	// (0,0,0) is red (255,0,0).
	if got.PredictionMetadata.MappedBrideColour != "red" {
		t.Errorf("mapped bride colour = %q, want %q", got.PredictionMetadata.MappedBrideColour, "red")
	}
	if got.BrideColour == "black" {
		t.Error("restricted colour must never be suggested")
	}
}

func TestPredictFuzzyWeddingType(t *testing.T) {
	e := newTestEngine(t)
	got, err := e.Predict(context.Background(), "Tamil Wedding", "red")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.WeddingType != "Tamil Hindu Wedding" {
		t.Errorf("wedding type = %q, want %q", got.WeddingType, "Tamil Hindu Wedding")
	}
	if got.PredictionMetadata.OriginalWeddingType != "Tamil Wedding" {
		t.Errorf("metadata should keep the raw input, got %q", got.PredictionMetadata.OriginalWeddingType)
	}
	if got.GroomColour != "Cream" {
		t.Errorf("groom colour = %q, want %q", got.GroomColour, "Cream")
	}
}

func TestPredictUnknownColourMapsByRGB(t *testing.T) {
	e := newTestEngine(t)
	got, err := e.Predict(context.Background(), "Tamil Hindu Wedding", "crimson")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.PredictionMetadata.MappedBrideColour != "red" {
		t.Errorf("mapped bride colour = %q, want %q (nearest by RGB)", got.PredictionMetadata.MappedBrideColour, "red")
	}
	if got.RestrictionMessage != "" {
		t.Errorf("unexpected restriction message %q", got.RestrictionMessage)
	}
}

func TestSuggestionJSONFieldNames(t *testing.T) {
	e := newTestEngine(t)
	got, err := e.Predict(context.Background(), "Kandyan Wedding", "red")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var fields map[string]json.RawMessage
	if uErr := json.Unmarshal(raw, &fields); uErr != nil {
		t.Fatalf("Unmarshal: %v", uErr)
	}
	for _, key := range []string{
		"bride_colour_mapped", "groom_colour", "bridesmaids_colour",
		"best_men_colour", "flower_deco_colour", "hall_decor_colour",
		"food_menu", "drinks", "pre_shoot_locations",
		"suggestion_confidence", "color_details", "prediction_metadata",
	} {
		if _, ok := fields[key]; !ok {
			t.Errorf("serialized suggestion is missing %q", key)
		}
	}
	if _, ok := fields["bride_colour"]; ok {
		t.Error("the mapped colour must serialize as bride_colour_mapped, not bride_colour")
	}
}

func TestPredictNearMissRuleScoresMappedColour(t *testing.T) {
	// "blue" has a cultural entry but no rule of its own; the fallback serves
	// the "navy blue" rule by containment. Confidence and significance must
	// still score the mapped colour, not the rule's colour.
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	e := NewEngine(log, func(ctx context.Context) (*Snapshot, error) {
		return NewSnapshot(
			[]types.WeddingType{{Name: "Christian Wedding", IsActive: true}},
			[]types.CulturalColor{
				{WeddingType: "Christian Wedding", ColourName: "blue", RGB: "0,0,255", CulturalSignificance: "Fidelity and trust"},
				{WeddingType: "Christian Wedding", ColourName: "white", RGB: "255,255,255"},
			},
			[]types.ColorRule{
				{WeddingType: "Christian Wedding", BrideColour: "navy blue", GroomColour: "Navy", BridesmaidsColour: "Blue", BestMenColour: "Navy", FlowerDecoColour: "Blue", HallDecorColour: "Blue and White"},
				{WeddingType: "Christian Wedding", BrideColour: "white", GroomColour: "Black", BridesmaidsColour: "Blue", BestMenColour: "Black", FlowerDecoColour: "White", HallDecorColour: "White and Blue"},
			},
			nil, nil, nil,
		), nil
	})

	got, err := e.Predict(context.Background(), "Christian Wedding", "blue")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.PredictionMetadata.MappedBrideColour != "blue" {
		t.Fatalf("mapped bride colour = %q, want %q", got.PredictionMetadata.MappedBrideColour, "blue")
	}
	if got.BrideColour != "navy blue" {
		t.Errorf("served rule colour = %q, want %q", got.BrideColour, "navy blue")
	}
	// 0.3 for the type's cultural colors + 0.4 for blue's cultural entry;
	// no rule exists for "blue" itself.
	if got.SuggestionConfidence != 0.7 {
		t.Errorf("confidence = %v, want 0.7", got.SuggestionConfidence)
	}
	if got.PredictionMetadata.ConfidenceScore != 0.7 {
		t.Errorf("metadata confidence = %v, want 0.7", got.PredictionMetadata.ConfidenceScore)
	}
	if got.CulturalSignificance != "Fidelity and trust" {
		t.Errorf("cultural significance = %q, want the mapped colour's entry", got.CulturalSignificance)
	}
}

func TestPredictHexInput(t *testing.T) {
	e := newTestEngine(t)

	t.Run("maps to nearest cultural colour", func(t *testing.T) {
		got, err := e.Predict(context.Background(), "Tamil Hindu Wedding", "#FFFF00")
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if got.PredictionMetadata.MappedBrideColour != "yellow" {
			t.Errorf("mapped = %q, want yellow", got.PredictionMetadata.MappedBrideColour)
		}
	})

	t.Run("restricted hex substitutes with note", func(t *testing.T) {
		got, err := e.Predict(context.Background(), "Kandyan Wedding", "#000000")
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if got.RestrictionMessage == "" {
			t.Fatal("expected a restriction message for restricted hex input")
		}
		if !strings.Contains(got.RestrictionMessage, "black") {
			t.Errorf("restriction message %q should name 'black'", got.RestrictionMessage)
		}
	})

	t.Run("malformed hex degrades to default", func(t *testing.T) {
		got, err := e.Predict(context.Background(), "Kandyan Wedding", "#ZZZ")
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if got.RestrictionMessage != "" {
			t.Errorf("malformed hex should not produce a restriction note, got %q", got.RestrictionMessage)
		}
		if got.PredictionMetadata.MappedBrideColour != "default" {
			t.Errorf("mapped = %q, want the configured default", got.PredictionMetadata.MappedBrideColour)
		}
	})
}

func TestPredictMissingFoodRowUsesPlaceholders(t *testing.T) {
	e := newTestEngine(t)
	got, err := e.Predict(context.Background(), "Christian Wedding", "white")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.FoodMenu != placeholderFoodMenu {
		t.Errorf("food menu = %q, want placeholder", got.FoodMenu)
	}
	if got.Drinks != placeholderDrinks {
		t.Errorf("drinks = %q, want placeholder", got.Drinks)
	}
}

func TestPredictErrors(t *testing.T) {
	e := newTestEngine(t)

	t.Run("unknown wedding type", func(t *testing.T) {
		_, err := e.Predict(context.Background(), "Martian Ceremony", "red")
		if !errors.Is(err, ErrWeddingTypeNotFound) {
			t.Fatalf("err = %v, want ErrWeddingTypeNotFound", err)
		}
	})

	t.Run("type with colours but no rules", func(t *testing.T) {
		_, err := e.Predict(context.Background(), "Buddhist Wedding", "white")
		if !errors.Is(err, ErrNoRuleForCombination) {
			t.Fatalf("err = %v, want ErrNoRuleForCombination", err)
		}
	})
}

func TestPredictNeverSuggestsRestrictedBrideColour(t *testing.T) {
	e := newTestEngine(t)
	inputs := []string{"black", "Black", "#000000", "#808080", "white", "red", "crimson", "nonsense-color"}
	for _, in := range inputs {
		got, err := e.Predict(context.Background(), "Tamil Hindu Wedding", in)
		if err != nil {
			t.Fatalf("Predict(%q): %v", in, err)
		}
		if fold(got.BrideColour) == "black" || fold(got.BrideColour) == "white" {
			t.Errorf("input %q suggested restricted bride colour %q", in, got.BrideColour)
		}
	}
}

func TestRebuildIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	first, err := e.Predict(context.Background(), "Kandyan Wedding", "gold")
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if err := e.Rebuild(context.Background()); err != nil {
		t.Fatalf("Rebuild: %v", err)
	}
	second, err := e.Predict(context.Background(), "Kandyan Wedding", "gold")
	if err != nil {
		t.Fatalf("Predict after rebuild: %v", err)
	}
	if first.BrideColour != second.BrideColour ||
		first.GroomColour != second.GroomColour ||
		first.HallDecorColour != second.HallDecorColour {
		t.Errorf("rebuild changed the prediction: %+v vs %+v", first, second)
	}
}

func TestInfo(t *testing.T) {
	e := newTestEngine(t)
	if e.IsBuilt() {
		t.Fatal("engine should start unbuilt")
	}
	if info := e.Info(); info.Built {
		t.Fatal("Info should report unbuilt before first use")
	}
	if _, err := e.Predict(context.Background(), "Kandyan Wedding", "red"); err != nil {
		t.Fatalf("Predict: %v", err)
	}
	info := e.Info()
	if !info.Built {
		t.Fatal("Info should report built after first prediction")
	}
	if info.RuleCount != 8 {
		t.Errorf("rule count = %d, want 8", info.RuleCount)
	}
	if info.TypeCount != 4 {
		t.Errorf("type count = %d, want 4", info.TypeCount)
	}
	if e.LastBuildTime().IsZero() {
		t.Error("LastBuildTime should be set after build")
	}
}

func TestColorDetailsCoverAllSlots(t *testing.T) {
	s := newTestSnapshot()
	outcome := &RuleOutcome{
		BrideColourMapped: "red",
		GroomColour:       "Gold",
		BridesmaidsColour: "Red and Gold",
		BestMenColour:     "White",
		FlowerDecoColour:  "Red",
		HallDecorColour:   "Gold and White",
	}
	details := s.ColorDetails("Kandyan Wedding", outcome)
	for _, slot := range []string{
		"bride_colour", "groom_colour", "bridesmaids_colour",
		"best_men_colour", "flower_deco_colour", "hall_decor_colour",
	} {
		d, ok := details[slot]
		if !ok {
			t.Fatalf("missing slot %q", slot)
		}
		if len(d.Swatches) == 0 {
			t.Errorf("slot %q has no swatches", slot)
		}
	}
	if got := details["bridesmaids_colour"]; len(got.Swatches) != 2 {
		t.Errorf("composite colour should yield 2 swatches, got %d", len(got.Swatches))
	}
	if got := details["bride_colour"]; got.RGB == nil || *got.RGB != "220,20,60" {
		t.Errorf("bride colour rgb = %v, want 220,20,60", got.RGB)
	}
}
