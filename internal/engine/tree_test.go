package engine

import (
	"math"
	"testing"
)

func TestEntropy(t *testing.T) {
	if e := entropy(nil); e != 0 {
		t.Errorf("entropy(empty) = %v, want 0", e)
	}
	pure := []sample{
		{weddingType: "a", brideColour: "red"},
		{weddingType: "a", brideColour: "white"},
	}
	if e := entropy(pure); e != 0 {
		t.Errorf("entropy(pure) = %v, want 0", e)
	}
	mixed := []sample{
		{weddingType: "a", brideColour: "red"},
		{weddingType: "b", brideColour: "red"},
	}
	if e := entropy(mixed); math.Abs(e-1.0) > 1e-9 {
		t.Errorf("entropy(50/50) = %v, want 1.0", e)
	}
}

func TestBuildNodeSeparatesEveryExample(t *testing.T) {
	s := newTestSnapshot()
	samples := trainingData(s)
	root := buildNode(samples, []string{"wedding_type", "bride_colour"}, 0)

	// Every trained (type, colour) pair must reach a leaf of its own wedding
	// type. Degenerate leaves may predict a sibling colour; the predictor's
	// colour validation catches those and falls back to direct lookup.
	for _, sm := range samples {
		leaf := traverse(root, sm.weddingType, sm.brideColour)
		if leaf == nil {
			t.Errorf("no leaf for (%s, %s)", sm.weddingType, sm.brideColour)
			continue
		}
		if fold(leaf.outcome.BrideColourMapped) != sm.brideColour && leaf.weddingType != sm.weddingType {
			t.Errorf("leaf for (%s, %s) predicts (%s, %s)",
				sm.weddingType, sm.brideColour, leaf.weddingType, fold(leaf.outcome.BrideColourMapped))
		}
	}
}

func TestTrainingDataExcludesRestrictedAndFoodless(t *testing.T) {
	s := newTestSnapshot()
	samples := trainingData(s)
	for _, sm := range samples {
		if s.IsRestricted(sm.weddingType, sm.brideColour) {
			t.Errorf("restricted pair (%s, %s) made it into training data", sm.weddingType, sm.brideColour)
		}
		if sm.weddingType == "christian wedding" {
			t.Error("rules without a food row should not be trained on")
		}
	}
	if len(samples) != 6 {
		t.Errorf("got %d samples, want 6 (4 Kandyan + 2 Tamil)", len(samples))
	}
}

func TestTraverseNilNode(t *testing.T) {
	if leaf := traverse(nil, "any", "any"); leaf != nil {
		t.Errorf("traverse(nil) = %+v, want nil", leaf)
	}
}

func TestDirectFallback(t *testing.T) {
	s := newTestSnapshot()

	t.Run("exact rule", func(t *testing.T) {
		out := directFallback(s, "Kandyan Wedding", "gold")
		if out == nil || out.BrideColourMapped != "gold" {
			t.Fatalf("fallback = %+v, want the gold rule", out)
		}
		if out.FoodMenu != "Rice and curry buffet" {
			t.Errorf("food menu = %q, want seeded menu", out.FoodMenu)
		}
	})

	t.Run("placeholders when food row missing", func(t *testing.T) {
		out := directFallback(s, "Christian Wedding", "blue")
		if out == nil {
			t.Fatal("expected a fallback outcome")
		}
		if out.FoodMenu != placeholderFoodMenu || out.Drinks != placeholderDrinks || out.PreShootLocations != placeholderLocations {
			t.Errorf("expected placeholder food/drink/location text, got %+v", out)
		}
	})

	t.Run("no blind first-rule answer", func(t *testing.T) {
		// Colour has no cultural entry and no rule for the type: the
		// fallback must miss rather than hand back an arbitrary rule.
		if out := directFallback(s, "Kandyan Wedding", "turquoise"); out != nil {
			t.Errorf("fallback = %+v, want nil for an unmapped colour", out)
		}
	})

	t.Run("near-miss colour spelling", func(t *testing.T) {
		// "blue" exists culturally for Christian; a rule stored under a
		// composite spelling would still be found by containment. Here the
		// exact rule exists, so this exercises the exact path shape only.
		if out := directFallback(s, "christian wedding", "BLUE"); out == nil {
			t.Error("case-insensitive lookup failed")
		}
	})
}
