package services

import (
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidateRGB(t *testing.T) {
	valid := []string{"0,0,0", "255,255,255", "220, 20, 60", " 12,34,56 "}
	for _, rgb := range valid {
		if err := ValidateRGB(rgb); err != nil {
			t.Errorf("ValidateRGB(%q) = %v, want nil", rgb, err)
		}
	}

	invalid := map[string]string{
		"255,255":       "three",
		"1,2,3,4":       "three",
		"256,0,0":       "range",
		"-1,0,0":        "range",
		"red,green,blu": "number",
		"":              "three",
		"10;20;30":      "three",
	}
	for rgb, wantSubstring := range invalid {
		err := ValidateRGB(rgb)
		if err == nil {
			t.Errorf("ValidateRGB(%q) = nil, want error", rgb)
			continue
		}
		if !strings.Contains(err.Error(), wantSubstring) {
			t.Errorf("ValidateRGB(%q) = %q, want mention of %q", rgb, err, wantSubstring)
		}
	}
}

func TestBundledSeedFileParses(t *testing.T) {
	raw, err := os.ReadFile("../../data/seed.yaml")
	if err != nil {
		t.Skipf("seed file not present: %v", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		t.Fatalf("seed file does not parse: %v", err)
	}
	if len(seed.WeddingTypes) == 0 || len(seed.ColorRules) == 0 {
		t.Fatalf("seed file missing wedding types or color rules")
	}
	for _, cc := range seed.CulturalColors {
		if err := ValidateRGB(cc.RGB); err != nil {
			t.Errorf("cultural color %s/%s: %v", cc.WeddingType, cc.ColourName, err)
		}
	}
	for _, cm := range seed.ColorMappings {
		if err := ValidateRGB(cm.RGB); err != nil {
			t.Errorf("color mapping %s: %v", cm.ColorName, err)
		}
	}
	// Every rule's wedding type must be declared.
	declared := map[string]bool{}
	for _, wt := range seed.WeddingTypes {
		declared[wt.Name] = true
	}
	for _, cr := range seed.ColorRules {
		if !declared[cr.WeddingType] {
			t.Errorf("color rule references undeclared wedding type %q", cr.WeddingType)
		}
	}
}
