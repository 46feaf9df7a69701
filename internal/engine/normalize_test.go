package engine

import (
	"testing"

	"github.com/poruwalabs/poruwa-backend/internal/types"
)

func TestNormalize(t *testing.T) {
	s := newTestSnapshot()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"exact match is a fixed point", "Kandyan Wedding", "Kandyan Wedding"},
		{"case-insensitive match", "kandyan wedding", "Kandyan Wedding"},
		{"upper-case match", "TAMIL HINDU WEDDING", "Tamil Hindu Wedding"},
		{"fuzzy token match", "Tamil Wedding", "Tamil Hindu Wedding"},
		{"fuzzy with extra whitespace", "  tamil wedding  ", "Tamil Hindu Wedding"},
		{"substring of canonical", "Kandyan", "Kandyan Wedding"},
		{"zero-score input passes through", "Garden Party", "Garden Party"},
		{"empty input passes through", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIsFixedPointOnAllCanonicalNames(t *testing.T) {
	s := newTestSnapshot()
	for _, name := range s.typeNames {
		if got := s.Normalize(name); got != name {
			t.Errorf("Normalize(%q) = %q, expected the canonical name unchanged", name, got)
		}
	}
}

func TestRuleCountBreaksFuzzyTies(t *testing.T) {
	// Two types score within 10% of each other on "Hindu Wedding"; the one
	// backed by more color rules should win even though its raw score is
	// fractionally lower.
	s := NewSnapshot(
		nil,
		[]types.CulturalColor{
			{WeddingType: "Tamil Hindu Wedding", ColourName: "red", RGB: "255,0,0"},
			{WeddingType: "Telugu Hindu Wedding", ColourName: "red", RGB: "255,0,0"},
		},
		[]types.ColorRule{
			{WeddingType: "Telugu Hindu Wedding", BrideColour: "red"},
			{WeddingType: "Telugu Hindu Wedding", BrideColour: "yellow"},
		},
		nil, nil, nil,
	)
	if got := s.Normalize("Hindu Wedding"); got != "Telugu Hindu Wedding" {
		t.Errorf("Normalize(%q) = %q, want the rule-rich candidate", "Hindu Wedding", got)
	}
}
