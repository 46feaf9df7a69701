package repos

import (
	"context"
	"testing"

	"github.com/poruwalabs/poruwa-backend/internal/repos/testutil"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

func TestColorRuleRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewColorRuleRepo(db, testutil.Logger(t))

	rule := &types.ColorRule{
		WeddingType:       "Kandyan Sinhala Wedding",
		BrideColour:       "red",
		GroomColour:       "White and Gold",
		BridesmaidsColour: "Gold",
		BestMenColour:     "White",
		FlowerDecoColour:  "Red and Gold",
		HallDecorColour:   "Maroon and Gold",
	}
	if _, err := repo.Create(ctx, tx, rule); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Lookups are case-insensitive on both key columns.
	got, err := repo.Get(ctx, tx, "KANDYAN sinhala WEDDING", "Red")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.GroomColour != "White and Gold" {
		t.Errorf("GroomColour = %q, want %q", got.GroomColour, "White and Gold")
	}

	got.HallDecorColour = "Gold"
	if _, err := repo.Update(ctx, tx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := repo.Get(ctx, tx, rule.WeddingType, rule.BrideColour)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if updated.HallDecorColour != "Gold" {
		t.Errorf("HallDecorColour = %q, want %q", updated.HallDecorColour, "Gold")
	}

	byType, err := repo.ListByWeddingType(ctx, tx, rule.WeddingType)
	if err != nil {
		t.Fatalf("list by type: %v", err)
	}
	if len(byType) != 1 {
		t.Errorf("ListByWeddingType returned %d rules, want 1", len(byType))
	}

	if err := repo.Delete(ctx, tx, rule.WeddingType, rule.BrideColour); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, tx, rule.WeddingType, rule.BrideColour); err == nil {
		t.Errorf("expected get after delete to fail")
	}
}
