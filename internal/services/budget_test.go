package services

import (
	"testing"

	"github.com/poruwalabs/poruwa-backend/internal/types"
)

func TestSummarizeBudget(t *testing.T) {
	items := []*types.BudgetItem{
		{Category: "venue", PlannedAmount: 500000, ActualAmount: 520000},
		{Category: "catering", PlannedAmount: 300000, ActualAmount: 250000},
		{Category: "photography", PlannedAmount: 150000},
	}

	summary := summarizeBudget(1200000, items)

	if summary.ItemCount != 3 {
		t.Fatalf("expected 3 items, got %d", summary.ItemCount)
	}
	if summary.TotalPlanned != 950000 {
		t.Errorf("total planned = %v, want 950000", summary.TotalPlanned)
	}
	if summary.TotalActual != 770000 {
		t.Errorf("total actual = %v, want 770000", summary.TotalActual)
	}
	if summary.Variance != 180000 {
		t.Errorf("variance = %v, want 180000", summary.Variance)
	}
	if summary.Remaining != 430000 {
		t.Errorf("remaining = %v, want 430000", summary.Remaining)
	}
}

func TestSummarizeBudgetEmpty(t *testing.T) {
	summary := summarizeBudget(800000, nil)
	if summary.ItemCount != 0 || summary.TotalPlanned != 0 || summary.TotalActual != 0 {
		t.Fatalf("expected zero totals, got %+v", summary)
	}
	if summary.Remaining != 800000 {
		t.Errorf("remaining = %v, want full budget", summary.Remaining)
	}
}
