package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/poruwalabs/poruwa-backend/internal/repos/testutil"
	"github.com/poruwalabs/poruwa-backend/internal/types"
)

func TestProjectRepoVisibility(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewProjectRepo(db, testutil.Logger(t))

	creator := uuid.New()
	assignee := uuid.New()
	outsider := uuid.New()
	weddingDate := time.Now().AddDate(0, 6, 0)

	created := &types.Project{
		ID:            uuid.New(),
		BrideName:     "Nadeesha",
		GroomName:     "Kasun",
		ContactNumber: "0771234567",
		ContactEmail:  "nadeesha@example.com",
		WeddingDate:   weddingDate,
		WeddingType:   "Kandyan Sinhala Wedding",
		Status:        types.ProjectStatusPlanning,
		CreatedBy:     creator,
	}
	assigned := &types.Project{
		ID:            uuid.New(),
		BrideName:     "Tharushi",
		GroomName:     "Dinesh",
		ContactNumber: "0777654321",
		ContactEmail:  "tharushi@example.com",
		WeddingDate:   weddingDate,
		WeddingType:   "Tamil Hindu Wedding",
		Status:        types.ProjectStatusConfirmed,
		CreatedBy:     uuid.New(),
		AssignedTo:    &assignee,
	}
	for _, p := range []*types.Project{created, assigned} {
		if _, err := repo.Create(ctx, tx, p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	visible, err := repo.ListVisibleTo(ctx, tx, creator)
	if err != nil {
		t.Fatalf("list visible to creator: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != created.ID {
		t.Errorf("creator should see exactly their own project, got %d", len(visible))
	}

	visible, err = repo.ListVisibleTo(ctx, tx, assignee)
	if err != nil {
		t.Fatalf("list visible to assignee: %v", err)
	}
	if len(visible) != 1 || visible[0].ID != assigned.ID {
		t.Errorf("assignee should see exactly their assigned project, got %d", len(visible))
	}

	visible, err = repo.ListVisibleTo(ctx, tx, outsider)
	if err != nil {
		t.Fatalf("list visible to outsider: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("outsider should see no projects, got %d", len(visible))
	}

	counts, err := repo.CountByStatus(ctx, tx)
	if err != nil {
		t.Fatalf("count by status: %v", err)
	}
	if counts[types.ProjectStatusPlanning] < 1 || counts[types.ProjectStatusConfirmed] < 1 {
		t.Errorf("expected at least one planning and one confirmed project, got %v", counts)
	}
}
