package reviewRepo

import (
	"context"
	"testing"

	"github.com/komo3344/airbnb-backend/models"
)

func TestMemoryReviewRepoListBySubject(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryReviewRepo()
	reviews := []models.Review{
		{ID: "r1", Kind: models.KindRoom, SubjectID: "1", Rating: 4},
		{ID: "r2", Kind: models.KindExperience, SubjectID: "1", Rating: 5},
		{ID: "r3", Kind: models.KindRoom, SubjectID: "1", Rating: 2},
		{ID: "r4", Kind: models.KindRoom, SubjectID: "2", Rating: 3},
	}
	for i := range reviews {
		if err := repo.Create(ctx, &reviews[i]); err != nil {
			t.Fatalf("create %s: %v", reviews[i].ID, err)
		}
	}

	got, err := repo.ListBySubject(ctx, models.Subject{Kind: models.KindRoom, ID: "1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "r3" || got[1].ID != "r1" {
		t.Fatalf("want r3, r1 newest first, got %+v", got)
	}

	none, _ := repo.ListBySubject(ctx, models.Subject{Kind: models.KindExperience, ID: "9"})
	if none == nil || len(none) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", none)
	}
}
