package catalogRepo

import (
	"context"
	"errors"
	"testing"

	"github.com/komo3344/airbnb-backend/models"
)

func TestMemoryCatalog(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAmenityRepo()
	for _, a := range []models.Amenity{{ID: "wifi", Name: "Wi-Fi"}, {ID: "pool", Name: "Pool"}} {
		a := a
		if err := repo.Create(ctx, &a); err != nil {
			t.Fatalf("create %s: %v", a.ID, err)
		}
	}
	if err := repo.Create(ctx, &models.Amenity{ID: "wifi"}); err == nil {
		t.Fatal("duplicate id accepted")
	}

	many, err := repo.GetMany(ctx, []string{"pool", "gone", "wifi"})
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if len(many) != 2 || many[0].ID != "pool" || many[1].ID != "wifi" {
		t.Fatalf("GetMany should keep request order and skip unknown ids, got %+v", many)
	}

	if err := repo.Update(ctx, &models.Amenity{ID: "wifi", Name: "Fast Wi-Fi"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := repo.GetByID(ctx, "wifi")
	if err != nil || got.Name != "Fast Wi-Fi" {
		t.Fatalf("get after update = %+v, %v", got, err)
	}

	if err := repo.Delete(ctx, "wifi"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "wifi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted = %v, want ErrNotFound", err)
	}
	if err := repo.Update(ctx, &models.Amenity{ID: "wifi"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update deleted = %v, want ErrNotFound", err)
	}
	all, _ := repo.GetAll(ctx)
	if len(all) != 1 || all[0].ID != "pool" {
		t.Fatalf("all = %+v", all)
	}
}

func TestIDOf(t *testing.T) {
	if got := idOf(models.Perk{ID: "lunch"}); got != "lunch" {
		t.Fatalf("idOf perk = %q", got)
	}
	if got := idOf(models.Amenity{ID: "wifi"}); got != "wifi" {
		t.Fatalf("idOf amenity = %q", got)
	}
}
