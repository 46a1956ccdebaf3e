package wishlist

import (
	"context"
	"errors"
	"testing"

	experienceRepo "github.com/komo3344/airbnb-backend/database/repository/experience"
	roomRepo "github.com/komo3344/airbnb-backend/database/repository/room"
	wishlistRepo "github.com/komo3344/airbnb-backend/database/repository/wishlist"
	"github.com/komo3344/airbnb-backend/models"

	"go.uber.org/zap"
)

func newService(t *testing.T) (*DefaultWishlistService, models.Room, models.Experience) {
	t.Helper()
	ctx := context.Background()
	svc := &DefaultWishlistService{
		Lists:       wishlistRepo.NewMemoryWishlistRepo(),
		Rooms:       roomRepo.NewMemoryRoomRepo(),
		Experiences: experienceRepo.NewMemoryExperienceRepo(),
		Logger:      zap.NewNop(),
	}
	room := models.Room{ID: "room-1", Name: "Loft", Country: "Korea", City: "Seoul", Price: 120}
	if err := svc.Rooms.Create(ctx, &room); err != nil {
		t.Fatalf("seed room: %v", err)
	}
	exp := models.Experience{ID: "exp-1", Name: "Tea", Country: "Korea", City: "Busan", Price: 40}
	if err := svc.Experiences.Create(ctx, &exp); err != nil {
		t.Fatalf("seed experience: %v", err)
	}
	return svc, room, exp
}

func TestWishlistLifecycle(t *testing.T) {
	svc, room, exp := newService(t)
	ctx := context.Background()

	list, err := svc.Create(ctx, "alice", models.WishlistInput{Name: "Summer"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if list.Rooms == nil || list.Experiences == nil {
		t.Fatalf("new list should carry empty slices: %+v", list)
	}

	got, err := svc.ToggleRoom(ctx, list.ID, "alice", room.ID)
	if err != nil {
		t.Fatalf("toggle room: %v", err)
	}
	if len(got.Rooms) != 1 || got.Rooms[0] != room.Summary() {
		t.Fatalf("room not added: %+v", got.Rooms)
	}
	got, err = svc.ToggleExperience(ctx, list.ID, "alice", exp.ID)
	if err != nil || len(got.Experiences) != 1 || got.Experiences[0].City != "Busan" {
		t.Fatalf("toggle experience = %+v, %v", got, err)
	}
	got, _ = svc.ToggleRoom(ctx, list.ID, "alice", room.ID)
	if len(got.Rooms) != 0 {
		t.Fatalf("second toggle should remove the room: %+v", got.Rooms)
	}

	if _, err := svc.ToggleRoom(ctx, list.ID, "alice", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("toggle unknown room = %v, want ErrNotFound", err)
	}

	renamed, err := svc.Rename(ctx, list.ID, "alice", models.WishlistInput{Name: "Winter"})
	if err != nil || renamed.Name != "Winter" || len(renamed.Experiences) != 1 {
		t.Fatalf("rename = %+v, %v", renamed, err)
	}

	lists, err := svc.List(ctx, "alice")
	if err != nil || len(lists) != 1 {
		t.Fatalf("list = %+v, %v", lists, err)
	}

	if err := svc.Delete(ctx, list.ID, "alice"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, list.ID, "alice"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get deleted = %v, want ErrNotFound", err)
	}
}

func TestWishlistsAreScopedToTheirOwner(t *testing.T) {
	svc, room, _ := newService(t)
	ctx := context.Background()
	list, err := svc.Create(ctx, "alice", models.WishlistInput{Name: "Mine"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, list.ID, "bob"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get by other user = %v, want ErrNotFound", err)
	}
	if _, err := svc.ToggleRoom(ctx, list.ID, "bob", room.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("toggle by other user = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, list.ID, "bob"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete by other user = %v, want ErrNotFound", err)
	}
	if lists, _ := svc.List(ctx, "bob"); len(lists) != 0 {
		t.Fatalf("bob sees alice's lists: %+v", lists)
	}
}

func TestWishlistSkipsDeletedListings(t *testing.T) {
	svc, room, _ := newService(t)
	ctx := context.Background()
	list, _ := svc.Create(ctx, "alice", models.WishlistInput{Name: "Trip"})
	if _, err := svc.ToggleRoom(ctx, list.ID, "alice", room.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Rooms.Delete(ctx, room.ID); err != nil {
		t.Fatalf("delete room: %v", err)
	}
	got, err := svc.Get(ctx, list.ID, "alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Rooms) != 0 {
		t.Fatalf("deleted room still shown: %+v", got.Rooms)
	}
}

func TestToggle(t *testing.T) {
	ids := toggle([]string{"a", "b"}, "c")
	ids = toggle(ids, "a")
	if len(ids) != 2 || ids[0] != "b" || ids[1] != "c" {
		t.Fatalf("toggle = %v", ids)
	}
}
