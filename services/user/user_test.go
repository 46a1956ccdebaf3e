package user

import (
	"context"
	"errors"
	"testing"

	userRepo "github.com/komo3344/airbnb-backend/database/repository/user"
	"github.com/komo3344/airbnb-backend/models"
	"github.com/komo3344/airbnb-backend/utils"
)

func newService() (*DefaultUserService, *userRepo.MemoryUserRepo) {
	repo := userRepo.NewMemoryUserRepo()
	return &DefaultUserService{Repo: repo}, repo
}

func register(t *testing.T, svc *DefaultUserService, username, email string) *models.AuthResponse {
	t.Helper()
	resp, err := svc.RegisterUser(context.Background(), models.UserRegistration{
		Username: username,
		Email:    email,
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return resp
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	reg := register(t, svc, "komo", "Komo@Example.com")
	if reg.ID == "" || reg.Token == "" {
		t.Fatalf("incomplete auth response %+v", reg)
	}
	stored, err := repo.GetByID(ctx, reg.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Email != "komo@example.com" {
		t.Fatalf("email not normalised: %q", stored.Email)
	}
	if stored.TokenHash != utils.HashToken(reg.Token) {
		t.Fatal("token hash not stored on register")
	}

	if _, err := svc.AuthenticateUser(ctx, "komo", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.AuthenticateUser(ctx, "nobody", "correct-horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}

	login, err := svc.AuthenticateUser(ctx, "komo", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sub, err := utils.ExtractIDFromToken(login.Token); err != nil || sub != reg.ID {
		t.Fatalf("token subject = %q, %v", sub, err)
	}
	stored, _ = repo.GetByID(ctx, reg.ID)
	if stored.TokenHash != utils.HashToken(login.Token) {
		t.Fatal("login did not rotate the token hash")
	}

	if err := svc.RevokeUserAuthToken(ctx, reg.ID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	stored, _ = repo.GetByID(ctx, reg.ID)
	if stored.TokenHash != "" {
		t.Fatal("logout left a token hash behind")
	}
	if err := svc.RevokeUserAuthToken(ctx, "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRegisterRejects(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	register(t, svc, "komo", "komo@example.com")

	tests := []struct {
		name string
		reg  models.UserRegistration
		want error
	}{
		{"duplicate username", models.UserRegistration{Username: "komo", Email: "other@example.com", Password: "correct-horse"}, ErrUserExists},
		{"duplicate email", models.UserRegistration{Username: "other", Email: "KOMO@example.com", Password: "correct-horse"}, ErrUserExists},
		{"short password", models.UserRegistration{Username: "short", Email: "s@example.com", Password: "abc"}, ErrWeakPassword},
		{"numeric password", models.UserRegistration{Username: "digits", Email: "d@example.com", Password: "12345678"}, ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.RegisterUser(ctx, tt.reg); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestUpdateUserAndPassword(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	a := register(t, svc, "alpha", "alpha@example.com")
	register(t, svc, "beta", "beta@example.com")

	name := "Alpha Host"
	host := true
	updated, err := svc.UpdateUser(ctx, a.ID, models.UserUpdate{Name: &name, IsHost: &host})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != name || !updated.IsHost || updated.Email != "alpha@example.com" {
		t.Fatalf("unexpected user %+v", updated)
	}

	taken := "beta@example.com"
	if _, err := svc.UpdateUser(ctx, a.ID, models.UserUpdate{Email: &taken}); !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	if err := svc.UpdateUserPassword(ctx, a.ID, "wrong", "new-password-1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := svc.UpdateUserPassword(ctx, a.ID, "correct-horse", "new-password-1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := svc.AuthenticateUser(ctx, "alpha", "new-password-1"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	public, err := svc.GetPublicUser(ctx, "beta")
	if err != nil || public.Username != "beta" {
		t.Fatalf("GetPublicUser = %+v, %v", public, err)
	}
	if _, err := svc.GetPublicUser(ctx, "gamma"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
