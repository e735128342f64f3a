package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcelhub/contexts/identity-access/user-directory/adapters/memory"
	"parcelhub/contexts/identity-access/user-directory/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/user-directory/domain/errors"
)

type tickClock struct{ now time.Time }

func (c *tickClock) Now() time.Time {
	c.now = c.now.Add(time.Minute)
	return c.now
}

func TestUpsertUserInsertsThenRefreshes(t *testing.T) {
	clock := &tickClock{now: time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)}
	service := Service{Repo: memory.NewStore(), Clock: clock}

	first, inserted, err := service.UpsertUser(context.Background(), "A@X.com", map[string]any{
		"name": "Ana",
		"role": "admin",
	})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if !inserted {
		t.Fatal("expected first login to insert")
	}
	if first.Role != entities.RoleUser {
		t.Fatalf("expected default role, got %s", first.Role)
	}

	second, inserted, err := service.UpsertUser(context.Background(), "a@x.com", map[string]any{"name": "Other"})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if inserted {
		t.Fatal("expected second login to refresh only")
	}
	if !second.LastLoggedIn.After(first.LastLoggedIn) {
		t.Fatalf("expected last login to advance, got %s then %s", first.LastLoggedIn, second.LastLoggedIn)
	}
	if second.Profile["name"] != "Ana" {
		t.Fatalf("expected profile unchanged on refresh, got %v", second.Profile["name"])
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("expected created_at to stay put")
	}
}

func TestGetUserAndRoles(t *testing.T) {
	service := Service{Repo: memory.NewStore(), Admins: []string{"root@x.com"}}

	if _, err := service.GetUser(context.Background(), "nobody@x.com"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, _, err := service.UpsertUser(context.Background(), "rider@x.com", nil); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := service.UpdateRole(context.Background(), "rider@x.com", "rider@x.com", "captain"); !errors.Is(err, domainerrors.ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
	if _, err := service.UpdateRole(context.Background(), "rider@x.com", "rider@x.com", "Rider"); err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	role, err := service.GetRole(context.Background(), " RIDER@x.com ")
	if err != nil {
		t.Fatalf("get role failed: %v", err)
	}
	if role != entities.RoleRider {
		t.Fatalf("expected rider role, got %s", role)
	}
	if _, err := service.UpdateRole(context.Background(), "Root@x.com", "nobody@x.com", "admin"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateRoleRequiresAdminForOthers(t *testing.T) {
	service := Service{Repo: memory.NewStore(), Admins: []string{"root@x.com"}}
	ctx := context.Background()
	for _, email := range []string{"a@x.com", "b@x.com"} {
		if _, _, err := service.UpsertUser(ctx, email, nil); err != nil {
			t.Fatalf("upsert %s failed: %v", email, err)
		}
	}

	if _, err := service.UpdateRole(ctx, "a@x.com", "b@x.com", "rider"); !errors.Is(err, domainerrors.ErrRoleChangeForbidden) {
		t.Fatalf("expected forbidden for another user, got %v", err)
	}
	if _, err := service.UpdateRole(ctx, "a@x.com", "a@x.com", "admin"); !errors.Is(err, domainerrors.ErrRoleChangeForbidden) {
		t.Fatalf("expected forbidden self promotion, got %v", err)
	}
	if _, err := service.UpdateRole(ctx, "", "a@x.com", "rider"); !errors.Is(err, domainerrors.ErrRoleChangeForbidden) {
		t.Fatalf("expected forbidden without actor, got %v", err)
	}

	if _, err := service.UpdateRole(ctx, "root@x.com", "a@x.com", "admin"); err != nil {
		t.Fatalf("configured admin update failed: %v", err)
	}
	user, err := service.UpdateRole(ctx, "a@x.com", "b@x.com", "rider")
	if err != nil {
		t.Fatalf("stored admin update failed: %v", err)
	}
	if user.Role != entities.RoleRider {
		t.Fatalf("expected rider, got %s", user.Role)
	}
}
