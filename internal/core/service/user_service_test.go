package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agrohelp/agrohelp-api/internal/core/domain"
)

func TestUserService_UpdateRole_OnlyUserOrAdmin(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewUserService(users, stories, testLogger())

	target := users.addUser(&domain.User{Name: "Karim", Username: "karim", Role: domain.RoleUser})

	if err := svc.UpdateRole(context.Background(), target.ID, domain.RoleExpert); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for expert assignment, got %v", err)
	}

	if err := svc.UpdateRole(context.Background(), target.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole returned error: %v", err)
	}
	fresh, _ := users.FindByID(context.Background(), target.ID)
	if fresh.Role != domain.RoleAdmin {
		t.Fatalf("role not applied: %s", fresh.Role)
	}
}

func TestUserService_DeleteUser_CascadesStories(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewUserService(users, stories, testLogger())

	target := users.addUser(&domain.User{Name: "Karim", Username: "karim", Role: domain.RoleUser})
	_, _ = stories.Create(context.Background(), &domain.Story{OwnerID: target.ID, Title: "t", Body: "b"})
	_, _ = stories.Create(context.Background(), &domain.Story{OwnerID: "someone-else", Title: "t2", Body: "b2"})

	if err := svc.DeleteUser(context.Background(), target.ID); err != nil {
		t.Fatalf("DeleteUser returned error: %v", err)
	}
	if _, err := users.FindByID(context.Background(), target.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present: %v", err)
	}
	remaining, _ := stories.ListAll(context.Background(), 0)
	if len(remaining) != 1 || remaining[0].OwnerID != "someone-else" {
		t.Fatalf("cascade wrong, remaining: %+v", remaining)
	}
}

func TestUserService_Stats(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewUserService(users, stories, testLogger())

	users.addUser(&domain.User{Username: "a", Role: domain.RoleUser})
	users.addUser(&domain.User{Username: "b", Role: domain.RoleAdmin})
	users.addUser(&domain.User{Username: "c", Role: domain.RoleAdmin})
	_, _ = stories.Create(context.Background(), &domain.Story{OwnerID: "a", Title: "t", Body: "b"})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Users != 3 || stats.Stories != 1 || stats.Admins != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestUserService_SearchExperts_FiltersRole(t *testing.T) {
	users := newStubUserRepo()
	stories := newStubStoryRepo()
	svc := NewUserService(users, stories, testLogger())

	users.addUser(&domain.User{Name: "Dr. Rahim", Username: "rahim", Role: domain.RoleExpert, Specialty: "rice"})
	users.addUser(&domain.User{Name: "Karim", Username: "karim", Role: domain.RoleUser})

	out, err := svc.SearchExperts(context.Background(), "rice")
	if err != nil {
		t.Fatalf("SearchExperts returned error: %v", err)
	}
	if len(out) != 1 || out[0].Username != "rahim" {
		t.Fatalf("unexpected search result: %+v", out)
	}
}
