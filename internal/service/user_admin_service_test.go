package service

import (
	"errors"
	"testing"

	"github.com/nexori/backend/internal/model"
)

func TestUpdateUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["ada"] = &model.User{ID: 1, Username: "ada", Role: model.RoleUser, IsActive: true}
	svc := NewUserAdminService(repo)

	updated, err := svc.UpdateUserRole(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateUserRole() error = %v", err)
	}
	if updated.Role != model.RoleAdmin {
		t.Errorf("returned role = %q, want admin", updated.Role)
	}
	if repo.users["ada"].Role != model.RoleAdmin {
		t.Errorf("stored role = %q, want admin", repo.users["ada"].Role)
	}

	_, err = svc.UpdateUserRole(99, model.RoleAdmin)
	var notFound *UserNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("UpdateUserRole(99) error = %v, want *UserNotFoundError", err)
	}
}

func TestListUsers(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["ada"] = &model.User{ID: 1, Username: "ada", Role: model.RoleAdmin, IsActive: true}
	repo.users["bob"] = &model.User{ID: 2, Username: "bob", Role: model.RoleUser, IsActive: true}
	svc := NewUserAdminService(repo)

	users, err := svc.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users) != 2 {
		t.Errorf("ListUsers() returned %d users, want 2", len(users))
	}
}
