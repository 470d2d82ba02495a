package service

import (
	"context"
	"reflect"
	"testing"
)

func TestCreateGroup(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store, NewMemberships(store))
	ctx := context.Background()

	creator := createTestUser(t, store, "alice")

	t.Run("creator becomes sole member", func(t *testing.T) {
		view, err := svc.CreateGroup(ctx, creator.ID, "Trip")
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if view.ID == "" {
			t.Error("expected non-empty group ID")
		}
		if view.Name != "Trip" {
			t.Errorf("name: expected 'Trip', got '%s'", view.Name)
		}
		if len(view.Members) != 1 {
			t.Fatalf("members: expected 1, got %d", len(view.Members))
		}
		if view.Members[0].ID != creator.ID || view.Members[0].Username != "alice" {
			t.Errorf("unexpected member summary: %+v", view.Members[0])
		}
		if view.CreatedAt == 0 {
			t.Error("expected non-zero CreatedAt")
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		view, err := svc.CreateGroup(ctx, creator.ID, "  Ski Weekend  ")
		if err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if view.Name != "Ski Weekend" {
			t.Errorf("name: expected trimmed, got '%s'", view.Name)
		}
	})

	t.Run("InvalidInput for blank name", func(t *testing.T) {
		_, err := svc.CreateGroup(ctx, creator.ID, "   ")
		wantKind(t, err, KindInvalidInput)
	})
}

func TestListGroupsForUser(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store, NewMemberships(store))
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")

	createTestGroup(t, store, "Trip", alice.ID)
	createTestGroup(t, store, "Lunch", alice.ID, bob.ID)
	createTestGroup(t, store, "BobOnly", bob.ID)

	t.Run("returns only the caller's groups", func(t *testing.T) {
		views, err := svc.ListGroupsForUser(ctx, alice.ID)
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		if len(views) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(views))
		}
		names := map[string]bool{}
		for _, v := range views {
			names[v.Name] = true
		}
		if !names["Trip"] || !names["Lunch"] {
			t.Errorf("unexpected group names: %v", names)
		}
	})

	t.Run("empty for user with no groups", func(t *testing.T) {
		loner := createTestUser(t, store, "carol")
		views, err := svc.ListGroupsForUser(ctx, loner.ID)
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		if len(views) != 0 {
			t.Errorf("expected no groups, got %d", len(views))
		}
	})

	t.Run("members resolved to summaries", func(t *testing.T) {
		views, err := svc.ListGroupsForUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		for _, v := range views {
			for _, m := range v.Members {
				if m.Username == "" || m.Email == "" {
					t.Errorf("group %s: member %s not resolved", v.Name, m.ID)
				}
			}
		}
	})
}

func TestGetGroup(t *testing.T) {
	store := newTestStore(t)
	svc := NewGroupService(store, NewMemberships(store))
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	carol := createTestUser(t, store, "carol")
	group := createTestGroup(t, store, "Trip", alice.ID)

	t.Run("member sees the group", func(t *testing.T) {
		view, err := svc.GetGroup(ctx, alice.ID, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if view.ID != group.ID || view.Name != "Trip" {
			t.Errorf("unexpected view: %+v", view)
		}
	})

	t.Run("Forbidden for non-member", func(t *testing.T) {
		_, err := svc.GetGroup(ctx, carol.ID, group.ID)
		wantKind(t, err, KindForbidden)
	})

	t.Run("NotFound for unknown ID", func(t *testing.T) {
		_, err := svc.GetGroup(ctx, alice.ID, "nonexistent-id")
		wantKind(t, err, KindNotFound)
	})

	t.Run("repeated reads return identical data", func(t *testing.T) {
		first, err := svc.GetGroup(ctx, alice.ID, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		second, err := svc.GetGroup(ctx, alice.ID, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("expected identical views, got %+v vs %+v", first, second)
		}
	})
}
