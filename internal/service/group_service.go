package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/storage"
)

// GroupView is a group with its member references resolved to identity
// summaries. This is the only group shape handed to callers.
type GroupView struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Members   []models.UserSummary `json:"members"`
	CreatedAt int64                `json:"createdAt"`
}

// GroupService creates groups and serves membership-scoped group views.
type GroupService struct {
	store       storage.Store
	memberships *Memberships
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, memberships *Memberships) *GroupService {
	return &GroupService{store: store, memberships: memberships}
}

// CreateGroup creates a new group with the acting user as its sole member.
func (s *GroupService) CreateGroup(ctx context.Context, actingUserID, name string) (*GroupView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("group name is required")
	}

	group := &models.Group{
		Name:      name,
		MemberIDs: []string{actingUserID},
	}

	// Save to storage (generates ID and CreatedAt)
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "user_id", actingUserID, "error", err)
		return nil, unavailable("failed to create group", err)
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name, "user_id", actingUserID)

	return s.groupView(ctx, group)
}

// ListGroupsForUser retrieves every group whose member set contains the
// acting user. Order is not significant.
func (s *GroupService) ListGroupsForUser(ctx context.Context, actingUserID string) ([]*GroupView, error) {
	groups, err := s.store.ListGroupsByMember(ctx, actingUserID)
	if err != nil {
		slog.Error("ListGroupsForUser failed", "user_id", actingUserID, "error", err)
		return nil, unavailable("failed to list groups", err)
	}

	views, err := s.groupViews(ctx, groups)
	if err != nil {
		return nil, err
	}

	slog.Info("ListGroupsForUser successful", "user_id", actingUserID, "count", len(views))
	return views, nil
}

// GetGroup retrieves a single group view. The acting user must be a member.
func (s *GroupService) GetGroup(ctx context.Context, actingUserID, groupID string) (*GroupView, error) {
	group, err := s.memberships.RequireMembership(ctx, actingUserID, groupID)
	if err != nil {
		slog.Warn("GetGroup denied", "user_id", actingUserID, "group_id", groupID, "error", err)
		return nil, err
	}

	return s.groupView(ctx, group)
}

// groupView resolves one group's member references to identity summaries.
func (s *GroupService) groupView(ctx context.Context, group *models.Group) (*GroupView, error) {
	views, err := s.groupViews(ctx, []*models.Group{group})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// groupViews resolves member references for a batch of groups with a single
// user lookup.
func (s *GroupService) groupViews(ctx context.Context, groups []*models.Group) ([]*GroupView, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, group := range groups {
		for _, id := range group.MemberIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		slog.Error("Failed to resolve group members", "error", err)
		return nil, unavailable("failed to resolve group members", err)
	}

	views := make([]*GroupView, len(groups))
	for i, group := range groups {
		members := make([]models.UserSummary, 0, len(group.MemberIDs))
		for _, id := range group.MemberIDs {
			if user, ok := users[id]; ok {
				members = append(members, user.Summary())
			}
		}
		views[i] = &GroupView{
			ID:        group.ID,
			Name:      group.Name,
			Members:   members,
			CreatedAt: group.CreatedAt,
		}
	}
	return views, nil
}
