package service

import (
	"context"
	"errors"

	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/storage"
)

// Memberships decides read/write eligibility for a group from its current
// member set. Read-only; every authorization decision in the expense and
// query paths goes through here.
type Memberships struct {
	store storage.Store
}

// NewMemberships creates a membership authorization service backed by the
// given store.
func NewMemberships(store storage.Store) *Memberships {
	return &Memberships{store: store}
}

// IsMember reports whether userID appears in the group's member set at call
// time. A missing group has no members, so it reports false.
func (m *Memberships) IsMember(ctx context.Context, userID, groupID string) (bool, error) {
	group, err := m.store.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, unavailable("failed to resolve group", err)
	}
	return group.HasMember(userID), nil
}

// RequireMembership resolves the group and checks that userID is a member.
// Returns the resolved group on success so callers avoid a second lookup.
// Fails with NotFound if the group does not exist and Forbidden if the user
// is not in its member set.
func (m *Memberships) RequireMembership(ctx context.Context, userID, groupID string) (*models.Group, error) {
	group, err := m.store.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("group not found")
	}
	if err != nil {
		return nil, unavailable("failed to resolve group", err)
	}
	if !group.HasMember(userID) {
		return nil, forbidden("not a member of this group")
	}
	return group, nil
}
