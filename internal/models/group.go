package models

// Group represents a named set of members who share expenses.
//
// The member set is the single source of truth for authorization: a user may
// read or record a group's expenses iff their ID appears in MemberIDs.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Trip", "Roommates").
	Name string

	// MemberIDs is the set of user IDs belonging to this group.
	// Non-empty; the creator is inserted as the first member. Order carries
	// no meaning.
	MemberIDs []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether userID is in the group's member set.
func (g *Group) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
