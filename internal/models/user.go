package models

// User represents a registered user account.
//
// Users are created at registration and are read-only afterwards (credential
// rotation is out of scope). Groups and expenses reference users by ID and
// never own them.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Username is the unique display handle chosen at registration.
	Username string

	// Email is the user's email address (unique, stored lowercase).
	// Used for login.
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	// Never included in any projection returned to callers.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// Summary returns the credential-free projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// UserSummary is the identity projection exposed in group membership and
// expense payer data. It deliberately omits the password hash.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
