// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/divvyhq/divvy/internal/models"
)

// ErrNotFound is returned when a referenced entity does not exist.
// Implementations wrap it with context; callers test with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the interface for durable storage of users, groups and
// expenses. This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Fails if the username or email is
	// already taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID retrieves a user by ID. Returns nil, nil if absent.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// GetUserByEmail retrieves a user by (lowercase) email.
	// Returns nil, nil if absent.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByUsername retrieves a user by username. Returns nil, nil if
	// absent.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUsersByIDs retrieves multiple users keyed by ID. IDs that do not
	// resolve are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// CreateGroup persists a new group together with its member set.
	// Populates ID and CreatedAt if unset.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group (including members) by ID.
	// Returns ErrNotFound if absent.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsByMember retrieves every group whose member set contains
	// userID.
	ListGroupsByMember(ctx context.Context, userID string) ([]*models.Group, error)

	// CreateExpense persists a new expense. Populates ID, Date and
	// CreatedAt if unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpensesByGroup retrieves every expense in a group, newest first.
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
