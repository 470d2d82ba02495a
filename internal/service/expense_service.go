package service

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/storage"
)

// ExpenseView is an expense with its payer reference resolved to an identity
// summary.
type ExpenseView struct {
	ID          string             `json:"id"`
	GroupID     string             `json:"groupId"`
	Description string             `json:"description"`
	Amount      float64            `json:"amount"`
	PaidBy      models.UserSummary `json:"paidBy"`
	Date        int64              `json:"date"`
	CreatedAt   int64              `json:"createdAt"`
}

// RecordExpenseInput is the caller-supplied data for a new expense.
type RecordExpenseInput struct {
	GroupID     string
	PaidByID    string
	Description string
	Amount      float64
}

// ExpenseService validates and persists expenses against group-membership
// invariants, and serves membership-scoped expense history.
type ExpenseService struct {
	store       storage.Store
	memberships *Memberships
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store, memberships *Memberships) *ExpenseService {
	return &ExpenseService{store: store, memberships: memberships}
}

// RecordExpense validates and persists a new expense.
//
// Validation is fail-fast, first failure wins:
//  1. all fields present
//  2. amount finite and strictly positive
//  3. group and payer references well-formed
//  4. acting user is a member of the group
//  5. payer is a member of the group
//
// Nothing is written to the store until every check passes; the call performs
// at most one durable write.
func (s *ExpenseService) RecordExpense(ctx context.Context, actingUserID string, input RecordExpenseInput) (*ExpenseView, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" || input.Amount == 0 || input.GroupID == "" || input.PaidByID == "" {
		return nil, invalidInput("description, amount, group ID and paidBy user ID are required")
	}

	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) || input.Amount <= 0 {
		return nil, invalidInput("amount must be a positive number")
	}

	// Malformed references are caller errors, not lookup misses.
	if _, err := uuid.Parse(input.GroupID); err != nil {
		return nil, invalidInput("invalid group ID")
	}
	if _, err := uuid.Parse(input.PaidByID); err != nil {
		return nil, invalidInput("invalid paidBy user ID")
	}

	group, err := s.memberships.RequireMembership(ctx, actingUserID, input.GroupID)
	if err != nil {
		slog.Warn("RecordExpense denied",
			"user_id", actingUserID,
			"group_id", input.GroupID,
			"error", err,
		)
		return nil, err
	}

	// A member may record an expense paid by any fellow member, never by an
	// outsider. Checked separately from the actor's own membership.
	if !group.HasMember(input.PaidByID) {
		return nil, invalidInput("payer is not a member of this group")
	}

	expense := &models.Expense{
		GroupID:     group.ID,
		PaidByID:    input.PaidByID,
		Description: description,
		Amount:      input.Amount,
	}

	// Save to storage (generates ID, Date and CreatedAt)
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("RecordExpense failed", "group_id", group.ID, "error", err)
		return nil, unavailable("failed to record expense", err)
	}

	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"group_id", group.ID,
		"paid_by", expense.PaidByID,
		"amount", expense.Amount,
	)

	views, err := s.expenseViews(ctx, []*models.Expense{expense})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// ListExpenses retrieves every expense in a group, newest first, with payer
// references resolved. The acting user must be a member. Results always
// reflect current store state; nothing is cached.
func (s *ExpenseService) ListExpenses(ctx context.Context, actingUserID, groupID string) ([]*ExpenseView, error) {
	if _, err := s.memberships.RequireMembership(ctx, actingUserID, groupID); err != nil {
		slog.Warn("ListExpenses denied", "user_id", actingUserID, "group_id", groupID, "error", err)
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", groupID, "error", err)
		return nil, unavailable("failed to list expenses", err)
	}

	views, err := s.expenseViews(ctx, expenses)
	if err != nil {
		return nil, err
	}

	slog.Info("ListExpenses successful", "group_id", groupID, "count", len(views))
	return views, nil
}

// expenseViews resolves payer references for a batch of expenses with a
// single user lookup.
func (s *ExpenseService) expenseViews(ctx context.Context, expenses []*models.Expense) ([]*ExpenseView, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, expense := range expenses {
		if !seen[expense.PaidByID] {
			seen[expense.PaidByID] = true
			ids = append(ids, expense.PaidByID)
		}
	}

	users, err := s.store.GetUsersByIDs(ctx, ids)
	if err != nil {
		slog.Error("Failed to resolve expense payers", "error", err)
		return nil, unavailable("failed to resolve expense payers", err)
	}

	views := make([]*ExpenseView, len(expenses))
	for i, expense := range expenses {
		view := &ExpenseView{
			ID:          expense.ID,
			GroupID:     expense.GroupID,
			Description: expense.Description,
			Amount:      expense.Amount,
			Date:        expense.Date,
			CreatedAt:   expense.CreatedAt,
		}
		if user, ok := users[expense.PaidByID]; ok {
			view.PaidBy = user.Summary()
		} else {
			view.PaidBy = models.UserSummary{ID: expense.PaidByID}
		}
		views[i] = view
	}
	return views, nil
}
