package service

import (
	"context"
	"math"
	"testing"

	"github.com/divvyhq/divvy/internal/models"
	"github.com/google/uuid"
)

func TestRecordExpenseValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store, NewMemberships(store))
	ctx := context.Background()

	actor := createTestUser(t, store, "alice")
	group := createTestGroup(t, store, "Trip", actor.ID)

	valid := RecordExpenseInput{
		GroupID:     group.ID,
		PaidByID:    actor.ID,
		Description: "Dinner",
		Amount:      40.0,
	}

	cases := []struct {
		name   string
		mutate func(in *RecordExpenseInput)
		kind   Kind
	}{
		{"missing description", func(in *RecordExpenseInput) { in.Description = "  " }, KindInvalidInput},
		{"missing amount", func(in *RecordExpenseInput) { in.Amount = 0 }, KindInvalidInput},
		{"missing group", func(in *RecordExpenseInput) { in.GroupID = "" }, KindInvalidInput},
		{"missing payer", func(in *RecordExpenseInput) { in.PaidByID = "" }, KindInvalidInput},
		{"negative amount", func(in *RecordExpenseInput) { in.Amount = -5 }, KindInvalidInput},
		{"NaN amount", func(in *RecordExpenseInput) { in.Amount = math.NaN() }, KindInvalidInput},
		{"infinite amount", func(in *RecordExpenseInput) { in.Amount = math.Inf(1) }, KindInvalidInput},
		{"malformed group reference", func(in *RecordExpenseInput) { in.GroupID = "not-a-uuid" }, KindInvalidInput},
		{"malformed payer reference", func(in *RecordExpenseInput) { in.PaidByID = "not-a-uuid" }, KindInvalidInput},
		{"unknown group", func(in *RecordExpenseInput) { in.GroupID = uuid.New().String() }, KindNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := svc.RecordExpense(ctx, actor.ID, in)
			wantKind(t, err, tc.kind)
		})
	}

	t.Run("no expense persisted on validation failure", func(t *testing.T) {
		in := valid
		in.Amount = -1
		if _, err := svc.RecordExpense(ctx, actor.ID, in); err == nil {
			t.Fatal("expected error")
		}

		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 0 {
			t.Errorf("expected no persisted expenses, got %d", len(expenses))
		}
	})
}

func TestRecordExpenseMembership(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store, NewMemberships(store))
	ctx := context.Background()

	actor := createTestUser(t, store, "alice")
	outsider := createTestUser(t, store, "bob")
	group := createTestGroup(t, store, "Trip", actor.ID)

	t.Run("Forbidden when actor is not a member", func(t *testing.T) {
		_, err := svc.RecordExpense(ctx, outsider.ID, RecordExpenseInput{
			GroupID:     group.ID,
			PaidByID:    actor.ID,
			Description: "Dinner",
			Amount:      40.0,
		})
		wantKind(t, err, KindForbidden)
	})

	t.Run("InvalidInput when payer is not a member", func(t *testing.T) {
		// The actor is a member; only the payer reference is bad. This must
		// be InvalidInput, not Forbidden.
		_, err := svc.RecordExpense(ctx, actor.ID, RecordExpenseInput{
			GroupID:     group.ID,
			PaidByID:    outsider.ID,
			Description: "Dinner",
			Amount:      40.0,
		})
		wantKind(t, err, KindInvalidInput)

		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 0 {
			t.Errorf("expected no persisted expenses, got %d", len(expenses))
		}
	})

	t.Run("member records expense paid by self", func(t *testing.T) {
		view, err := svc.RecordExpense(ctx, actor.ID, RecordExpenseInput{
			GroupID:     group.ID,
			PaidByID:    actor.ID,
			Description: "Dinner",
			Amount:      40.0,
		})
		if err != nil {
			t.Fatalf("RecordExpense failed: %v", err)
		}
		if view.ID == "" {
			t.Error("expected assigned expense ID")
		}
		if view.Amount != 40.0 {
			t.Errorf("amount: expected 40.0, got %v", view.Amount)
		}
		if view.PaidBy.ID != actor.ID || view.PaidBy.Username != "alice" {
			t.Errorf("unexpected payer summary: %+v", view.PaidBy)
		}
		if view.CreatedAt == 0 || view.Date == 0 {
			t.Error("expected defaulted timestamps")
		}
	})

	t.Run("member records expense paid by fellow member", func(t *testing.T) {
		shared := createTestGroup(t, store, "Shared", actor.ID, outsider.ID)

		view, err := svc.RecordExpense(ctx, actor.ID, RecordExpenseInput{
			GroupID:     shared.ID,
			PaidByID:    outsider.ID,
			Description: "Taxi",
			Amount:      12.5,
		})
		if err != nil {
			t.Fatalf("RecordExpense failed: %v", err)
		}
		if view.PaidBy.ID != outsider.ID {
			t.Errorf("payer: expected %s, got %s", outsider.ID, view.PaidBy.ID)
		}
	})
}

func TestListExpenses(t *testing.T) {
	store := newTestStore(t)
	svc := NewExpenseService(store, NewMemberships(store))
	ctx := context.Background()

	member := createTestUser(t, store, "alice")
	outsider := createTestUser(t, store, "carol")
	group := createTestGroup(t, store, "Trip", member.ID)

	t.Run("Forbidden for non-member", func(t *testing.T) {
		_, err := svc.ListExpenses(ctx, outsider.ID, group.ID)
		wantKind(t, err, KindForbidden)
	})

	t.Run("NotFound for missing group", func(t *testing.T) {
		_, err := svc.ListExpenses(ctx, member.ID, uuid.New().String())
		wantKind(t, err, KindNotFound)
	})

	t.Run("newest first with resolved payers", func(t *testing.T) {
		for i, ts := range []int64{1000, 2000, 3000} {
			expense := &models.Expense{
				GroupID:     group.ID,
				PaidByID:    member.ID,
				Description: []string{"oldest", "middle", "newest"}[i],
				Amount:      float64(i + 1),
				CreatedAt:   ts,
			}
			if err := store.CreateExpense(ctx, expense); err != nil {
				t.Fatalf("CreateExpense failed: %v", err)
			}
		}

		views, err := svc.ListExpenses(ctx, member.ID, group.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(views))
		}
		for i, want := range []string{"newest", "middle", "oldest"} {
			if views[i].Description != want {
				t.Errorf("position %d: expected %q, got %q", i, want, views[i].Description)
			}
			if views[i].PaidBy.Username != "alice" {
				t.Errorf("position %d: payer not resolved: %+v", i, views[i].PaidBy)
			}
		}
	})

	t.Run("reflects writes between calls", func(t *testing.T) {
		before, err := svc.ListExpenses(ctx, member.ID, group.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}

		if _, err := svc.RecordExpense(ctx, member.ID, RecordExpenseInput{
			GroupID:     group.ID,
			PaidByID:    member.ID,
			Description: "Late addition",
			Amount:      7.0,
		}); err != nil {
			t.Fatalf("RecordExpense failed: %v", err)
		}

		after, err := svc.ListExpenses(ctx, member.ID, group.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(after) != len(before)+1 {
			t.Errorf("expected %d expenses, got %d", len(before)+1, len(after))
		}
		if after[0].Description != "Late addition" {
			t.Errorf("expected new expense first, got %q", after[0].Description)
		}
	})
}
