package models

// Expense represents a payment made by a group member on behalf of the group.
//
// Expenses are additive and immutable: they are validated against the group's
// member set once, at write time, and later membership changes do not
// invalidate them.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to. Must reference an
	// existing group at write time.
	GroupID string

	// PaidByID is the user who paid. Must be a member of GroupID at write
	// time.
	PaidByID string

	// Description is the human-readable label for the expense (trimmed,
	// non-empty).
	Description string

	// Amount is the expense amount. Strictly positive.
	Amount float64

	// Date is the Unix timestamp when the expense was incurred.
	// Defaults to CreatedAt; independently settable.
	Date int64

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64
}
