package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/divvyhq/divvy/internal/middleware"
	"github.com/divvyhq/divvy/internal/service"
)

// ExpenseHandler exposes expense recording and group expense history over
// HTTP.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates an ExpenseHandler backed by the given service.
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type addExpenseRequest struct {
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	GroupID      string  `json:"groupId"`
	PaidByUserID string  `json:"paidByUserId"`
}

// Add handles POST /api/expenses/add.
func (h *ExpenseHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	expense, err := h.expenses.RecordExpense(r.Context(), middleware.GetUserID(r.Context()), service.RecordExpenseInput{
		GroupID:     req.GroupID,
		PaidByID:    req.PaidByUserID,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, expense)
}

// ListByGroup handles GET /api/expenses/group/{groupID}.
func (h *ExpenseHandler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupID")

	expenses, err := h.expenses.ListExpenses(r.Context(), middleware.GetUserID(r.Context()), groupID)
	if err != nil {
		writeError(w, err)
		return
	}

	if expenses == nil {
		expenses = []*service.ExpenseView{}
	}
	writeJSON(w, http.StatusOK, expenses)
}
