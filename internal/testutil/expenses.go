package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

// Expense builds a validated expense or fails the test.
func Expense(
	t *testing.T,
	date, amount, description string,
	c category.Category,
	p transaction.Priority,
) *transaction.Transaction {
	t.Helper()

	e, err := transaction.NewExpense(date, decimal.RequireFromString(amount), description, c, p)
	if err != nil {
		t.Fatalf("Failed to build expense: %v", err)
	}

	return e
}

// ScenarioExpenses returns the two record ledger used across the tests:
// Groceries (100, FOOD, LOW) and Gas (50, TRANSPORT, MEDIUM) on 2025-01-20.
func ScenarioExpenses(t *testing.T) []*transaction.Transaction {
	t.Helper()

	return []*transaction.Transaction{
		Expense(t, "2025-01-20", "100", "Groceries", category.Food, transaction.Low),
		Expense(t, "2025-01-20", "50", "Gas", category.Transport, transaction.Medium),
	}
}
