// Package storage defines the repository contract for the expense ledger.
//
// A record's position in the ledger is its only identity: deleting a record
// shifts every later record down by one.
package storage

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

type Repository interface {
	// Save appends one expense.
	Save(expense *transaction.Transaction) error
	// SaveAll attempts every expense independently.
	SaveAll(expenses []*transaction.Transaction) SaveAllResult

	// FindAll returns a copy of the ledger in order.
	FindAll() []*transaction.Transaction
	FindByID(index int) (*transaction.Transaction, error)
	FindByCategory(c category.Category) ([]*transaction.Transaction, error)
	FindByPriority(p transaction.Priority) ([]*transaction.Transaction, error)
	// FindExpensesAbove is inclusive: amount >= threshold.
	FindExpensesAbove(threshold decimal.Decimal) ([]*transaction.Transaction, error)

	Delete(index int) error
	DeleteAll()
	Count() int
	IsEmpty() bool
}

// SaveFailure records why one element of a bulk save was rejected.
type SaveFailure struct {
	Position int
	Err      error
}

func (f SaveFailure) String() string {
	return fmt.Sprintf("Failed to save expense #%d: %s", f.Position+1, f.Err.Error())
}

type SaveAllResult struct {
	Attempted int
	Saved     int
	Failures  []SaveFailure
}

func (r SaveAllResult) Failed() int {
	return len(r.Failures)
}

// Reasons returns one message per failed element.
func (r SaveAllResult) Reasons() []string {
	reasons := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		reasons[i] = f.String()
	}
	return reasons
}

// SaveEach drives a best-effort bulk save through save. A failing element
// never stops the remaining ones.
func SaveEach(expenses []*transaction.Transaction, save func(*transaction.Transaction) error) SaveAllResult {
	result := SaveAllResult{Attempted: len(expenses)}

	for i, expense := range expenses {
		if err := save(expense); err != nil {
			result.Failures = append(result.Failures, SaveFailure{Position: i, Err: err})
			continue
		}
		result.Saved++
	}

	return result
}

// ValidateExpense rejects nil records and non-expense variants, since the
// ledger only persists expenses.
func ValidateExpense(expense *transaction.Transaction) error {
	if expense == nil {
		return errs.InvalidData("Expense cannot be null", "expense", nil)
	}

	if expense.Kind() != transaction.KindExpense {
		return errs.InvalidData("Only expenses can be stored", "type", expense.Type())
	}

	return nil
}

// CheckIndex validates a position against a ledger of the given size.
func CheckIndex(index, size int) error {
	if index < 0 {
		return errs.InvalidData("Index cannot be negative", "index", index)
	}

	if index >= size {
		return errs.NotFound(fmt.Sprintf("No expense found at index: %d (size: %d)", index, size), index)
	}

	return nil
}

func FilterByCategory(expenses []*transaction.Transaction, c category.Category) ([]*transaction.Transaction, error) {
	if !c.Valid() {
		return nil, errs.InvalidData("Category cannot be null", "category", c)
	}

	return filter(expenses, func(e *transaction.Transaction) bool {
		return e.Category() == c
	}), nil
}

func FilterByPriority(expenses []*transaction.Transaction, p transaction.Priority) ([]*transaction.Transaction, error) {
	if !p.Valid() {
		return nil, errs.InvalidData("Priority cannot be null", "priority", p)
	}

	return filter(expenses, func(e *transaction.Transaction) bool {
		return e.Priority() == p
	}), nil
}

func FilterAbove(expenses []*transaction.Transaction, threshold decimal.Decimal) ([]*transaction.Transaction, error) {
	if threshold.IsNegative() {
		return nil, errs.InvalidData("Amount must be positive", "amount", threshold.String())
	}

	return filter(expenses, func(e *transaction.Transaction) bool {
		return e.Amount().GreaterThanOrEqual(threshold)
	}), nil
}

func filter(expenses []*transaction.Transaction, keep func(*transaction.Transaction) bool) []*transaction.Transaction {
	result := []*transaction.Transaction{}
	for _, e := range expenses {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}
