package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

// ExpenseFilter holds filter criteria for listing expenses.
// All fields are pointers to distinguish "not set" from zero values.
type ExpenseFilter struct {
	Description *string          // case insensitive substring of the description
	AmountMin   *decimal.Decimal // inclusive
	AmountMax   *decimal.Decimal // inclusive
	DateFrom    *string          // YYYY-MM-DD, inclusive
	DateTo      *string          // YYYY-MM-DD, inclusive
}

// Matches reports whether expense satisfies every criteria that is set.
func (f *ExpenseFilter) Matches(expense *transaction.Transaction) bool {
	if f.Description != nil &&
		!strings.Contains(strings.ToLower(expense.Description()), strings.ToLower(*f.Description)) {
		return false
	}

	if f.AmountMin != nil && expense.Amount().LessThan(*f.AmountMin) {
		return false
	}

	if f.AmountMax != nil && expense.Amount().GreaterThan(*f.AmountMax) {
		return false
	}

	// Dates are YYYY-MM-DD so string order is date order.
	if f.DateFrom != nil && expense.Date() < *f.DateFrom {
		return false
	}

	if f.DateTo != nil && expense.Date() > *f.DateTo {
		return false
	}

	return true
}

// SortField represents a field that can be sorted on.
type SortField string

const (
	SortByIndex  SortField = "index"
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOptions holds sorting preferences.
type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortOptions returns the default sort, ledger order.
func DefaultSortOptions() *SortOptions {
	return &SortOptions{
		Field:     SortByIndex,
		Direction: SortAsc,
	}
}

// String returns the sort options as a string (e.g., "date:desc").
func (s *SortOptions) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// Entry is a matching expense together with its ledger index.
type Entry struct {
	Index   int
	Expense *transaction.Transaction
}

// Apply filters expenses and sorts the result. Sorting is stable, so equal
// keys keep ledger order.
func Apply(expenses []*transaction.Transaction, f *ExpenseFilter, s *SortOptions) []Entry {
	if f == nil {
		f = &ExpenseFilter{}
	}
	if s == nil {
		s = DefaultSortOptions()
	}

	entries := make([]Entry, 0, len(expenses))
	for i, expense := range expenses {
		if f.Matches(expense) {
			entries = append(entries, Entry{Index: i, Expense: expense})
		}
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		var c int
		switch s.Field {
		case SortByDate:
			c = strings.Compare(a.Expense.Date(), b.Expense.Date())
		case SortByAmount:
			c = a.Expense.Amount().Cmp(b.Expense.Amount())
		default:
			c = cmp.Compare(a.Index, b.Index)
		}

		if s.Direction == SortDesc {
			return -c
		}
		return c
	})

	return entries
}
