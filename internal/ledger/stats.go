package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

func (m *Manager) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, expense := range m.repository.FindAll() {
		total = total.Add(expense.Amount())
	}
	return total
}

// FindMostExpensive returns the first expense with the highest amount.
// The boolean is false on an empty ledger.
func (m *Manager) FindMostExpensive() (*transaction.Transaction, bool) {
	expenses := m.repository.FindAll()
	if len(expenses) == 0 {
		return nil, false
	}

	mostExpensive := expenses[0]
	for _, expense := range expenses[1:] {
		if expense.Amount().GreaterThan(mostExpensive.Amount()) {
			mostExpensive = expense
		}
	}

	return mostExpensive, true
}

// FindCheapest returns the first expense with the lowest amount.
func (m *Manager) FindCheapest() (*transaction.Transaction, bool) {
	expenses := m.repository.FindAll()
	if len(expenses) == 0 {
		return nil, false
	}

	cheapest := expenses[0]
	for _, expense := range expenses[1:] {
		if expense.Amount().LessThan(cheapest.Amount()) {
			cheapest = expense
		}
	}

	return cheapest, true
}

// TotalByCategory sums a single category by filtering the repository.
func (m *Manager) TotalByCategory(c category.Category) (decimal.Decimal, error) {
	expenses, err := m.repository.FindByCategory(c)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount())
	}

	return total, nil
}

// CalculateTotalsByCategory sums every category in a single pass over the
// ledger. Every category is present, with zero when it has no expenses.
func (m *Manager) CalculateTotalsByCategory() map[category.Category]decimal.Decimal {
	totals := make(map[category.Category]decimal.Decimal, len(category.All()))
	for _, c := range category.All() {
		totals[c] = decimal.Zero
	}

	for _, expense := range m.repository.FindAll() {
		c := expense.Category()
		totals[c] = totals[c].Add(expense.Amount())
	}

	return totals
}

func (m *Manager) ExpenseCountByCategory() map[category.Category]int {
	counts := make(map[category.Category]int, len(category.All()))
	for _, c := range category.All() {
		counts[c] = 0
	}

	for _, expense := range m.repository.FindAll() {
		counts[expense.Category()]++
	}

	return counts
}

func (m *Manager) ExpenseCountByPriority() map[transaction.Priority]int {
	counts := make(map[transaction.Priority]int, len(transaction.Priorities()))
	for _, p := range transaction.Priorities() {
		counts[p] = 0
	}

	for _, expense := range m.repository.FindAll() {
		counts[expense.Priority()]++
	}

	return counts
}

// UniqueDates returns the set of dates that have at least one expense.
func (m *Manager) UniqueDates() map[string]struct{} {
	dates := make(map[string]struct{})
	for _, expense := range m.repository.FindAll() {
		dates[expense.Date()] = struct{}{}
	}
	return dates
}

func (m *Manager) TotalsByDate() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range m.repository.FindAll() {
		date := expense.Date()
		totals[date] = totals[date].Add(expense.Amount())
	}
	return totals
}

// ExpensesByMonth groups the expenses of a YYYY-MM month by exact date,
// keeping ledger order inside each date.
func (m *Manager) ExpensesByMonth(month string) (map[string][]*transaction.Transaction, error) {
	if !util.IsMonthPrefix(month) {
		return nil, errs.InvalidData("Month must be in YYYY-MM format", "month", month)
	}

	byDate := make(map[string][]*transaction.Transaction)
	for _, expense := range m.repository.FindAll() {
		if expense.IsFromMonth(month) {
			byDate[expense.Date()] = append(byDate[expense.Date()], expense)
		}
	}

	return byDate, nil
}

// FindMostPopularCategory returns the category with the most expenses. On a
// tie the category declared first wins. The boolean is false on an empty
// ledger.
func (m *Manager) FindMostPopularCategory() (category.Category, bool) {
	counts := m.ExpenseCountByCategory()

	var mostPopular category.Category
	maxCount := 0

	for _, c := range category.All() {
		if counts[c] > maxCount {
			maxCount = counts[c]
			mostPopular = c
		}
	}

	return mostPopular, maxCount > 0
}
