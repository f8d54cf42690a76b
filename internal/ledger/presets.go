package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/storage"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

var presets = []struct {
	date        string
	amount      string
	description string
	category    category.Category
}{
	{"2025-01-20", "15", "Morning Coffee", category.Food},
	{"2025-01-20", "45", "Lunch at restaurant", category.Food},
	{"2025-01-20", "4.5", "Bus Ticket", category.Transport},
	{"2025-01-20", "30", "Movie night", category.Entertainment},
	{"2025-01-01", "1500", "Monthly rent", category.Housing},
}

// AddPresetExpenses bulk adds a handful of common expenses.
func (m *Manager) AddPresetExpenses() storage.SaveAllResult {
	expenses := make([]*transaction.Transaction, 0, len(presets))
	for _, p := range presets {
		e, err := transaction.NewExpenseDefault(p.date, decimal.RequireFromString(p.amount), p.description, p.category)
		if err != nil {
			m.logger.Error("invalid preset expense", "description", p.description, "error", err)
			continue
		}
		expenses = append(expenses, e)
	}

	return m.AddExpenses(expenses)
}
