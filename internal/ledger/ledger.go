// Package ledger implements the budget manager: CRUD passthroughs and
// aggregate statistics computed over a storage.Repository.
//
// The manager keeps no copy of the ledger. Every operation re-reads the
// repository, so results always reflect the live state.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/logger"
	"github.com/GustavoCaso/expenseledger/internal/storage"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

type Manager struct {
	repository storage.Repository
	logger     *logger.Logger
}

func New(repository storage.Repository, log *logger.Logger) (*Manager, error) {
	if repository == nil {
		return nil, errs.InvalidData("Repository cannot be null", "repository", nil)
	}

	if log == nil {
		log = logger.Discard()
	}

	log.Debug("budget manager initialized", "repository", fmt.Sprintf("%T", repository))

	return &Manager{
		repository: repository,
		logger:     log,
	}, nil
}

// AddExpense stores an already built expense.
func (m *Manager) AddExpense(expense *transaction.Transaction) error {
	if err := m.repository.Save(expense); err != nil {
		return err
	}

	m.logger.Info("expense added", "date", expense.Date(), "description", expense.Description())

	return nil
}

// CreateExpense validates, builds and stores a new expense.
func (m *Manager) CreateExpense(
	date string,
	amount decimal.Decimal,
	description string,
	c category.Category,
	p transaction.Priority,
) (*transaction.Transaction, error) {
	expense, err := transaction.NewExpense(date, amount, description, c, p)
	if err != nil {
		return nil, err
	}

	if err = m.AddExpense(expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// AddExpenses bulk saves expenses; see storage.Repository.SaveAll.
func (m *Manager) AddExpenses(expenses []*transaction.Transaction) storage.SaveAllResult {
	if len(expenses) == 0 {
		m.logger.Debug("no expenses provided")
		return storage.SaveAllResult{}
	}

	return m.repository.SaveAll(expenses)
}

// Expenses returns the ledger in order, for display.
func (m *Manager) Expenses() []*transaction.Transaction {
	return m.repository.FindAll()
}

func (m *Manager) ExpenseCount() int {
	return m.repository.Count()
}

func (m *Manager) ExpenseByIndex(index int) (*transaction.Transaction, error) {
	expense, err := m.repository.FindByID(index)
	if err != nil {
		m.logger.Debug("expense lookup failed", "index", index, "error", err)
		return nil, err
	}

	return expense, nil
}

func (m *Manager) ClearAll() {
	m.repository.DeleteAll()
	m.logger.Info("all expenses cleared")
}

// RemoveExpense deletes the expense at index and returns it. Lookup errors
// keep their kind.
func (m *Manager) RemoveExpense(index int) (*transaction.Transaction, error) {
	expense, err := m.repository.FindByID(index)
	if err != nil {
		m.logger.Warn("unable to remove expense", "index", index, "error", err)
		return nil, fmt.Errorf("failed to remove expense: %w", err)
	}

	if err = m.repository.Delete(index); err != nil {
		m.logger.Warn("unable to remove expense", "index", index, "error", err)
		return nil, fmt.Errorf("failed to remove expense: %w", err)
	}

	m.logger.Info("expense removed", "index", index, "description", expense.Description())

	return expense, nil
}

func (m *Manager) FindByCategory(c category.Category) ([]*transaction.Transaction, error) {
	return m.repository.FindByCategory(c)
}

func (m *Manager) FindByPriority(p transaction.Priority) ([]*transaction.Transaction, error) {
	return m.repository.FindByPriority(p)
}

// FindExpensesAbove returns the expenses with amount >= threshold.
func (m *Manager) FindExpensesAbove(threshold decimal.Decimal) ([]*transaction.Transaction, error) {
	return m.repository.FindExpensesAbove(threshold)
}
