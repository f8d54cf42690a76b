// Package memory is the live, in-process expense repository.
package memory

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/logger"
	"github.com/GustavoCaso/expenseledger/internal/storage"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

// Store keeps the ledger in a slice. It is not safe for concurrent use;
// callers sharing a Store across goroutines must synchronize externally.
type Store struct {
	expenses         []*transaction.Transaction
	rejectDuplicates bool
	maxAmount        *decimal.Decimal
	logger           *logger.Logger
}

type Option func(*Store)

// WithDuplicateCheck makes Save reject an expense whose date and
// description match a stored one.
func WithDuplicateCheck(enabled bool) Option {
	return func(s *Store) {
		s.rejectDuplicates = enabled
	}
}

// WithMaxAmount makes Save reject expenses above max.
func WithMaxAmount(max decimal.Decimal) Option {
	return func(s *Store) {
		s.maxAmount = &max
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		expenses: []*transaction.Transaction{},
		logger:   logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With("repository", "memory")

	return s
}

func (s *Store) Save(expense *transaction.Transaction) error {
	if err := storage.ValidateExpense(expense); err != nil {
		return err
	}

	if s.maxAmount != nil && expense.Amount().GreaterThan(*s.maxAmount) {
		return errs.AmountTooLarge(expense.Amount(), *s.maxAmount)
	}

	if s.rejectDuplicates {
		for _, existing := range s.expenses {
			if existing.Date() == expense.Date() && existing.Description() == expense.Description() {
				return errs.Duplicate(existing.Date(), existing.Description())
			}
		}
	}

	s.expenses = append(s.expenses, expense)
	s.logger.Debug("expense saved", "index", len(s.expenses)-1, "date", expense.Date())

	return nil
}

func (s *Store) SaveAll(expenses []*transaction.Transaction) storage.SaveAllResult {
	result := storage.SaveEach(expenses, s.Save)

	for _, failure := range result.Failures {
		s.logger.Warn("bulk save rejected expense", "position", failure.Position, "error", failure.Err)
	}
	if result.Attempted > 0 {
		s.logger.Info("bulk save finished", "saved", result.Saved, "attempted", result.Attempted)
	}

	return result
}

func (s *Store) FindAll() []*transaction.Transaction {
	return slices.Clone(s.expenses)
}

func (s *Store) FindByID(index int) (*transaction.Transaction, error) {
	if err := storage.CheckIndex(index, len(s.expenses)); err != nil {
		return nil, err
	}

	return s.expenses[index], nil
}

func (s *Store) FindByCategory(c category.Category) ([]*transaction.Transaction, error) {
	return storage.FilterByCategory(s.expenses, c)
}

func (s *Store) FindByPriority(p transaction.Priority) ([]*transaction.Transaction, error) {
	return storage.FilterByPriority(s.expenses, p)
}

func (s *Store) FindExpensesAbove(threshold decimal.Decimal) ([]*transaction.Transaction, error) {
	return storage.FilterAbove(s.expenses, threshold)
}

func (s *Store) Delete(index int) error {
	if err := storage.CheckIndex(index, len(s.expenses)); err != nil {
		return err
	}

	s.expenses = slices.Delete(s.expenses, index, index+1)
	s.logger.Debug("expense deleted", "index", index)

	return nil
}

func (s *Store) DeleteAll() {
	s.expenses = []*transaction.Transaction{}
	s.logger.Debug("ledger cleared")
}

func (s *Store) Count() int {
	return len(s.expenses)
}

func (s *Store) IsEmpty() bool {
	return len(s.expenses) == 0
}
