// Package fixture provides a repository preloaded with a fixed set of
// expenses, used to exercise the ledger without real data.
package fixture

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/storage"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

type seed struct {
	date        string
	amount      string
	description string
	category    category.Category
}

var seeds = []seed{
	{"2025-01-01", "10.00", "Fake Coffee", category.Food},
	{"2024-04-08", "15.90", "Fake Bus", category.Transport},
	{"2025-10-11", "40.50", "Netflix", category.Entertainment},
	{"2025-12-30", "132.75", "Medicines", category.Healthcare},
	{"2025-06-20", "221.15", "TV", category.Housing},
}

// Records builds fresh copies of the fixture expenses, all with Medium
// priority.
func Records() []*transaction.Transaction {
	records := make([]*transaction.Transaction, 0, len(seeds))
	for _, s := range seeds {
		e, err := transaction.NewExpenseDefault(s.date, decimal.RequireFromString(s.amount), s.description, s.category)
		if err != nil {
			panic(err)
		}
		records = append(records, e)
	}
	return records
}

// Store starts with the fixture records and otherwise follows the
// repository contract. It never rejects duplicates.
type Store struct {
	data []*transaction.Transaction
}

func New() *Store {
	return &Store{data: Records()}
}

func (s *Store) Save(expense *transaction.Transaction) error {
	if err := storage.ValidateExpense(expense); err != nil {
		return err
	}

	s.data = append(s.data, expense)

	return nil
}

func (s *Store) SaveAll(expenses []*transaction.Transaction) storage.SaveAllResult {
	return storage.SaveEach(expenses, s.Save)
}

func (s *Store) FindAll() []*transaction.Transaction {
	return slices.Clone(s.data)
}

func (s *Store) FindByID(index int) (*transaction.Transaction, error) {
	if err := storage.CheckIndex(index, len(s.data)); err != nil {
		return nil, err
	}

	return s.data[index], nil
}

func (s *Store) FindByCategory(c category.Category) ([]*transaction.Transaction, error) {
	return storage.FilterByCategory(s.data, c)
}

func (s *Store) FindByPriority(p transaction.Priority) ([]*transaction.Transaction, error) {
	return storage.FilterByPriority(s.data, p)
}

func (s *Store) FindExpensesAbove(threshold decimal.Decimal) ([]*transaction.Transaction, error) {
	return storage.FilterAbove(s.data, threshold)
}

func (s *Store) Delete(index int) error {
	if err := storage.CheckIndex(index, len(s.data)); err != nil {
		return err
	}

	s.data = slices.Delete(s.data, index, index+1)

	return nil
}

func (s *Store) DeleteAll() {
	s.data = []*transaction.Transaction{}
}

func (s *Store) Count() int {
	return len(s.data)
}

func (s *Store) IsEmpty() bool {
	return len(s.data) == 0
}
