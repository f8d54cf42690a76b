package ledger

import (
	"github.com/GustavoCaso/expenseledger/internal/export"
	importutil "github.com/GustavoCaso/expenseledger/internal/import"
)

// SaveToFile writes the whole ledger to a CSV file.
func (m *Manager) SaveToFile(path string) (int, error) {
	n, err := export.SaveFile(path, m.repository.FindAll())
	if err != nil {
		return 0, err
	}

	m.logger.Info("ledger saved", "path", path, "expenses", n)

	return n, nil
}

// LoadFromFile appends the expenses of a CSV file through the repository.
func (m *Manager) LoadFromFile(path string) (importutil.Result, error) {
	return importutil.LoadFile(path, m.repository, m.logger)
}
