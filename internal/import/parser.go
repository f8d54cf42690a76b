package importutil

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

const fieldsPerRecord = 5

// ParseRecord builds an expense from the fields of one data row:
// date, amount, description, category, priority.
func ParseRecord(record []string) (*transaction.Transaction, error) {
	if len(record) != fieldsPerRecord {
		return nil, errs.InvalidData(
			fmt.Sprintf("expected %d fields, got %d", fieldsPerRecord, len(record)),
			"record",
			strings.Join(record, ","),
		)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[1]))
	if err != nil {
		return nil, errs.InvalidData("invalid number", "amount", record[1])
	}

	c, err := category.Parse(record[3])
	if err != nil {
		return nil, err
	}

	p, err := transaction.ParsePriority(record[4])
	if err != nil {
		return nil, err
	}

	return transaction.NewExpense(record[0], amount, record[2], c, p)
}
