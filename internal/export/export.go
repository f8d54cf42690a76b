package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

// Header is the first line of every ledger file.
const Header = "date,amount,description,category,priority"

// CSV writes the ledger as CSV.
// format: date,amount,description,category,priority
func CSV(writer io.Writer, expenses []*transaction.Transaction) error {
	w := bufio.NewWriter(writer)

	if _, err := w.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, expense := range expenses {
		if _, err := w.WriteString(Row(expense) + "\n"); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}

// Row renders one expense. Categories and priorities are written by their
// symbolic names.
func Row(expense *transaction.Transaction) string {
	return strings.Join([]string{
		expense.Date(),
		expense.Amount().String(),
		QuoteDescription(expense.Description()),
		expense.Category().String(),
		expense.Priority().String(),
	}, ",")
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// QuoteDescription keeps every record on one line by turning line breaks
// into spaces, then wraps the result in double quotes, doubling inner quotes,
// only when it contains a comma or a quote.
func QuoteDescription(s string) string {
	s = lineBreaks.Replace(s)
	if !strings.ContainsAny(s, ",\"") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// SaveFile writes the ledger to path, replacing any existing file, and
// returns the number of rows written.
func SaveFile(path string, expenses []*transaction.Transaction) (n int, err error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	if err = CSV(file, expenses); err != nil {
		return 0, err
	}

	return len(expenses), nil
}
