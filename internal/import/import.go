package importutil

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/export"
	"github.com/GustavoCaso/expenseledger/internal/logger"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

// Saver receives every successfully parsed row. Repositories satisfy it, so
// their validation and duplicate rules apply to loaded rows as well.
type Saver interface {
	Save(expense *transaction.Transaction) error
}

// RowError describes a skipped row.
type RowError struct {
	Line   int
	Record string
	Err    error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d %q: %s", e.Line, e.Record, e.Err.Error())
}

func (e RowError) Unwrap() error {
	return e.Err
}

type Result struct {
	Loaded  int
	Skipped int
	Errors  []RowError
}

// maxLineSize bounds a single ledger line.
const maxLineSize = 1024 * 1024

// CSV reads a ledger written by export.CSV. The first line is the header.
// Every physical line is parsed on its own, so a bad row (an unbalanced
// quote included) is recorded and skipped without touching the next ones.
// Only read failures abort the import.
func CSV(reader io.Reader, saver Saver, log *logger.Logger) (Result, error) {
	var result Result

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")

		if line == 1 {
			if text != export.Header {
				log.Warn("unexpected CSV header, skipping first line anyway", "header", text)
			}
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		record, err := splitLine(text)
		if err == nil {
			var expense *transaction.Transaction
			expense, err = ParseRecord(record)
			if err == nil {
				err = saver.Save(expense)
			}
		}
		if err != nil {
			result.skip(log, RowError{Line: line, Record: text, Err: err})
			continue
		}

		result.Loaded++
	}

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("error reading CSV: %w", err)
	}

	log.Info("CSV import finished", "loaded", result.Loaded, "skipped", result.Skipped)

	return result, nil
}

// splitLine splits one line on the commas that are not enclosed in quotes,
// unwrapping quoted fields and un-doubling inner quotes.
func splitLine(text string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	record, err := r.Read()
	if err != nil {
		return nil, errs.InvalidData(err.Error(), "line", text)
	}

	return record, nil
}

func (r *Result) skip(log *logger.Logger, rowErr RowError) {
	r.Skipped++
	r.Errors = append(r.Errors, rowErr)
	log.Warn("skipping invalid line", "line", rowErr.Line, "error", rowErr.Err)
}

// LoadFile imports the ledger file at path into saver. The file is closed on
// every return path.
func LoadFile(path string, saver Saver, log *logger.Logger) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer file.Close()

	return CSV(file, saver, log)
}
