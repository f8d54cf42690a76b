package importutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/export"
	"github.com/GustavoCaso/expenseledger/internal/storage/memory"
	"github.com/GustavoCaso/expenseledger/internal/testutil"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
)

func TestImportCSV(t *testing.T) {
	logger := testutil.TestLogger(t)
	store := memory.New(memory.WithLogger(logger))

	csvData := `date,amount,description,category,priority
2025-01-20,100,Groceries,FOOD,LOW
2025-01-01,10.5,"Bus, fare",TRANSPORT,LOW
2025-01-02,30,"The ""Big"" movie",ENTERTAINMENT,URGENT
2025-01-03,4.5,,OTHER,MEDIUM
`

	result, err := CSV(strings.NewReader(csvData), store, logger)
	if err != nil {
		t.Fatalf("CSV() unexpected error: %v", err)
	}

	if result.Loaded != 4 || result.Skipped != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	expected := []string{"Groceries", "Bus, fare", `The "Big" movie`, ""}
	for i, want := range expected {
		e, err := store.FindByID(i)
		if err != nil {
			t.Fatalf("FindByID(%d) unexpected error: %v", i, err)
		}
		if e.Description() != want {
			t.Errorf("Expense[%d].Description = %q, want %q", i, e.Description(), want)
		}
	}
}

func TestImportCSVSkipsBadRows(t *testing.T) {
	logger := testutil.TestLogger(t)
	store := memory.New(memory.WithLogger(logger))

	csvData := `date,amount,description,category,priority
2025-01-20,100,Groceries,FOOD,LOW
not,a,valid,row
2025-01-20,abc,Gas,TRANSPORT,MEDIUM
2025-01-20,50,Gas,CARS,MEDIUM
2025-01-20,50,Gas,TRANSPORT,SOMETIME
2025-01-20,-50,Refund,TRANSPORT,MEDIUM
2025-01-21,12,Lunch,FOOD,HIGH
`

	result, err := CSV(strings.NewReader(csvData), store, logger)
	if err != nil {
		t.Fatalf("CSV() unexpected error: %v", err)
	}

	if result.Loaded != 2 {
		t.Errorf("Loaded = %d, want 2", result.Loaded)
	}

	if result.Skipped != 5 || len(result.Errors) != 5 {
		t.Fatalf("Skipped = %d (%d errors), want 5", result.Skipped, len(result.Errors))
	}

	if result.Errors[0].Line != 3 {
		t.Errorf("Errors[0].Line = %d, want 3", result.Errors[0].Line)
	}

	for _, rowErr := range result.Errors {
		if !errors.Is(rowErr, errs.ErrInvalidData) {
			t.Errorf("Expected InvalidData for %v", rowErr)
		}
	}

	if store.Count() != 2 {
		t.Errorf("Count() = %d, want 2", store.Count())
	}
}

func TestImportUnbalancedQuoteOnlySkipsItsLine(t *testing.T) {
	logger := testutil.TestLogger(t)
	store := memory.New(memory.WithLogger(logger))

	csvData := export.Header + "\n" +
		"2025-01-01,1,\"broken,FOOD,LOW\n" +
		"2025-01-02,2,ok,FOOD,LOW\r\n" +
		"\n" +
		"2025-01-03,3,ok2,FOOD,LOW\n"

	result, err := CSV(strings.NewReader(csvData), store, logger)
	if err != nil {
		t.Fatalf("CSV() unexpected error: %v", err)
	}

	if result.Loaded != 2 || result.Skipped != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	rowErr := result.Errors[0]
	if rowErr.Line != 2 || rowErr.Record != `2025-01-01,1,"broken,FOOD,LOW` {
		t.Errorf("unexpected row error: line %d record %q", rowErr.Line, rowErr.Record)
	}
	if !errors.Is(rowErr, errs.ErrInvalidData) {
		t.Errorf("Expected InvalidData, got %v", rowErr.Err)
	}

	for i, want := range []string{"ok", "ok2"} {
		e, err := store.FindByID(i)
		if err != nil {
			t.Fatalf("FindByID(%d) unexpected error: %v", i, err)
		}
		if e.Description() != want {
			t.Errorf("Expense[%d].Description = %q, want %q", i, e.Description(), want)
		}
	}
}

func TestImportLineTooLong(t *testing.T) {
	logger := testutil.TestLogger(t)

	csvData := export.Header + "\n2025-01-01,1," + strings.Repeat("x", maxLineSize+1) + ",FOOD,LOW\n"

	if _, err := CSV(strings.NewReader(csvData), memory.New(), logger); err == nil {
		t.Error("Expected a read error for an oversized line")
	}
}

func TestRoundTripFlattensLineBreaks(t *testing.T) {
	logger := testutil.TestLogger(t)

	var buf bytes.Buffer
	multiLine := []*transaction.Transaction{
		testutil.Expense(t, "2025-01-20", "12", "Pizza,\nextra cheese", category.Food, transaction.Low),
		testutil.Expense(t, "2025-01-21", "3", "Bus", category.Transport, transaction.Low),
	}
	if err := export.CSV(&buf, multiLine); err != nil {
		t.Fatalf("export.CSV failed: %v", err)
	}

	store := memory.New()
	result, err := CSV(&buf, store, logger)
	if err != nil {
		t.Fatalf("CSV() unexpected error: %v", err)
	}
	if result.Loaded != 2 || result.Skipped != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	e, _ := store.FindByID(0)
	if e.Description() != "Pizza, extra cheese" {
		t.Errorf("Description() = %q, want %q", e.Description(), "Pizza, extra cheese")
	}
}

func TestImportAppliesRepositoryRules(t *testing.T) {
	logger := testutil.TestLogger(t)
	store := memory.New(memory.WithLogger(logger), memory.WithDuplicateCheck(true))

	csvData := `date,amount,description,category,priority
2025-01-20,100,Groceries,FOOD,LOW
2025-01-20,120,Groceries,FOOD,HIGH
`

	result, err := CSV(strings.NewReader(csvData), store, logger)
	if err != nil {
		t.Fatalf("CSV() unexpected error: %v", err)
	}

	if result.Loaded != 1 || result.Skipped != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	if !errors.Is(result.Errors[0], errs.ErrDuplicateRecord) {
		t.Errorf("Expected DuplicateRecord, got %v", result.Errors[0].Err)
	}
}

func TestImportEmpty(t *testing.T) {
	logger := testutil.TestLogger(t)
	store := memory.New()

	for _, input := range []string{"", export.Header + "\n"} {
		result, err := CSV(strings.NewReader(input), store, logger)
		if err != nil {
			t.Fatalf("CSV(%q) unexpected error: %v", input, err)
		}
		if result.Loaded != 0 || result.Skipped != 0 {
			t.Errorf("CSV(%q) = %+v, want zero result", input, result)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	logger := testutil.TestLogger(t)

	original := []*transaction.Transaction{
		testutil.Expense(t, "2025-01-20", "100", "Groceries", category.Food, transaction.Low),
		testutil.Expense(t, "2025-01-20", "50", "Gas", category.Transport, transaction.Medium),
		testutil.Expense(t, "2025-01-01", "10.55", "Bus, fare", category.Transport, transaction.Low),
		testutil.Expense(t, "2025-02-14", "89.99", `Dinner at "Roma"`, category.Entertainment, transaction.High),
		testutil.Expense(t, "2025-03-01", "1500", "", category.Housing, transaction.Urgent),
		testutil.Expense(t, "2025-03-02", "0", "Free check-up", category.Healthcare, transaction.Medium),
	}

	var buf bytes.Buffer
	if err := export.CSV(&buf, original); err != nil {
		t.Fatalf("export.CSV failed: %v", err)
	}

	store := memory.New()
	result, err := CSV(&buf, store, logger)
	if err != nil {
		t.Fatalf("CSV() unexpected error: %v", err)
	}

	if result.Loaded != len(original) || result.Skipped != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	loaded := store.FindAll()
	for _, want := range original {
		found := false
		for _, got := range loaded {
			if got.Equal(want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("record %v missing after round trip", want.Display())
		}
	}
}

func TestLoadFile(t *testing.T) {
	logger := testutil.TestLogger(t)
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.csv"), memory.New(), logger)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}

	path := filepath.Join(dir, "expenses.csv")
	content := export.Header + "\n2025-01-01,10.5,\"Bus, fare\",TRANSPORT,LOW\nbroken\n"
	if err = os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	store := memory.New()
	result, err := LoadFile(path, store, logger)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if result.Loaded != 1 || result.Skipped != 1 {
		t.Errorf("unexpected result: %+v", result)
	}

	e, _ := store.FindByID(0)
	if e.Description() != "Bus, fare" {
		t.Errorf("Description() = %q, want %q", e.Description(), "Bus, fare")
	}
}
