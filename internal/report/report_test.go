package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/ledger"
	"github.com/GustavoCaso/expenseledger/internal/storage/memory"
	"github.com/GustavoCaso/expenseledger/internal/testutil"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

func setupManager(t *testing.T, expenses []*transaction.Transaction) *ledger.Manager {
	t.Helper()

	m, err := ledger.New(memory.New(), testutil.TestLogger(t))
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if result := m.AddExpenses(expenses); result.Failed() != 0 {
		t.Fatalf("Failed to seed expenses: %v", result.Reasons())
	}

	return m
}

func TestGenerate(t *testing.T) {
	m := setupManager(t, testutil.ScenarioExpenses(t))

	report := Generate(m)

	if report.Count != 2 {
		t.Errorf("Report.Count = %v, want 2", report.Count)
	}

	if !report.Total.Equal(decimal.NewFromInt(150)) {
		t.Errorf("Report.Total = %v, want 150", report.Total)
	}

	if !report.Average.Equal(decimal.NewFromInt(75)) {
		t.Errorf("Report.Average = %v, want 75", report.Average)
	}

	if report.MostExpensive.Description() != "Groceries" || report.Cheapest.Description() != "Gas" {
		t.Errorf("Unexpected extremes: %v, %v", report.MostExpensive, report.Cheapest)
	}

	if report.MostPopular != category.Food {
		t.Errorf("Report.MostPopular = %v, want FOOD", report.MostPopular)
	}

	if len(report.Categories) != 2 {
		t.Fatalf("Expected 2 categories, got %d", len(report.Categories))
	}

	food := report.Categories[0]
	if food.Category != category.Food || food.Count != 1 || !food.Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Unexpected food stats: %+v", food)
	}
	if food.Percentage.StringFixed(1) != "66.7" {
		t.Errorf("Food percentage = %v, want 66.7", food.Percentage.StringFixed(1))
	}

	transport := report.Categories[1]
	if transport.Category != category.Transport || !transport.Average.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Unexpected transport stats: %+v", transport)
	}

	if len(report.Priorities) != 2 {
		t.Fatalf("Expected only the priorities in use, got %+v", report.Priorities)
	}

	expectedPriorities := map[transaction.Priority]struct {
		count      int
		percentage string
	}{
		transaction.Low:    {1, "50.0"},
		transaction.Medium: {1, "50.0"},
	}
	for _, p := range report.Priorities {
		want := expectedPriorities[p.Priority]
		if p.Count != want.count || p.Percentage.StringFixed(1) != want.percentage {
			t.Errorf("Priority %s = %d (%s), want %d (%s)",
				p.Priority, p.Count, p.Percentage.StringFixed(1), want.count, want.percentage)
		}
	}

	if report.UniqueDates != 1 {
		t.Errorf("Report.UniqueDates = %v, want 1", report.UniqueDates)
	}

	if report.MostExpensiveDate != "2025-01-20" || !report.MostExpensiveTotal.Equal(decimal.NewFromInt(150)) {
		t.Errorf("Most expensive date = %v (%v), want 2025-01-20 (150)",
			report.MostExpensiveDate, report.MostExpensiveTotal)
	}
}

func TestGenerateEmpty(t *testing.T) {
	report := Generate(setupManager(t, nil))

	if !report.Empty() {
		t.Error("Expected an empty report")
	}

	if report.MostExpensiveDate != "" || len(report.Categories) != 0 {
		t.Errorf("Unexpected report: %+v", report)
	}
}

func TestZeroAmounts(t *testing.T) {
	util.DisableColors()

	m := setupManager(t, []*transaction.Transaction{
		testutil.Expense(t, "2025-03-01", "0", "Free sample", category.Food, transaction.Low),
		testutil.Expense(t, "2025-03-02", "0", "Free check-up", category.Healthcare, transaction.Low),
	})

	report := Generate(m)

	if report.MostExpensiveDate != "" {
		t.Errorf("MostExpensiveDate = %v, want none", report.MostExpensiveDate)
	}

	if len(report.Priorities) != 1 || report.Priorities[0].Priority != transaction.Low {
		t.Errorf("Expected only LOW, got %+v", report.Priorities)
	}

	var buf bytes.Buffer
	if err := Render(&buf, report); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	for _, unwanted := range []string{"Most expensive day", "MEDIUM", "URGENT"} {
		if strings.Contains(buf.String(), unwanted) {
			t.Errorf("Render() output should not contain %q\n%s", unwanted, buf.String())
		}
	}
}

func TestMostExpensiveDateTie(t *testing.T) {
	m := setupManager(t, []*transaction.Transaction{
		testutil.Expense(t, "2025-03-02", "40", "later", category.Food, transaction.Low),
		testutil.Expense(t, "2025-03-01", "15", "earlier", category.Food, transaction.Low),
		testutil.Expense(t, "2025-03-01", "25", "earlier again", category.Other, transaction.High),
		testutil.Expense(t, "2025-02-01", "10", "cheap", category.Other, transaction.High),
	})

	report := Generate(m)

	if report.MostExpensiveDate != "2025-03-01" {
		t.Errorf("MostExpensiveDate = %v, want 2025-03-01", report.MostExpensiveDate)
	}

	if len(report.Months) != 2 || report.Months[0].Month != "2025-02" || !report.Months[1].Total.Equal(decimal.NewFromInt(80)) {
		t.Errorf("Unexpected months: %+v", report.Months)
	}

	if report.UniqueDates != 3 {
		t.Errorf("UniqueDates = %v, want 3", report.UniqueDates)
	}
}

func TestRender(t *testing.T) {
	util.DisableColors()

	var buf bytes.Buffer
	if err := Render(&buf, Generate(setupManager(t, testutil.ScenarioExpenses(t)))); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	output := buf.String()
	expected := []string{
		"Expenses: 2",
		"Total:    150.00 PLN",
		"Average:  75.00 PLN",
		"🍔 Jedzenie: 1 | 100.00 PLN | 66.7% | avg 100.00 PLN",
		"🚗 Transport: 1 | 50.00 PLN | 33.3% | avg 50.00 PLN",
		"LOW: 1 (50.0%)",
		"2025-01: 150.00 PLN",
		"Most popular category: 🍔 Jedzenie",
		"Cheapest:       [EXPENSE] 2025-01-20 | 50.00 PLN | 🚗 Transport | MEDIUM | Gas",
		"Most expensive day: 2025-01-20 (150.00 PLN)",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("Render() output missing %q\n%s", want, output)
		}
	}

	buf.Reset()
	if err := Render(&buf, Generate(setupManager(t, nil))); err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No expenses to analyze.") {
		t.Errorf("Expected empty message, got %q", buf.String())
	}
}
