// Package report builds the statistics snapshot shown by the stats command.
package report

import (
	"embed"
	"io"
	"path"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/ledger"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

//go:embed templates/*
var content embed.FS

const percentageOfTotal = 100

var hundred = decimal.NewFromInt(percentageOfTotal)

type Category struct {
	Category   category.Category
	Count      int
	Total      decimal.Decimal
	Average    decimal.Decimal
	Percentage decimal.Decimal
}

type Priority struct {
	Priority   transaction.Priority
	Count      int
	Percentage decimal.Decimal
}

type Month struct {
	Month string
	Total decimal.Decimal
}

type Report struct {
	Count       int
	Total       decimal.Decimal
	Average     decimal.Decimal
	Categories  []Category
	Priorities  []Priority
	Months      []Month
	UniqueDates int
	// MostExpensiveDate is empty when no day has a total above zero.
	MostExpensiveDate  string
	MostExpensiveTotal decimal.Decimal
	MostExpensive      *transaction.Transaction
	Cheapest           *transaction.Transaction
	MostPopular        category.Category
}

func (r Report) Empty() bool {
	return r.Count == 0
}

// Generate computes the snapshot from the live ledger. Categories and
// priorities without expenses are left out; both follow declaration order.
func Generate(m *ledger.Manager) Report {
	var report Report

	report.Count = m.ExpenseCount()
	report.Total = m.CalculateTotal()
	if report.Count == 0 {
		return report
	}

	count := decimal.NewFromInt(int64(report.Count))
	report.Average = report.Total.Div(count)
	report.MostExpensive, _ = m.FindMostExpensive()
	report.Cheapest, _ = m.FindCheapest()
	report.MostPopular, _ = m.FindMostPopularCategory()

	totals := m.CalculateTotalsByCategory()
	counts := m.ExpenseCountByCategory()
	for _, c := range category.All() {
		n := counts[c]
		if n == 0 {
			continue
		}

		stats := Category{
			Category: c,
			Count:    n,
			Total:    totals[c],
			Average:  totals[c].Div(decimal.NewFromInt(int64(n))),
		}
		if !report.Total.IsZero() {
			stats.Percentage = totals[c].Div(report.Total).Mul(hundred)
		}

		report.Categories = append(report.Categories, stats)
	}

	priorities := m.ExpenseCountByPriority()
	for _, p := range transaction.Priorities() {
		n := priorities[p]
		if n == 0 {
			continue
		}
		report.Priorities = append(report.Priorities, Priority{
			Priority:   p,
			Count:      n,
			Percentage: decimal.NewFromInt(int64(n)).Div(count).Mul(hundred),
		})
	}

	byDate := m.TotalsByDate()
	byMonth := make(map[string]decimal.Decimal)
	report.UniqueDates = len(byDate)
	report.MostExpensiveTotal = decimal.Zero
	for _, date := range util.SortedKeys(byDate) {
		if byDate[date].GreaterThan(report.MostExpensiveTotal) {
			report.MostExpensiveDate = date
			report.MostExpensiveTotal = byDate[date]
		}

		month := util.MonthOf(date)
		byMonth[month] = byMonth[month].Add(byDate[date])
	}

	for _, month := range util.SortedKeys(byMonth) {
		report.Months = append(report.Months, Month{Month: month, Total: byMonth[month]})
	}

	return report
}

var templateFuncs = template.FuncMap{
	"formatMoney":   util.FormatPLN,
	"formatPercent": formatPercent,
	"colorOutput":   util.ColorOutput,
}

func formatPercent(value decimal.Decimal) string {
	return value.StringFixed(1) + "%"
}

// Render writes the report using the embedded stats template.
func Render(out io.Writer, r Report) error {
	return renderTemplate(out, "stats.tmpl", r)
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}

	t, err := template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl))
	if err != nil {
		return err
	}

	return t.Execute(out, value)
}
