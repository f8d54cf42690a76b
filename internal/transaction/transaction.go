// Package transaction models the dated, amount bearing records of the ledger.
//
// Expense, Income and Budget share one Transaction type tagged by Kind;
// the per-variant fields are only meaningful for their own kind.
package transaction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

type Kind uint8

const (
	KindExpense Kind = iota + 1
	KindIncome
	KindBudget
)

func (k Kind) String() string {
	switch k {
	case KindExpense:
		return "EXPENSE"
	case KindIncome:
		return "INCOME"
	case KindBudget:
		return "BUDGET"
	default:
		return "UNKNOWN"
	}
}

// expensiveThreshold marks an expense as expensive when exceeded.
var expensiveThreshold = decimal.NewFromInt(500)

type Transaction struct {
	kind        Kind
	date        string
	amount      decimal.Decimal
	description string

	// expense and budget
	category category.Category
	// expense
	priority Priority
	// income
	source string
	// budget
	period string
}

func newBase(kind Kind, date string, amount decimal.Decimal, description string) (*Transaction, error) {
	if strings.TrimSpace(date) == "" {
		return nil, errs.InvalidData("Date cannot be empty", "date", date)
	}

	if _, err := util.ParseDate(date); err != nil {
		return nil, errs.InvalidData(err.Error(), "date", date)
	}

	if amount.IsNegative() {
		return nil, errs.InvalidData("Amount cannot be negative", "amount", amount.String())
	}

	return &Transaction{
		kind:        kind,
		date:        date,
		amount:      amount,
		description: description,
	}, nil
}

// NewExpense validates and builds an expense.
func NewExpense(date string, amount decimal.Decimal, description string, c category.Category, p Priority) (*Transaction, error) {
	t, err := newBase(KindExpense, date, amount, description)
	if err != nil {
		return nil, err
	}

	if !c.Valid() {
		return nil, errs.InvalidData("Category cannot be null", "category", c)
	}

	if !p.Valid() {
		return nil, errs.InvalidData("Priority cannot be null", "priority", p)
	}

	t.category = c
	t.priority = p

	return t, nil
}

// NewExpenseDefault builds an expense with Medium priority.
func NewExpenseDefault(date string, amount decimal.Decimal, description string, c category.Category) (*Transaction, error) {
	return NewExpense(date, amount, description, c, Medium)
}

func NewIncome(date string, amount decimal.Decimal, description, source string) (*Transaction, error) {
	t, err := newBase(KindIncome, date, amount, description)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(source) == "" {
		return nil, errs.InvalidData("Source cannot be empty", "source", source)
	}

	t.source = source

	return t, nil
}

func NewBudget(date string, amount decimal.Decimal, description, period string, c category.Category) (*Transaction, error) {
	t, err := newBase(KindBudget, date, amount, description)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(period) == "" {
		return nil, errs.InvalidData("Period cannot be empty", "period", period)
	}

	if !c.Valid() {
		return nil, errs.InvalidData("Category cannot be null", "category", c)
	}

	t.period = period
	t.category = c

	return t, nil
}

func (t *Transaction) Kind() Kind {
	return t.kind
}

// Type returns the fixed tag of the variant: EXPENSE, INCOME or BUDGET.
func (t *Transaction) Type() string {
	return t.kind.String()
}

func (t *Transaction) Date() string {
	return t.date
}

func (t *Transaction) Amount() decimal.Decimal {
	return t.amount
}

func (t *Transaction) Description() string {
	return t.description
}

func (t *Transaction) Category() category.Category {
	return t.category
}

func (t *Transaction) Priority() Priority {
	return t.priority
}

func (t *Transaction) Source() string {
	return t.source
}

func (t *Transaction) Period() string {
	return t.period
}

// SetAmount corrects the amount of an expense.
func (t *Transaction) SetAmount(amount decimal.Decimal) error {
	if t.kind != KindExpense {
		return errs.InvalidData("Amount can only be corrected on expenses", "kind", t.kind)
	}

	if amount.IsNegative() {
		return errs.InvalidData("Amount cannot be negative", "amount", amount.String())
	}

	t.amount = amount

	return nil
}

// IsFromMonth reports whether the date starts with a YYYY-MM prefix.
func (t *Transaction) IsFromMonth(month string) bool {
	return strings.HasPrefix(t.date, month)
}

func (t *Transaction) IsExpensive() bool {
	return t.amount.GreaterThan(expensiveThreshold)
}

// Display renders a one record summary. Income and budget records add an
// indented description line when a description is present.
func (t *Transaction) Display() string {
	var b strings.Builder

	switch t.kind {
	case KindExpense:
		fmt.Fprintf(&b, "[%s] %s | %s | %s | %s", t.Type(), t.date, util.FormatPLN(t.amount), t.category.Label(), t.priority)
		if t.description != "" {
			fmt.Fprintf(&b, " | %s", t.description)
		}
	case KindIncome:
		fmt.Fprintf(&b, "[%s] %s | +%s | Source: %s", t.Type(), t.date, util.FormatPLN(t.amount), t.source)
		if t.description != "" {
			fmt.Fprintf(&b, "\n  ↳ %s", t.description)
		}
	case KindBudget:
		fmt.Fprintf(&b, "[%s] %s | %s | Period: %s | %s", t.Type(), t.date, util.FormatPLN(t.amount), t.period, t.category.Label())
		if t.description != "" {
			fmt.Fprintf(&b, "\n  ↳ %s", t.description)
		}
	default:
		fmt.Fprintf(&b, "[%s] %s | %s | %s", t.Type(), t.date, util.FormatPLN(t.amount), t.description)
	}

	return b.String()
}

func (t *Transaction) String() string {
	return fmt.Sprintf("%s: %s on %s", t.Type(), util.FormatPLN(t.amount), t.date)
}

// Equal compares every field, used to check CSV round trips.
func (t *Transaction) Equal(other *Transaction) bool {
	if t == nil || other == nil {
		return t == other
	}

	return t.kind == other.kind &&
		t.date == other.date &&
		t.amount.Equal(other.amount) &&
		t.description == other.description &&
		t.category == other.category &&
		t.priority == other.priority &&
		t.source == other.source &&
		t.period == other.period
}
