package filter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

// Params holds the raw filter values as typed on the command line. Empty
// values are not set.
type Params struct {
	Description string
	AmountMin   string
	AmountMax   string
	DateFrom    string
	DateTo      string
	Sort        string
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errs.InvalidData("amount cannot be empty", field, s)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.InvalidData("invalid amount format", field, s)
	}

	return amount, nil
}

func parseDate(field, s string) (string, error) {
	if _, err := util.ParseDate(s); err != nil {
		return "", errs.InvalidData("invalid date, expected YYYY-MM-DD", field, s)
	}
	return s, nil
}

// parseSort parses a sort string like "date:desc" into SortOptions.
func parseSort(s string) (*SortOptions, error) {
	if s == "" {
		return nil, fmt.Errorf("sort string cannot be empty")
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid sort format, expected field:direction")
	}

	field := SortField(parts[0])
	direction := SortDirection(parts[1])

	if field != SortByIndex && field != SortByDate && field != SortByAmount {
		return nil, fmt.Errorf("invalid sort field: %s (must be index, date or amount)", field)
	}

	if direction != SortAsc && direction != SortDesc {
		return nil, fmt.Errorf("invalid sort direction: %s (must be asc or desc)", direction)
	}

	return &SortOptions{
		Field:     field,
		Direction: direction,
	}, nil
}

// Parse turns params into filter and sort options.
func Parse(params Params) (*ExpenseFilter, *SortOptions, error) {
	filter := &ExpenseFilter{}
	sort := DefaultSortOptions()

	if desc := params.Description; desc != "" {
		filter.Description = &desc
	}

	if params.AmountMin != "" {
		val, err := parseAmount("min", params.AmountMin)
		if err != nil {
			return nil, nil, err
		}
		filter.AmountMin = &val
	}

	if params.AmountMax != "" {
		val, err := parseAmount("max", params.AmountMax)
		if err != nil {
			return nil, nil, err
		}
		filter.AmountMax = &val
	}

	if params.DateFrom != "" {
		val, err := parseDate("from", params.DateFrom)
		if err != nil {
			return nil, nil, err
		}
		filter.DateFrom = &val
	}

	if params.DateTo != "" {
		val, err := parseDate("to", params.DateTo)
		if err != nil {
			return nil, nil, err
		}
		filter.DateTo = &val
	}

	if params.Sort != "" {
		parsed, err := parseSort(params.Sort)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid sort: %w", err)
		}
		sort = parsed
	}

	return filter, sort, nil
}
