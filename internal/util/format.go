package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	decimalValue  = 100
	thousandValue = 1000
)

// FormatMoney renders value rounded to cents with the given separators.
func FormatMoney(value decimal.Decimal, thousand, decimal string) string {
	var result string
	var isNegative bool

	cents := value.Shift(2).Round(0).IntPart()

	if cents < 0 {
		cents *= -1
		isNegative = true
	}

	// apply the decimal separator
	result = fmt.Sprintf("%s%02d%s", decimal, cents%decimalValue, result)
	cents /= decimalValue

	// for each 3 dígits put a dot "."
	for cents >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousand, cents%thousandValue, result)
		cents /= thousandValue
	}

	if isNegative {
		return fmt.Sprintf("-%d%s", cents, result)
	}

	return fmt.Sprintf("%d%s", cents, result)
}

// FormatPLN is the format used by every display helper.
func FormatPLN(value decimal.Decimal) string {
	return FormatMoney(value, "", ".") + " PLN"
}
