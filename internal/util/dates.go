package util

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// ParseDate parses a ledger date in YYYY-MM-DD form.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", date)
	}
	return t, nil
}

// IsMonthPrefix reports whether month is a YYYY-MM prefix.
func IsMonthPrefix(month string) bool {
	_, err := time.Parse(MonthLayout, month)
	return err == nil
}

// MonthOf returns the YYYY-MM prefix of a ledger date.
func MonthOf(date string) string {
	if len(date) < len(MonthLayout) {
		return date
	}
	return date[:len(MonthLayout)]
}

// PreviousMonth returns the YYYY-MM prefix of the month before now.
func PreviousMonth(now time.Time) string {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.AddDate(0, -1, 0).Format(MonthLayout)
}
