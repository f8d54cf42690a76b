package transaction

import (
	"strings"

	"github.com/GustavoCaso/expenseledger/internal/errs"
)

// Priority orders expenses by urgency. Only declaration order is meaningful;
// the zero value is not a valid priority.
type Priority uint8

const (
	Low Priority = iota + 1
	Medium
	High
	Urgent
)

var priorityNames = map[Priority]string{
	Low:    "LOW",
	Medium: "MEDIUM",
	High:   "HIGH",
	Urgent: "URGENT",
}

// Priorities returns every priority in declaration order.
func Priorities() []Priority {
	return []Priority{Low, Medium, High, Urgent}
}

func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParsePriority resolves an exact symbolic name such as HIGH.
func ParsePriority(name string) (Priority, error) {
	for _, p := range Priorities() {
		if priorityNames[p] == name {
			return p, nil
		}
	}
	return 0, errs.InvalidData("unknown priority", "priority", name)
}

// ParsePriorityFold is ParsePriority ignoring case and surrounding space.
func ParsePriorityFold(name string) (Priority, error) {
	return ParsePriority(strings.ToUpper(strings.TrimSpace(name)))
}
