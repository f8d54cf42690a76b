package category

import (
	"strings"

	"github.com/GustavoCaso/expenseledger/internal/errs"
)

// Category is the closed set of expense categories. The zero value is not a
// valid category.
type Category uint8

const (
	Food Category = iota + 1
	Transport
	Entertainment
	Housing
	Healthcare
	Other
)

type metadata struct {
	name        string
	icon        string
	displayName string
}

var categories = map[Category]metadata{
	Food:          {name: "FOOD", icon: "🍔", displayName: "Jedzenie"},
	Transport:     {name: "TRANSPORT", icon: "🚗", displayName: "Transport"},
	Entertainment: {name: "ENTERTAINMENT", icon: "🎬", displayName: "Rozrywka"},
	Housing:       {name: "HOUSING", icon: "🏠", displayName: "Mieszkanie"},
	Healthcare:    {name: "HEALTHCARE", icon: "💊", displayName: "Zdrowie"},
	Other:         {name: "OTHER", icon: "📦", displayName: "Inne"},
}

// All returns every category in declaration order.
func All() []Category {
	return []Category{Food, Transport, Entertainment, Housing, Healthcare, Other}
}

func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// String returns the symbolic name, e.g. FOOD.
func (c Category) String() string {
	if m, ok := categories[c]; ok {
		return m.name
	}
	return "UNKNOWN"
}

func (c Category) Icon() string {
	return categories[c].icon
}

func (c Category) DisplayName() string {
	return categories[c].displayName
}

// Label returns the icon followed by the display name, e.g. "🍔 Jedzenie".
func (c Category) Label() string {
	m, ok := categories[c]
	if !ok {
		return "UNKNOWN"
	}
	return m.icon + " " + m.displayName
}

// Parse resolves a symbolic name. Matching is exact, as written by the CSV
// export.
func Parse(name string) (Category, error) {
	for _, c := range All() {
		if categories[c].name == name {
			return c, nil
		}
	}
	return 0, errs.InvalidData("unknown category", "category", name)
}

// ParseFold is Parse with case and surrounding space ignored, for user input.
func ParseFold(name string) (Category, error) {
	return Parse(strings.ToUpper(strings.TrimSpace(name)))
}
