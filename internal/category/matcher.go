package category

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/GustavoCaso/expenseledger/internal/config"
)

type matcher struct {
	re       *regexp.Regexp
	category Category
}

// Matcher guesses a category from an expense description.
type Matcher struct {
	matchers []matcher
}

func NewMatcher(rules []config.Category) (*Matcher, error) {
	matchers := make([]matcher, 0, len(rules))

	for _, rule := range rules {
		c, err := ParseFold(rule.Name)
		if err != nil {
			return nil, err
		}

		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for category %s: %w", c, err)
		}

		matchers = append(matchers, matcher{
			re:       re,
			category: c,
		})
	}

	return &Matcher{
		matchers: matchers,
	}, nil
}

// Match returns the first category whose pattern matches the lower cased
// description.
func (m *Matcher) Match(description string) (Category, bool) {
	if m == nil {
		return 0, false
	}

	s := strings.ToLower(description)
	for _, matcher := range m.matchers {
		if matcher.re.MatchString(s) {
			return matcher.category, true
		}
	}

	return 0, false
}

// MatchOrOther falls back to Other when nothing matches.
func (m *Matcher) MatchOrOther(description string) Category {
	if c, ok := m.Match(description); ok {
		return c
	}
	return Other
}
