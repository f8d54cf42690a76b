package category

import (
	"flag"
	"fmt"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

type categoryCommand struct {
	match string
}

func NewCommand() cli.Command {
	return &categoryCommand{}
}

func (c *categoryCommand) Description() string {
	return "Shows the expense categories with their totals, or the category guessed for a description"
}

func (c *categoryCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.match, "m", "", "print the category the configured patterns assign to this description")
}

func (c *categoryCommand) Run(env *cli.Env) error {
	if c.match != "" {
		guess, ok := env.Matcher.Match(c.match)
		if !ok {
			fmt.Fprintf(env.Out, "%q does not match any pattern, it would be stored as %s\n", c.match, category.Other.Label())
			return nil
		}

		fmt.Fprintf(env.Out, "%q -> %s (%s)\n", c.match, guess.Label(), guess)
		return nil
	}

	totals := env.Manager.CalculateTotalsByCategory()
	counts := env.Manager.ExpenseCountByCategory()

	for _, cat := range category.All() {
		line := fmt.Sprintf("%-15s %-16s %3d  %s", cat, cat.Label(), counts[cat], util.FormatPLN(totals[cat]))
		if counts[cat] == 0 {
			line = util.ColorOutput(line, "yellow")
		}
		fmt.Fprintln(env.Out, line)
	}

	return nil
}
