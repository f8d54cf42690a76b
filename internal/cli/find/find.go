package find

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

type findCommand struct {
	category string
	priority string
	above    string
	month    string
	now      func() time.Time
}

// lastMonth selects the month before the current one.
const lastMonth = "last"

func NewCommand() cli.Command {
	return &findCommand{now: time.Now}
}

func (c *findCommand) Description() string {
	return "Finds expenses by category, priority, minimum amount or month"
}

func (c *findCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.category, "category", "", "show expenses of this category")
	fs.StringVar(&c.priority, "priority", "", "show expenses with this priority")
	fs.StringVar(&c.above, "above", "", "show expenses with an amount greater than or equal to this value")
	fs.StringVar(&c.month, "month", "", "show expenses of this YYYY-MM month grouped by day; \"last\" selects the previous month")
}

func (c *findCommand) Run(env *cli.Env) error {
	criteria := 0
	for _, value := range []string{c.category, c.priority, c.above, c.month} {
		if value != "" {
			criteria++
		}
	}
	if criteria != 1 {
		return errors.New("you must provide exactly one of -category, -priority, -above or -month")
	}

	var expenses []*transaction.Transaction
	var err error

	switch {
	case c.category != "":
		var cat category.Category
		if cat, err = category.ParseFold(c.category); err != nil {
			return err
		}
		expenses, err = env.Manager.FindByCategory(cat)
	case c.priority != "":
		var priority transaction.Priority
		if priority, err = transaction.ParsePriorityFold(c.priority); err != nil {
			return err
		}
		expenses, err = env.Manager.FindByPriority(priority)
	case c.above != "":
		threshold, parseErr := decimal.NewFromString(c.above)
		if parseErr != nil {
			return errs.InvalidData("Threshold must be a number", "above", c.above)
		}
		expenses, err = env.Manager.FindExpensesAbove(threshold)
	default:
		return c.byMonth(env)
	}

	if err != nil {
		return err
	}

	printExpenses(env.Out, expenses)

	return nil
}

func (c *findCommand) byMonth(env *cli.Env) error {
	month := c.month
	if month == lastMonth {
		month = util.PreviousMonth(c.now())
	}

	byDate, err := env.Manager.ExpensesByMonth(month)
	if err != nil {
		return err
	}

	if len(byDate) == 0 {
		fmt.Fprintln(env.Out, "No expenses found")
		return nil
	}

	total := decimal.Zero
	for _, date := range util.SortedKeys(byDate) {
		fmt.Fprintln(env.Out, util.ColorOutput(date, "bold"))
		for _, expense := range byDate[date] {
			fmt.Fprintf(env.Out, "  %s\n", expense.Display())
			total = total.Add(expense.Amount())
		}
	}

	fmt.Fprintf(env.Out, "\nTotal for %s: %s\n", month, util.FormatPLN(total))

	return nil
}

func printExpenses(out io.Writer, expenses []*transaction.Transaction) {
	if len(expenses) == 0 {
		fmt.Fprintln(out, "No expenses found")
		return
	}

	total := decimal.Zero
	for _, expense := range expenses {
		fmt.Fprintln(out, expense.Display())
		total = total.Add(expense.Amount())
	}

	fmt.Fprintf(out, "\n%d found, total %s\n", len(expenses), util.FormatPLN(total))
}
