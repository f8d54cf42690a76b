package list

import (
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/filter"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

type listCommand struct {
	params filter.Params
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "Lists expenses with their index, optionally filtered and sorted"
}

func (c *listCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.params.Description, "d", "", "only expenses whose description contains this text")
	fs.StringVar(&c.params.AmountMin, "min", "", "minimum amount, inclusive")
	fs.StringVar(&c.params.AmountMax, "max", "", "maximum amount, inclusive")
	fs.StringVar(&c.params.DateFrom, "from", "", "first date, YYYY-MM-DD")
	fs.StringVar(&c.params.DateTo, "to", "", "last date, YYYY-MM-DD")
	fs.StringVar(&c.params.Sort, "sort", filter.DefaultSortOptions().String(), "sort as field:direction; fields are index, date and amount")
}

func (c *listCommand) Run(env *cli.Env) error {
	expenseFilter, sortOptions, err := filter.Parse(c.params)
	if err != nil {
		return err
	}

	if env.Manager.ExpenseCount() == 0 {
		fmt.Fprintln(env.Out, "No expenses recorded")
		return nil
	}

	entries := filter.Apply(env.Manager.Expenses(), expenseFilter, sortOptions)
	if len(entries) == 0 {
		fmt.Fprintln(env.Out, "No expenses match the filters")
		return nil
	}

	total := decimal.Zero
	for _, entry := range entries {
		fmt.Fprintf(env.Out, "%3d. %s\n", entry.Index, entry.Expense.Display())
		total = total.Add(entry.Expense.Amount())
	}

	fmt.Fprintf(env.Out, "\n%d expenses, total %s\n",
		len(entries),
		util.ColorOutput(util.FormatPLN(total), "bold"),
	)

	return nil
}
