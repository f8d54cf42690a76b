package add

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/transaction"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

type addCommand struct {
	date        string
	amount      string
	description string
	category    string
	priority    string
	now         func() time.Time
}

func NewCommand() cli.Command {
	return &addCommand{now: time.Now}
}

func (c *addCommand) Description() string {
	return "Adds a new expense to the ledger"
}

func (c *addCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.date, "date", "", "expense date in YYYY-MM-DD format (defaults to today)")
	fs.StringVar(&c.amount, "amount", "", "expense amount in PLN")
	fs.StringVar(&c.description, "d", "", "expense description")
	fs.StringVar(&c.category, "category", "", "expense category; guessed from the description when empty")
	fs.StringVar(&c.priority, "priority", transaction.Medium.String(), "expense priority: LOW, MEDIUM, HIGH or URGENT")
}

func (c *addCommand) Run(env *cli.Env) error {
	if c.amount == "" {
		return errors.New("you must provide an amount")
	}

	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return errs.InvalidData("Amount must be a number", "amount", c.amount)
	}

	date := c.date
	if date == "" {
		date = c.now().Format(util.DateLayout)
	}

	var cat category.Category
	if c.category == "" {
		cat = env.Matcher.MatchOrOther(c.description)
	} else {
		cat, err = category.ParseFold(c.category)
		if err != nil {
			return err
		}
	}

	priority, err := transaction.ParsePriorityFold(c.priority)
	if err != nil {
		return err
	}

	expense, err := env.Manager.CreateExpense(date, amount, c.description, cat, priority)
	if err != nil {
		return fmt.Errorf("unable to add expense: %w", err)
	}
	env.MarkChanged()

	fmt.Fprintf(env.Out, "Added: %s\n", expense.Display())

	return nil
}
