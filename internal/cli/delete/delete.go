package delete

import (
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/expenseledger/internal/cli"
)

type deleteCommand struct {
	index int
}

func NewCommand() cli.Command {
	return &deleteCommand{}
}

func (c *deleteCommand) Description() string {
	return "Deletes the expense at the given index; later expenses shift down by one"
}

func (c *deleteCommand) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.index, "i", -1, "index of the expense to delete, as shown by list")
}

func (c *deleteCommand) Run(env *cli.Env) error {
	if c.index == -1 {
		return errors.New("you must provide the index of the expense to delete")
	}

	expense, err := env.Manager.RemoveExpense(c.index)
	if err != nil {
		return err
	}
	env.MarkChanged()

	fmt.Fprintf(env.Out, "Deleted: %s\n", expense.Display())

	return nil
}
