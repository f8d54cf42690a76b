package clear

import (
	"flag"
	"fmt"

	"github.com/GustavoCaso/expenseledger/internal/cli"
)

type clearCommand struct {
}

func NewCommand() cli.Command {
	return clearCommand{}
}

func (c clearCommand) Description() string {
	return "Removes every expense from the ledger"
}

func (c clearCommand) SetFlags(*flag.FlagSet) {
}

func (c clearCommand) Run(env *cli.Env) error {
	count := env.Manager.ExpenseCount()
	if count == 0 {
		fmt.Fprintln(env.Out, "The ledger is already empty")
		return nil
	}

	env.Manager.ClearAll()
	env.MarkChanged()

	fmt.Fprintf(env.Out, "Removed %d expenses\n", count)

	return nil
}
