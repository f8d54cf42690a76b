package importcmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/expenseledger/internal/cli"
)

type importCommand struct {
	file string
}

func NewCommand() cli.Command {
	return &importCommand{}
}

func (c *importCommand) Description() string {
	return "Imports expenses from a CSV file into the ledger"
}

func (c *importCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "file to import")
}

func (c *importCommand) Run(env *cli.Env) error {
	if c.file == "" {
		return errors.New("you must provide a file to import")
	}

	info, err := env.Manager.LoadFromFile(c.file)
	if err != nil {
		return fmt.Errorf("unable to import expenses: %w", err)
	}

	if info.Loaded > 0 {
		env.MarkChanged()
		fmt.Fprintf(env.Out, "Total expenses imported: %d\n", info.Loaded)
	} else {
		fmt.Fprintln(env.Out, "No expenses were imported")
	}

	if info.Skipped > 0 {
		fmt.Fprintf(env.Out, "Skipped %d rows:\n", info.Skipped)
		for _, rowErr := range info.Errors {
			fmt.Fprintf(env.Out, "  %s\n", rowErr.Error())
		}
	}

	return nil
}
