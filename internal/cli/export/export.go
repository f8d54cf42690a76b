package exportcmd

import (
	"errors"
	"flag"
	"fmt"

	"github.com/GustavoCaso/expenseledger/internal/cli"
)

type exportCommand struct {
	file string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Writes the ledger to a CSV file"
}

func (c *exportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.file, "f", "", "destination file")
}

func (c *exportCommand) Run(env *cli.Env) error {
	if c.file == "" {
		return errors.New("you must provide a destination file")
	}

	n, err := env.Manager.SaveToFile(c.file)
	if err != nil {
		return fmt.Errorf("unable to export expenses: %w", err)
	}

	fmt.Fprintf(env.Out, "Exported %d expenses to %s\n", n, c.file)

	return nil
}
