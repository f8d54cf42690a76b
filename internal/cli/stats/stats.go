package stats

import (
	"flag"
	"fmt"

	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/report"
)

type statsCommand struct {
}

func NewCommand() cli.Command {
	return statsCommand{}
}

func (c statsCommand) Description() string {
	return "Displays totals and statistics for the whole ledger"
}

func (c statsCommand) SetFlags(*flag.FlagSet) {
}

func (c statsCommand) Run(env *cli.Env) error {
	err := report.Render(env.Out, report.Generate(env.Manager))
	if err != nil {
		return fmt.Errorf("unable to render statistics: %w", err)
	}

	return nil
}
