package presets

import (
	"flag"
	"fmt"

	"github.com/GustavoCaso/expenseledger/internal/cli"
)

type presetsCommand struct {
}

func NewCommand() cli.Command {
	return presetsCommand{}
}

func (c presetsCommand) Description() string {
	return "Adds a set of common example expenses"
}

func (c presetsCommand) SetFlags(*flag.FlagSet) {
}

func (c presetsCommand) Run(env *cli.Env) error {
	result := env.Manager.AddPresetExpenses()
	if result.Saved > 0 {
		env.MarkChanged()
	}

	fmt.Fprintf(env.Out, "Added %d of %d preset expenses\n", result.Saved, result.Attempted)
	for _, reason := range result.Reasons() {
		fmt.Fprintf(env.Out, "  %s\n", reason)
	}

	return nil
}
