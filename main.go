package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/cli/add"
	"github.com/GustavoCaso/expenseledger/internal/cli/category"
	"github.com/GustavoCaso/expenseledger/internal/cli/clear"
	"github.com/GustavoCaso/expenseledger/internal/cli/delete"
	exportCmd "github.com/GustavoCaso/expenseledger/internal/cli/export"
	"github.com/GustavoCaso/expenseledger/internal/cli/find"
	importCmd "github.com/GustavoCaso/expenseledger/internal/cli/import"
	"github.com/GustavoCaso/expenseledger/internal/cli/list"
	"github.com/GustavoCaso/expenseledger/internal/cli/presets"
	"github.com/GustavoCaso/expenseledger/internal/cli/stats"
	"github.com/GustavoCaso/expenseledger/internal/config"
	"github.com/GustavoCaso/expenseledger/internal/logger"
)

var configPath string
var discardSkipped bool

var subcommands = map[string]cli.Command{
	"add":      add.NewCommand(),
	"list":     list.NewCommand(),
	"delete":   delete.NewCommand(),
	"clear":    clear.NewCommand(),
	"find":     find.NewCommand(),
	"stats":    stats.NewCommand(),
	"category": category.NewCommand(),
	"import":   importCmd.NewCommand(),
	"export":   exportCmd.NewCommand(),
	"presets":  presets.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "expenseledger.toml", "Configuration file")
		fset.BoolVar(&discardSkipped, "discard-skipped", false, "Rewrite the ledger file even if some of its rows could not be loaded")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if !ok {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "unsupported command %s.\nUse 'help' command to print information about supported commands\n", commandName)
		os.Exit(1)
	}

	// ExitOnError flag sets never return a parse error.
	_ = subcommandsFlagSets[commandName].Parse(os.Args[2:])

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	appLogger := logger.New(conf.Logger)

	env, err := cli.Setup(conf, appLogger, os.Stdout)
	if err != nil {
		appLogger.Fatal("Unable to open the ledger", "error", err.Error())
	}
	env.DiscardSkipped = discardSkipped

	if err = command.Run(env); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}

	if err = env.Finish(); err != nil {
		appLogger.Fatal("Unable to save the ledger", "error", err.Error())
	}
}

func printHelp() {
	printUsage()

	names := make([]string, 0, len(subcommands))
	for c := range subcommands {
		names = append(names, c)
	}
	sort.Strings(names)

	for _, c := range names {
		fmt.Printf("subcommand <%s>: %s\n", c, subcommands[c].Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: expenseledger <subcommand> [flags]\n\n")
}
