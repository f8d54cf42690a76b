package clear

import (
	"bytes"
	"testing"

	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/ledger"
	"github.com/GustavoCaso/expenseledger/internal/storage/memory"
	"github.com/GustavoCaso/expenseledger/internal/testutil"
)

func TestRun(t *testing.T) {
	logger := testutil.TestLogger(t)
	manager, err := ledger.New(memory.New(), logger)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	manager.AddExpenses(testutil.ScenarioExpenses(t))

	var out bytes.Buffer
	env := cli.NewEnv(manager, nil, logger, &out)

	if err = NewCommand().Run(env); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if out.String() != "Removed 2 expenses\n" {
		t.Errorf("output = %q", out.String())
	}
	if manager.ExpenseCount() != 0 || !env.Changed() {
		t.Error("Expected an empty, changed ledger")
	}

	out.Reset()
	second := cli.NewEnv(manager, nil, logger, &out)
	if err = NewCommand().Run(second); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if out.String() != "The ledger is already empty\n" || second.Changed() {
		t.Errorf("Unexpected second run: %q, changed %v", out.String(), second.Changed())
	}
}
