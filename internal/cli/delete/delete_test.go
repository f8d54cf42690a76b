package delete

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/GustavoCaso/expenseledger/internal/cli"
	"github.com/GustavoCaso/expenseledger/internal/errs"
	"github.com/GustavoCaso/expenseledger/internal/ledger"
	"github.com/GustavoCaso/expenseledger/internal/storage/memory"
	"github.com/GustavoCaso/expenseledger/internal/testutil"
	"github.com/GustavoCaso/expenseledger/internal/util"
)

func setupEnv(t *testing.T) (*cli.Env, *bytes.Buffer) {
	t.Helper()
	util.DisableColors()

	logger := testutil.TestLogger(t)
	manager, err := ledger.New(memory.New(), logger)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	manager.AddExpenses(testutil.ScenarioExpenses(t))

	out := &bytes.Buffer{}
	return cli.NewEnv(manager, nil, logger, out), out
}

func run(t *testing.T, env *cli.Env, args ...string) error {
	t.Helper()

	cmd := NewCommand()
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	return cmd.Run(env)
}

func TestRun(t *testing.T) {
	env, out := setupEnv(t)

	if err := run(t, env, "-i", "0"); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := "Deleted: [EXPENSE] 2025-01-20 | 100.00 PLN | 🍔 Jedzenie | LOW | Groceries\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	if !env.Changed() {
		t.Error("Expected the ledger to be marked as changed")
	}

	remaining, _ := env.Manager.ExpenseByIndex(0)
	if remaining.Description() != "Gas" {
		t.Errorf("Expected Gas to shift to index 0, got %v", remaining.Description())
	}
}

func TestRunErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		kind error
	}{
		{name: "missing index", args: nil},
		{name: "out of range", args: []string{"-i", "5"}, kind: errs.ErrNotFound},
		{name: "negative", args: []string{"-i", "-3"}, kind: errs.ErrInvalidData},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env, _ := setupEnv(t)

			err := run(t, env, tc.args...)
			if err == nil {
				t.Fatal("Run() expected error, got nil")
			}
			if tc.kind != nil && !errors.Is(err, tc.kind) {
				t.Errorf("Run() error = %v, want %v", err, tc.kind)
			}
			if env.Changed() || env.Manager.ExpenseCount() != 2 {
				t.Error("Expected the ledger to stay untouched")
			}
		})
	}
}
