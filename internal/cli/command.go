package cli

import (
	"flag"
	"io"

	"github.com/GustavoCaso/expenseledger/internal/category"
	importutil "github.com/GustavoCaso/expenseledger/internal/import"
	"github.com/GustavoCaso/expenseledger/internal/ledger"
	"github.com/GustavoCaso/expenseledger/internal/logger"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(env *Env) error
}

// Env is what a command runs against. Commands that mutate the ledger call
// MarkChanged so the ledger file is written back.
type Env struct {
	Manager *ledger.Manager
	Matcher *category.Matcher
	Logger  *logger.Logger
	Out     io.Writer
	// DiscardSkipped allows Finish to rewrite a ledger file whose rows were
	// not all loaded, dropping those rows.
	DiscardSkipped bool

	file       string
	persistent bool
	changed    bool
	skipped    []importutil.RowError
}

func NewEnv(manager *ledger.Manager, matcher *category.Matcher, log *logger.Logger, out io.Writer) *Env {
	if log == nil {
		log = logger.Discard()
	}

	return &Env{
		Manager: manager,
		Matcher: matcher,
		Logger:  log,
		Out:     out,
	}
}

func (e *Env) MarkChanged() {
	e.changed = true
}

func (e *Env) Changed() bool {
	return e.changed
}

// Skipped returns the ledger file rows that could not be loaded.
func (e *Env) Skipped() []importutil.RowError {
	return e.skipped
}
