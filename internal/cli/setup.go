package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/GustavoCaso/expenseledger/internal/category"
	"github.com/GustavoCaso/expenseledger/internal/config"
	"github.com/GustavoCaso/expenseledger/internal/ledger"
	"github.com/GustavoCaso/expenseledger/internal/logger"
	"github.com/GustavoCaso/expenseledger/internal/storage"
	"github.com/GustavoCaso/expenseledger/internal/storage/fixture"
	"github.com/GustavoCaso/expenseledger/internal/storage/memory"
)

// NewRepository builds the repository selected by the configuration.
func NewRepository(conf *config.Config, log *logger.Logger) (storage.Repository, error) {
	switch conf.Backend {
	case config.BackendFixture:
		return fixture.New(), nil
	case config.BackendMemory:
		opts := []memory.Option{
			memory.WithDuplicateCheck(conf.RejectDuplicates),
			memory.WithLogger(log),
		}

		max, ok, err := conf.MaxAmountValue()
		if err != nil {
			return nil, err
		}
		if ok {
			opts = append(opts, memory.WithMaxAmount(max))
		}

		return memory.New(opts...), nil
	default:
		return nil, fmt.Errorf("unsupported backend %q", conf.Backend)
	}
}

// Setup builds the command environment. With the memory backend the ledger
// file is loaded first; a missing file starts an empty ledger.
func Setup(conf *config.Config, log *logger.Logger, out io.Writer) (*Env, error) {
	repository, err := NewRepository(conf, log)
	if err != nil {
		return nil, err
	}

	manager, err := ledger.New(repository, log)
	if err != nil {
		return nil, err
	}

	matcher, err := category.NewMatcher(conf.Categories)
	if err != nil {
		return nil, fmt.Errorf("unable to build category matcher: %w", err)
	}

	env := NewEnv(manager, matcher, log, out)
	env.file = conf.File
	env.persistent = conf.Backend == config.BackendMemory

	if !env.persistent {
		return env, nil
	}

	result, err := manager.LoadFromFile(conf.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("ledger file not found, starting empty", "file", conf.File)
			return env, nil
		}
		return nil, fmt.Errorf("unable to load ledger %s: %w", conf.File, err)
	}

	if result.Skipped > 0 {
		env.skipped = result.Errors
		log.Warn("ledger loaded with skipped rows", "file", conf.File, "skipped", result.Skipped)
	}

	return env, nil
}

// ErrSkippedRows is returned by Finish when writing the ledger back would
// drop rows of the file that were never loaded.
var ErrSkippedRows = errors.New("ledger file has rows that were not loaded")

// Finish writes the ledger back when a command changed it. It refuses to
// overwrite a file with skipped rows unless DiscardSkipped is set.
func (e *Env) Finish() error {
	if !e.persistent || !e.changed {
		return nil
	}

	if len(e.skipped) > 0 && !e.DiscardSkipped {
		lines := make([]string, len(e.skipped))
		for i, rowErr := range e.skipped {
			lines[i] = strconv.Itoa(rowErr.Line)
		}
		return fmt.Errorf("refusing to overwrite %s, lines %s would be lost (fix them or rerun with -discard-skipped): %w",
			e.file, strings.Join(lines, ", "), ErrSkippedRows)
	}

	n, err := e.Manager.SaveToFile(e.file)
	if err != nil {
		return fmt.Errorf("unable to save ledger %s: %w", e.file, err)
	}

	e.Logger.Debug("ledger saved", "file", e.file, "expenses", n)

	return nil
}
