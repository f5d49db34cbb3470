package lint

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/estreelint/sort-imports/pkg/diag"
	"github.com/estreelint/sort-imports/pkg/errors"
	"github.com/estreelint/sort-imports/pkg/estree"
	"github.com/estreelint/sort-imports/pkg/utils"
)

// Runner applies one rule to unit files and funnels findings into a shared
// sink. Each unit gets its own Context, so many units may be linted in
// parallel against the same Runner.
type Runner struct {
	rule    Rule
	sink    diag.Sink
	workers int
	logger  *slog.Logger
}

// NewRunner wires a runner. workers caps the number of concurrently linted
// units; values below 1 mean serial linting.
func NewRunner(rule Rule, sink diag.Sink, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{rule: rule, sink: sink, workers: workers, logger: logger}
}

// LintProgram runs the rule over one already-decoded program.
func (r *Runner) LintProgram(file string, prog *estree.Program) {
	ctx := NewContext(file, r.rule.Code(), r.sink)
	r.rule.Check(ctx, prog)
}

// LintFile decodes and lints one unit file.
func (r *Runner) LintFile(path string) error {
	prog, err := estree.DecodeFile(path)
	if err != nil {
		return err
	}
	r.logger.Debug("linting unit", "path", path, "statements", len(prog.Body))
	r.LintProgram(path, prog)
	return nil
}

// LintFiles lints many unit files over a fixed worker pool. Every file is
// attempted; decode failures do not stop the run and are reported together
// at the end.
func (r *Runner) LintFiles(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	workers := r.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	failures := make(chan error, len(paths))
	var wg sync.WaitGroup

	for id := 0; id < workers; id++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger := r.logger.With("workerID", id)
			for path := range jobs {
				logger.Debug("worker picked up unit", "path", path)
				if err := r.LintFile(path); err != nil {
					logger.Error("unit failed", "path", path, "error", err)
					failures <- err
					continue
				}
				logger.Debug("unit linted", "path", path)
			}
		}(id)
	}

	for _, path := range paths {
		jobs <- path
	}
	close(jobs)
	wg.Wait()
	close(failures)

	failed := 0
	for range failures {
		failed++
	}
	if failed > 0 {
		return fmt.Errorf(errors.ErrMsgUnitsFailedToLint, failed)
	}
	return nil
}

// LintPath lints a unit file, or every unit file under a directory.
func (r *Runner) LintPath(path string) error {
	isDir, err := utils.IsDirectory(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCheckPath, err)
	}

	if !isDir {
		return r.LintFile(path)
	}

	unitFiles, err := utils.FindUnitFiles(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToFindUnits, err)
	}
	if len(unitFiles) == 0 {
		r.logger.Info("no unit files found", "path", path)
		return nil
	}

	r.logger.Debug("discovered unit files", "count", len(unitFiles), "path", path)
	return r.LintFiles(unitFiles)
}
