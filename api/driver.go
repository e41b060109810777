// Package api drives translation runs: it resolves the input units, feeds
// each one through a single code generation session and owns the output
// file.
package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sarchlab/hackvm/config"
	"github.com/sarchlab/hackvm/verify"
	"github.com/sarchlab/hackvm/vm"
)

// Translator is the code generation session a driver feeds.
// *codegen.Engine implements it.
type Translator interface {
	// WriteInit writes the bootstrap. It is called at most once, first.
	WriteInit() error

	// SetUnit announces the unit whose commands follow.
	SetUnit(name string)

	// Translate writes the code for one command.
	Translate(cmd vm.Command) error

	// Flush pushes buffered output to the writer.
	Flush() error
}

// TranslatorFactory creates the translator for an output writer.
type TranslatorFactory func(w io.Writer) Translator

// Driver runs translations.
type Driver interface {
	// Run translates the file or directory at input and returns a summary.
	Run(input string) (Result, error)

	// TranslateUnits feeds units through t in order, writing the bootstrap
	// first when enabled. It stops at the first fault.
	TranslateUnits(units []Unit, t Translator) ([]UnitStat, error)
}

// UnitStat counts what was translated from one unit.
type UnitStat struct {
	Name     string
	Commands int
}

// Result summarises a run.
type Result struct {
	Output string
	Units  []UnitStat
	Issues []verify.Issue
}

type driverImpl struct {
	cfg     config.Config
	factory TranslatorFactory
}

// Run translates input into one assembly file. The output is flushed and
// closed on every path, including translation faults.
func (d *driverImpl) Run(input string) (res Result, err error) {
	inputs, err := ResolveInputs(input)
	if err != nil {
		return res, err
	}

	res.Output = inputs.Output
	if d.cfg.Output != "" {
		res.Output = d.cfg.Output
	}

	res.Units, err = d.writeOutput(res.Output, inputs.Units)
	if err != nil {
		return res, err
	}

	slog.Info("Translated",
		"Output", res.Output,
		"Units", len(res.Units),
	)

	if d.cfg.Lint {
		res.Issues, err = lintFile(res.Output)
	}

	return res, err
}

func (d *driverImpl) writeOutput(path string, units []Unit) (stats []UnitStat, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	t := d.factory(f)

	defer func() {
		flushErr := t.Flush()
		syncErr := f.Sync()
		closeErr := f.Close()
		err = errors.Join(err, flushErr, syncErr, closeErr)
	}()

	return d.TranslateUnits(units, t)
}

// TranslateUnits runs the orchestration loop over units.
func (d *driverImpl) TranslateUnits(units []Unit, t Translator) ([]UnitStat, error) {
	if d.cfg.Bootstrap {
		if err := t.WriteInit(); err != nil {
			return nil, fmt.Errorf("failed to write bootstrap: %w", err)
		}
	}

	stats := make([]UnitStat, 0, len(units))

	for _, unit := range units {
		n, err := translateUnit(unit, t)
		stats = append(stats, UnitStat{Name: unit.Name, Commands: n})
		if err != nil {
			return stats, err
		}

		slog.Debug("Unit translated",
			"Unit", unit.Name,
			"Commands", n,
		)
	}

	return stats, nil
}

func translateUnit(unit Unit, t Translator) (n int, err error) {
	src, err := unit.open()
	if err != nil {
		return 0, fmt.Errorf("failed to open unit %s: %w", unit.Name, err)
	}
	defer src.Close()

	t.SetUnit(unit.Name)

	r := vm.NewReader(src, unit.Name)
	for {
		cmd, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}

		if err != nil {
			return n, err
		}

		if err := t.Translate(cmd); err != nil {
			return n, fmt.Errorf("%s:%d: %s: %w", unit.Name, r.Line(), cmd, err)
		}

		n++
	}
}

func lintFile(path string) ([]verify.Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	issues, err := verify.LintAssembly(f)
	if err != nil {
		return nil, err
	}

	for _, issue := range issues {
		slog.Warn("Lint",
			"Type", issue.Type,
			"Symbol", issue.Symbol,
			"Line", issue.Line,
			"Message", issue.Message,
		)
	}

	return issues, nil
}
