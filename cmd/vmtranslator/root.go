package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/hackvm/api"
	"github.com/sarchlab/hackvm/config"
	"github.com/sarchlab/hackvm/verify"
)

// Exit codes.
const (
	exitOK = iota
	exitUsage
	exitNotFound
	exitTranslate
	exitLint
)

type options struct {
	configPath  string
	output      string
	entry       string
	noBootstrap bool
	lint        bool
	strict      bool
	logLevel    string
	logFormat   string
	logFile     string
}

// exitError carries the process exit code of a failed run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vmtranslator <file.vm | directory>",
		Short: "Translate VM code into Hack assembly",
		Long: `vmtranslator translates stack-machine VM code into assembly for the
Hack computer.

Given a .vm file it writes the .asm file next to it. Given a directory it
translates every .vm file in it, in name order, into <dir>/<dir>.asm. The
output starts with bootstrap code that sets SP to 256 and calls Sys.init
unless --no-bootstrap is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default derived from the input)")
	flags.StringVar(&opts.entry, "entry", "", "function called by the bootstrap (default Sys.init)")
	flags.BoolVar(&opts.noBootstrap, "no-bootstrap", false, "do not emit the bootstrap code")
	flags.BoolVar(&opts.lint, "lint", false, "check the output for duplicate labels and undefined jump targets")
	flags.BoolVar(&opts.strict, "strict", false, "fail when lint finds issues (implies --lint)")
	flags.StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "text or json")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")

	return cmd
}

func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		var err error
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("entry") {
		cfg.EntryPoint = opts.entry
	}
	if opts.noBootstrap {
		cfg.Bootstrap = false
	}
	if opts.lint || opts.strict {
		cfg.Lint = true
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}

	return cfg, cfg.Validate()
}

func setupLogging(cfg config.LogConfig) error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stderr
	if cfg.File != "" {
		f, err := os.Create(cfg.File)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		atexit.Register(func() { f.Close() })
		w = f
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func run(cmd *cobra.Command, opts *options, input string, stdout io.Writer) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	if err := setupLogging(cfg.Log); err != nil {
		return &exitError{code: exitUsage, err: err}
	}

	res, err := api.DriverBuilder{}.WithConfig(cfg).Build().Run(input)
	if err != nil {
		code := exitTranslate
		if errors.Is(err, api.ErrInputNotFound) ||
			errors.Is(err, api.ErrNotVMFile) ||
			errors.Is(err, api.ErrNoInputs) {
			code = exitNotFound
		}
		return &exitError{code: code, err: err}
	}

	if cfg.Lint {
		verify.GenerateReport(res.Output, res.Issues).WriteReport(stdout)
		if opts.strict && len(res.Issues) > 0 {
			return &exitError{
				code: exitLint,
				err:  fmt.Errorf("lint found %d issues in %s", len(res.Issues), res.Output),
			}
		}
	}

	fmt.Fprintf(stdout, "Translated %d unit(s) into %s\n", len(res.Units), res.Output)

	return nil
}

func execute() int {
	return executeArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func executeArgs(args []string, stdout, stderr io.Writer) int {
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "vmtranslator:", err)

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	return exitUsage
}
