package cmd

import (
	"dis/ast"
	"dis/config"
	"dis/fixtures"
	"dis/internals"
	"dis/interpreter"
	"dis/semantics"
	"dis/stdlib"
	"errors"
	"flag"
	"fmt"
	"io/fs"
)

const ExitConfig = 78

func newFlagSet(name string) (*flag.FlagSet, *string) {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(stderr)
	configPath := fset.String("c", "", configFlag.Description)
	return fset, configPath
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadProgram reports the exit status to use when decoding fails.
func loadProgram(path string) (*ast.Program, int) {
	program, err := fixtures.Load(path)
	if err == nil {
		return program, ExitOK
	}
	fmt.Fprintln(stderr, "ERROR:", err)
	logger.Error("loading program failed", "file", path, "error", err)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ExitNoInput
	}
	return nil, ExitDataErr
}

func resolve(path string, program *ast.Program) (semantics.Locals, bool) {
	collector := internals.NewErrorCollector()
	locals := semantics.NewResolver(collector).Resolve(program.Statements)
	if !collector.HasErrors() {
		return locals, true
	}
	for _, err := range collector.Errors {
		fmt.Fprintf(stderr, "%s: %v\n", path, err)
	}
	logger.Error("resolution failed", "file", path, "diagnostics", len(collector.Errors))
	return nil, false
}

// Run resolves and interprets every file against one global scope, in the
// order given. The first failing file stops the session.
func Run(args []string) int {
	fset, configPath := newFlagSet("run")
	if err := fset.Parse(args); err != nil {
		return ExitUsage
	}
	files := fset.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "ERROR: provide at least one program document to run")
		return ExitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return ExitConfig
	}
	logger = cfg.Logger(stderr)

	natives, err := stdlib.Load(cfg.Natives...)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return ExitConfig
	}

	out, release, err := cfg.OpenOutput()
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return ExitConfig
	}
	defer release()
	if cfg.Output == config.OutputStdout {
		out = stdout
	}

	interp := interpreter.NewInterpreter(nil,
		interpreter.WithOutput(out),
		interpreter.WithLogger(logger),
		interpreter.WithNatives(natives),
	)

	for _, path := range files {
		program, status := loadProgram(path)
		if status != ExitOK {
			return status
		}
		locals, ok := resolve(path, program)
		if !ok {
			return ExitDataErr
		}
		interp.Annotate(locals)
		if err := interp.Interpret(program.Statements); err != nil {
			fmt.Fprintln(stderr, err)
			logger.Error("run failed", "file", path, "error", err)
			return ExitSoftware
		}
	}
	return ExitOK
}

// Check resolves every file and reports all diagnostics without running
// anything.
func Check(args []string) int {
	fset, configPath := newFlagSet("check")
	if err := fset.Parse(args); err != nil {
		return ExitUsage
	}
	files := fset.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "ERROR: provide at least one program document to check")
		return ExitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "ERROR:", err)
		return ExitConfig
	}
	logger = cfg.Logger(stderr)

	status := ExitOK
	for _, path := range files {
		program, loadStatus := loadProgram(path)
		if loadStatus != ExitOK {
			return loadStatus
		}
		if _, ok := resolve(path, program); !ok {
			status = ExitDataErr
			continue
		}
		fmt.Fprintf(stdout, "%s: ok\n", path)
	}
	return status
}

func Print(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "ERROR: provide exactly one program document to print")
		return ExitUsage
	}
	program, status := loadProgram(args[0])
	if status != ExitOK {
		return status
	}
	fmt.Fprint(stdout, program.String())
	return ExitOK
}
