// Package main provides the CLI entrypoint for graftt.
//
// graftt transplants the members of donor classes into recipient classes:
//   - Loads YAML class definitions from one or more classpath directories
//   - Applies the transplants listed in a graft plan, in order
//   - Verifies every grafted class and writes it to the output directory
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"

	"graftt/internal/classpath"
	"graftt/internal/config"
	"graftt/internal/diagnostic"
	"graftt/internal/graft"
	"graftt/internal/logging"
	"graftt/internal/plan"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := config.Load(args)
	if err != nil {
		if config.IsHelp(err) {
			fmt.Fprintln(stdout, err)
			return exitOK
		}

		fmt.Fprintln(stderr, err)

		return exitUsage
	}

	logger := logging.New(opts.LogLevel, stderr)

	cp, err := classpath.New(opts.CacheSize, opts.Roots()...)
	if err != nil {
		logger.Error("failed to open classpath", "error", err)
		return exitError
	}

	p, err := plan.LoadFile(opts.Plan)
	if err != nil {
		logger.Error("failed to load plan", "error", err)
		return exitError
	}

	diags := plan.Validate(p, cp.Contains)
	report(stderr, diags)

	if !diags.IsValid() {
		return exitError
	}

	graftOpts := []graft.Option{graft.WithLogger(logger)}
	if opts.NoVerify {
		graftOpts = append(graftOpts, graft.WithVerifier(nil))
	}

	runner := plan.NewRunner(cp.Load, graft.New(graftOpts...), logger)

	res, err := runner.Run(p)
	report(stderr, &res.Diagnostics)
	logger.Debug("classpath", "roots", cp.Roots(), "cached", cp.Cached())

	if err != nil {
		logger.Error("graft failed", "error", err)
		return exitError
	}

	if opts.Dump {
		for _, name := range res.Order {
			dumper.Fdump(stdout, res.Classes[name])
		}
	}

	if opts.DryRun {
		logger.Info("dry run, nothing written", "classes", len(res.Order))
		return exitOK
	}

	paths, err := runner.Write(res, opts.Output)
	if err != nil {
		logger.Error("failed to write output", "error", err)
		return exitError
	}

	logger.Info("done", "written", len(paths), "output", opts.Output)

	return exitOK
}

// report prints errors and warnings; infos are left to debug logging.
func report(w io.Writer, d *diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		if diag.Severity == diagnostic.SeverityInfo {
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", diag.Severity, diag.String())
	}
}
