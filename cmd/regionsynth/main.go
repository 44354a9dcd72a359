// Package main provides the CLI entrypoint for regionsynth.
//
// regionsynth keeps generated regions of companion source files in sync
// with the annotated declarations of their headers:
//
//	regionsynth [-config file] [-check] [-workers n] [-watch interval] [-v] <header-or-dir>
//
// Exit status is 0 on success, 1 when a unit failed or, with -check, when a
// file would change, and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"regionsynth/internal/batch"
	"regionsynth/internal/config"
	"regionsynth/internal/diagnostic"
	"regionsynth/internal/region"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

type cli struct {
	configPath string
	check      bool
	workers    int
	watch      time.Duration
	verbose    bool
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var c cli

	fs := flag.NewFlagSet("regionsynth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.configPath, "config", "", "configuration file (default $"+config.EnvConfig+" or "+config.DefaultFileName+")")
	fs.BoolVar(&c.check, "check", false, "report planned changes as a diff without writing; exit 1 if any")
	fs.IntVar(&c.workers, "workers", 0, "header pairs processed in parallel (default from config)")
	fs.DurationVar(&c.watch, "watch", 0, "re-run on this interval until interrupted")
	fs.BoolVar(&c.verbose, "v", false, "print every result and informational diagnostics")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: regionsynth [flags] <header-or-dir>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	logger := log.New(stderr, "regionsynth: ", 0)

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		logger.Printf("loading config: %v", err)
		return exitFail
	}

	if c.workers > 0 {
		cfg.Workers = c.workers
	}

	engine, err := cfg.NewEngine(c.check)
	if err != nil {
		logger.Printf("creating engine: %v", err)
		return exitFail
	}

	opts := batch.Options{Headers: cfg.Headers, Workers: cfg.Workers}
	path := fs.Arg(0)

	code := c.pass(ctx, engine, path, opts, logger, stdout)
	if c.watch <= 0 || code == exitUsage {
		return code
	}

	ticker := time.NewTicker(c.watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return exitOK
		case <-ticker.C:
			c.pass(ctx, engine, path, opts, logger, stdout)
		}
	}
}

// pass runs one batch and reports it.
func (c *cli) pass(ctx context.Context, p batch.Processor, path string, opts batch.Options, logger *log.Logger, stdout io.Writer) int {
	report, err := batch.Run(ctx, p, path, opts)
	if errors.Is(err, batch.ErrUsage) {
		logger.Print(err)
		return exitUsage
	}

	if err != nil {
		logger.Print(err)
		return exitFail
	}

	for _, u := range report.Units {
		for _, o := range u.Outcomes {
			c.printOutcome(o, logger, stdout)
		}
	}

	code := exitOK

	if err := report.Err(); err != nil {
		logger.Print(err)
		code = exitFail
	}

	switch {
	case c.check && report.Changes > 0:
		logger.Printf("%d file(s) out of date", report.Changes)
		code = exitFail
	case report.Changes > 0 || c.verbose:
		logger.Printf("%d file(s) updated", report.Changes)
	}

	return code
}

func (c *cli) printOutcome(o region.Outcome, logger *log.Logger, stdout io.Writer) {
	logAll := func(ds []diagnostic.Diagnostic) {
		for _, d := range ds {
			logger.Printf("%s: %s: %s", o.Path, d.Severity, d)
		}
	}

	logAll(o.Diagnostics.Warnings)

	if c.verbose {
		logAll(o.Diagnostics.Infos)
		logger.Printf("%s: %s", o.Path, o.Result)
	}

	if o.Diff != "" {
		fmt.Fprint(stdout, o.Diff)
	}
}
