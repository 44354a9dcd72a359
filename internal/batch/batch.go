// Package batch runs region synthesis over one header or a directory tree
// of headers.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"regionsynth/internal/common"
	"regionsynth/internal/region"
)

// ErrUsage is returned when the path argument is missing or unusable.
var ErrUsage = errors.New("usage")

// Processor handles one header and its companion file.
type Processor interface {
	Process(ctx context.Context, headerPath string) ([]region.Outcome, error)
}

// Options controls a batch run.
type Options struct {
	// Headers lists header file extensions, dot included.
	Headers []string
	// Workers bounds the number of units processed at once.
	Workers int
}

// Unit is the result of processing one header.
type Unit struct {
	Header   string
	Outcomes []region.Outcome
	Err      error
}

// Changed reports whether any target file of the unit was patched.
func (u Unit) Changed() bool {
	for _, o := range u.targets() {
		if o.Result == region.Success {
			return true
		}
	}

	return false
}

// targets skips the header outcome.
func (u Unit) targets() []region.Outcome {
	if len(u.Outcomes) < 2 {
		return nil
	}

	return u.Outcomes[1:]
}

// Report aggregates a batch run.
type Report struct {
	Units []Unit
	// Changes counts target files that were patched, or would be in a dry run.
	Changes int
}

// Err joins the errors of all failed units.
func (r *Report) Err() error {
	var errs []error
	for _, u := range r.Units {
		if u.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", u.Header, u.Err))
		}
	}

	return errors.Join(errs...)
}

// Changed returns the units that patched at least one file.
func (r *Report) Changed() []Unit {
	return common.Filter(r.Units, Unit.Changed)
}

// Run processes path, a single header or a directory searched recursively
// for headers. Per-unit failures are recorded in the report and do not stop
// the run; only usage errors and cancellation are returned.
func Run(ctx context.Context, p Processor, path string, opts Options) (*Report, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path given", ErrUsage)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var headers []string

	if info.IsDir() {
		headers, err = findHeaders(path, opts.Headers)
		if err != nil {
			return nil, err
		}
	} else {
		if !isHeader(path, opts.Headers) {
			return nil, fmt.Errorf("%w: %s is not a header (%s)", ErrUsage, path, strings.Join(opts.Headers, ", "))
		}

		headers = []string{path}
	}

	units := make([]Unit, len(headers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, header := range headers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			outcomes, err := p.Process(ctx, header)
			units[i] = Unit{Header: header, Outcomes: outcomes, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Units: units}
	for _, u := range units {
		for _, o := range u.targets() {
			if o.Result == region.Success {
				report.Changes++
			}
		}
	}

	return report, nil
}

// findHeaders walks root in lexical order. Hidden directories are skipped.
func findHeaders(root string, exts []string) ([]string, error) {
	var headers []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}

			return nil
		}

		if isHeader(path, exts) {
			headers = append(headers, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking %s: %w", root, err)
	}

	return headers, nil
}

func isHeader(path string, exts []string) bool {
	ext := filepath.Ext(path)

	return slices.ContainsFunc(exts, func(e string) bool { return strings.EqualFold(e, ext) })
}
