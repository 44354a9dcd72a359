package region

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"regionsynth/internal/common"
	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
	"regionsynth/internal/gen"
)

// Result is the outcome of one processing step.
type Result int

const (
	// NoFile means the file needed by the step does not exist.
	NoFile Result = iota
	// NoChanges means processing completed and nothing was patched.
	NoChanges
	// Success means processing completed and a patch was produced.
	Success
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case NoFile:
		return "NoFile"
	case NoChanges:
		return "NoChanges"
	case Success:
		return "Success"
	default:
		return common.UnknownStr
	}
}

// Outcome reports one step: header analysis or one companion file.
type Outcome struct {
	Path        string
	Result      Result
	Diagnostics diagnostic.Diagnostics
	// Diff is the planned patch in unified format; dry runs only.
	Diff string
}

// Config holds engine settings.
type Config struct {
	// CompanionExt is the extension of the file paired with a header.
	CompanionExt string
	// Indent is one level of indentation in target files.
	Indent string
	// DryRun plans patches and renders diffs without writing.
	DryRun bool
	// CacheSize bounds the extraction cache; 0 disables it.
	CacheSize int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		CompanionExt: ".cpp",
		Indent:       "\t",
		CacheSize:    256,
	}
}

// Engine runs extraction and region synthesis. It holds no per-file state,
// so one engine may process distinct file pairs concurrently; two passes
// over the same target file must not overlap.
type Engine struct {
	config   Config
	registry *gen.Registry
	cache    *extractionCache
}

// NewEngine creates an engine dispatching regions through registry.
func NewEngine(config Config, registry *gen.Registry) (*Engine, error) {
	cache, err := newExtractionCache(config.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating extraction cache: %w", err)
	}

	return &Engine{config: config, registry: registry, cache: cache}, nil
}

// CompanionPath returns the companion file paired with headerPath.
func (e *Engine) CompanionPath(headerPath string) string {
	return common.SwapExt(headerPath, e.config.CompanionExt)
}

// CachedHeaders returns the number of extraction results held in the cache.
func (e *Engine) CachedHeaders() int {
	return e.cache.len()
}

// Process analyzes headerPath and synthesizes its companion file. It
// returns the header outcome followed by the companion outcome; when the
// header does not exist only the header outcome is returned.
func (e *Engine) Process(ctx context.Context, headerPath string) ([]Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	header := Outcome{Path: headerPath}

	decls, err := e.Extract(headerPath, &header.Diagnostics)
	if errors.Is(err, fs.ErrNotExist) {
		header.Result = NoFile
		return []Outcome{header}, nil
	}

	if err != nil {
		return nil, err
	}

	header.Result = Success

	companion, err := e.Synthesize(e.CompanionPath(headerPath), decls)
	if err != nil {
		return []Outcome{header}, err
	}

	return []Outcome{header, companion}, nil
}

// Extract reads a header and returns its declarations, reusing a cached
// result when the content is unchanged. Errors wrap fs.ErrNotExist when the
// header is missing.
func (e *Engine) Extract(headerPath string, diags *diagnostic.Diagnostics) ([]decl.Declaration, error) {
	data, err := os.ReadFile(headerPath)
	if err != nil {
		return nil, fmt.Errorf("reading header %s: %w", headerPath, err)
	}

	key := cacheKey{path: headerPath, sum: sha256.Sum256(data)}
	if x, ok := e.cache.get(key); ok {
		diags.Merge(x.diags)
		return x.decls, nil
	}

	var x extraction

	x.decls = decl.Extract(parseDocument(data).lines, &x.diags)
	x.diags.AddInfo(diagnostic.CodeExtracted,
		fmt.Sprintf("%d declarations for %s", len(x.decls), strings.Join(decl.Owners(x.decls), ", ")), "", "", 0)

	e.cache.add(key, x)
	diags.Merge(x.diags)

	return x.decls, nil
}

// Synthesize regenerates every region of targetPath from decls and writes
// the file when anything changed.
func (e *Engine) Synthesize(targetPath string, decls []decl.Declaration) (Outcome, error) {
	out := Outcome{Path: targetPath}

	data, err := os.ReadFile(targetPath)
	if errors.Is(err, fs.ErrNotExist) {
		out.Result = NoFile
		return out, nil
	}

	if err != nil {
		return out, fmt.Errorf("reading %s: %w", targetPath, err)
	}

	doc := parseDocument(data)
	p := &planner{
		registry: e.registry,
		decls:    decls,
		indent:   e.config.Indent,
		diags:    &out.Diagnostics,
	}

	edits := p.plan(doc.lines)
	if common.IsEmpty(edits) {
		out.Result = NoChanges
		return out, nil
	}

	patched := doc.render(apply(doc.lines, edits))
	out.Result = Success

	if e.config.DryRun {
		out.Diff, err = unifiedDiff(targetPath, data, patched)
		if err != nil {
			return out, fmt.Errorf("diffing %s: %w", targetPath, err)
		}

		return out, nil
	}

	if err := writeFile(targetPath, patched); err != nil {
		return out, err
	}

	return out, nil
}
