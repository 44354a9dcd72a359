package gen

import (
	"slices"
	"strings"

	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
	"regionsynth/internal/projection"
)

// Built-in generator kinds, as written in region markers.
const (
	KindRead     = "Read"
	KindWrite    = "Write"
	KindSize     = "Size"
	KindInit     = "Init"
	KindProperty = "Property"
	KindFunction = "Function"
)

// Generator produces the candidate lines for one region kind.
//
// Generate must be deterministic, keep declaration order and only consider
// declarations owned by owner. Lines carry relative indentation only; the
// caller applies the region's indentation context. Recoverable problems
// go to diags.
type Generator interface {
	Kind() string
	Generate(owner string, decls []decl.Declaration, diags *diagnostic.Diagnostics) []string
}

// Options holds the names generated code refers to.
type Options struct {
	// Reader, Writer and Size are the serializer variables in scope of the
	// Read, Write and Size regions.
	Reader string
	Writer string
	Size   string
	// SizeOf is the function that measures one field.
	SizeOf string
	// Native is the expression a wrapper uses to reach the native object.
	Native string
	// Notify is called with the member name after a wrapper mutates it.
	Notify string
	// Indent is one level of relative indentation inside emitted blocks.
	Indent string
	// Catalog projects native types for the wrapper generators.
	Catalog *projection.Catalog
}

// DefaultOptions returns the default generator options.
func DefaultOptions() Options {
	catalog, err := projection.NewCatalog(projection.DefaultCatalogConfig())
	if err != nil {
		// The built-in table is static; failing here is a programming error.
		panic(err)
	}

	return Options{
		Reader:  "reader",
		Writer:  "writer",
		Size:    "size",
		SizeOf:  "Serializer::SizeOf",
		Native:  "this->Native",
		Notify:  "this->NotifyChanged",
		Indent:  "\t",
		Catalog: catalog,
	}
}

// Registry maps kind names to generators. It is built once per engine and
// only read while synthesis runs.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns a registry holding the six built-in generators.
func NewRegistry(opts Options) *Registry {
	r := NewEmptyRegistry()

	for _, g := range Builtins(opts) {
		r.Register(g)
	}

	return r
}

// NewEmptyRegistry returns a registry without generators.
func NewEmptyRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Builtins returns the built-in generators in a stable order.
func Builtins(opts Options) []Generator {
	return []Generator{
		newFieldGenerator(KindRead, opts, func(m *decl.Member) string {
			return opts.Reader + ".Read(this->" + m.Name + ");"
		}),
		newFieldGenerator(KindWrite, opts, func(m *decl.Member) string {
			return opts.Writer + ".Write(this->" + m.Name + ");"
		}),
		newFieldGenerator(KindSize, opts, func(m *decl.Member) string {
			return opts.Size + " += " + opts.SizeOf + "(this->" + m.Name + ");"
		}),
		&initGenerator{opts: opts},
		&propertyGenerator{opts: opts},
		&functionGenerator{opts: opts},
	}
}

// Register adds g, replacing any generator of the same kind.
func (r *Registry) Register(g Generator) {
	r.generators[strings.ToLower(g.Kind())] = g
}

// Unregister removes the generator for kind, if any.
func (r *Registry) Unregister(kind string) {
	delete(r.generators, strings.ToLower(kind))
}

// Lookup finds the generator for kind, ignoring case.
func (r *Registry) Lookup(kind string) (Generator, bool) {
	g, ok := r.generators[strings.ToLower(kind)]
	return g, ok
}

// Kinds returns the registered kind names, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.generators))
	for _, g := range r.generators {
		kinds = append(kinds, g.Kind())
	}

	slices.Sort(kinds)

	return kinds
}
