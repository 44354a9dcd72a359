package gen

import (
	"regionsynth/internal/attr"
	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
)

// fieldGenerator emits one line per serializable member. Read, Write and
// Size differ only in the line they format.
type fieldGenerator struct {
	kind   string
	opts   Options
	format func(m *decl.Member) string
}

func newFieldGenerator(kind string, opts Options, format func(m *decl.Member) string) *fieldGenerator {
	return &fieldGenerator{kind: kind, opts: opts, format: format}
}

func (g *fieldGenerator) Kind() string { return g.kind }

func (g *fieldGenerator) Generate(owner string, decls []decl.Declaration, _ *diagnostic.Diagnostics) []string {
	var lines []string

	for _, m := range decl.Members(decl.OwnedBy(decls, owner)) {
		if serializable(m) {
			lines = append(lines, g.format(m))
		}
	}

	return lines
}

// serializable holds for public, non-pointer members not tagged NoSave.
func serializable(m *decl.Member) bool {
	return m.Access() == decl.Public && !m.IsPointer() && !m.Attrs().Has(attr.NoSave)
}
