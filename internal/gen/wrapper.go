package gen

import (
	"fmt"
	"strings"

	"regionsynth/internal/attr"
	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
	"regionsynth/internal/projection"
)

// resultVar holds the native return value inside forwarding methods.
const resultVar = "result"

// propertyGenerator exposes public members as managed properties.
type propertyGenerator struct {
	opts Options
}

func (g *propertyGenerator) Kind() string { return KindProperty }

func (g *propertyGenerator) Generate(owner string, decls []decl.Declaration, diags *diagnostic.Diagnostics) []string {
	var lines []string

	for _, m := range decl.Members(decl.OwnedBy(decls, owner)) {
		if m.Access() != decl.Public || m.IsPointer() || m.Attrs().Has(attr.NoProperty) {
			continue
		}

		p := projectOrNote(g.opts.Catalog, owner, m.Name, m.Type, m.Attrs(), m.SourceLine(), diags)
		field := g.opts.Native + "->" + m.Name
		in := g.opts.Indent

		lines = append(lines,
			fmt.Sprintf("property %s %s", p.Wrapper, m.Name),
			"{",
			fmt.Sprintf("%s%s get() { return %s; }", in, p.Wrapper, g.opts.Catalog.ToWrapper(field, p, m.Name)),
		)

		if !m.IsConst() {
			setter := fmt.Sprintf("%svoid set(%s value) { %s = %s;", in, p.Wrapper, field, g.opts.Catalog.FromWrapper("value", p))
			if !m.Attrs().Has(attr.Const) {
				setter += " " + notifyCall(g.opts.Notify, m.Name)
			}

			lines = append(lines, setter+" }")
		}

		lines = append(lines, "}")
	}

	return lines
}

// functionGenerator forwards Wrap-tagged public functions to the native object.
type functionGenerator struct {
	opts Options
}

func (g *functionGenerator) Kind() string { return KindFunction }

func (g *functionGenerator) Generate(owner string, decls []decl.Declaration, diags *diagnostic.Diagnostics) []string {
	var lines []string

	for _, f := range decl.Functions(decl.OwnedBy(decls, owner)) {
		if f.Access() != decl.Public || !f.Attrs().Has(attr.Wrap) || strings.HasSuffix(f.ReturnType, decl.PointerMarker) {
			continue
		}

		lines = append(lines, g.forward(owner, f, diags)...)
	}

	return lines
}

func (g *functionGenerator) forward(owner string, f *decl.Function, diags *diagnostic.Diagnostics) []string {
	cat := g.opts.Catalog
	in := g.opts.Indent

	var (
		params []string
		args   []string
	)

	for _, p := range f.Params {
		pp := projectOrNote(cat, owner, f.Name, p.Type, nil, f.SourceLine(), diags)
		params = append(params, pp.Wrapper+" "+p.Name)
		args = append(args, cat.FromWrapper(p.Name, pp))
	}

	ret := projection.Projection{Native: "void", Wrapper: "void", Category: projection.CategoryOther}
	if f.ReturnsValue() {
		ret = projectOrNote(cat, owner, f.Name, f.ReturnType, f.Attrs(), f.SourceLine(), diags)
	}

	signature := fmt.Sprintf("%s %s(%s)", ret.Wrapper, f.Name, strings.Join(params, ", "))
	if f.Virtual {
		signature = "virtual " + signature
	}

	call := fmt.Sprintf("%s->%s(%s);", g.opts.Native, f.Name, strings.Join(args, ", "))
	if f.ReturnsValue() {
		call = "auto " + resultVar + " = " + call
	}

	lines := []string{signature, "{", in + call}

	if !f.Const && !f.Attrs().Has(attr.Const) {
		lines = append(lines, in+notifyCall(g.opts.Notify, f.Name))
	}

	if f.ReturnsValue() {
		lines = append(lines, in+"return "+cat.ToWrapper(resultVar, ret, f.Name)+";")
	}

	return append(lines, "}")
}

// projectOrNote resolves a projection and records an info when the type is
// not in the catalog.
func projectOrNote(
	cat *projection.Catalog,
	owner, name, native string,
	attrs attr.Set,
	line int,
	diags *diagnostic.Diagnostics,
) projection.Projection {
	p, ok := cat.Project(native, attrs)
	if !ok {
		diags.AddInfo(diagnostic.CodeUnknownProjection,
			fmt.Sprintf("type %s has no projection; exposed as itself", native), owner, name, line)
	}

	return p
}

func notifyCall(notify, name string) string {
	return fmt.Sprintf("%s(%q);", notify, name)
}
