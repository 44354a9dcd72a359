package gen

import (
	"fmt"

	"regionsynth/internal/attr"
	"regionsynth/internal/decl"
	"regionsynth/internal/diagnostic"
	"regionsynth/internal/projection"
)

// initGenerator assigns a default value to every member not tagged NoInit.
type initGenerator struct {
	opts Options
}

func (g *initGenerator) Kind() string { return KindInit }

func (g *initGenerator) Generate(owner string, decls []decl.Declaration, diags *diagnostic.Diagnostics) []string {
	var lines []string

	for _, m := range decl.Members(decl.OwnedBy(decls, owner)) {
		if m.Attrs().Has(attr.NoInit) {
			continue
		}

		value, err := g.defaultValue(m)
		if err != nil {
			diags.AddWarning(diagnostic.CodeMissingDefaultValue, err.Error(), owner, m.Name, m.SourceLine())
			continue
		}

		lines = append(lines, fmt.Sprintf("this->%s = %s;", m.Name, value))
	}

	return lines
}

func (g *initGenerator) defaultValue(m *decl.Member) (string, error) {
	if m.IsConst() {
		return "", fmt.Errorf("const member %s %s cannot be assigned", m.Type, m.Name)
	}

	if a, ok := m.Attrs().Get(attr.Default); ok {
		if a.Payload == "" {
			return "", fmt.Errorf("%s attribute has no value", a.Name)
		}

		return a.Payload, nil
	}

	if m.IsPointer() {
		return "nullptr", nil
	}

	native := projection.BareType(m.Type)

	switch g.opts.Catalog.Classify(native) {
	case projection.CategoryBool:
		return "false", nil
	case projection.CategoryIntegral:
		return "0", nil
	case projection.CategoryFloating:
		if native == "float" {
			return "0.0f", nil
		}

		return "0.0", nil
	case projection.CategoryTextual:
		return `""`, nil
	default:
		return native + "()", nil
	}
}
