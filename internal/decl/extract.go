package decl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"regionsynth/internal/attr"
	"regionsynth/internal/diagnostic"
)

var (
	typeDeclRe   = regexp.MustCompile(`(?i)^\s*(class|struct|union)\s+([\w\s]+?)\s*(?:[:{].*)?$`)
	visibilityRe = regexp.MustCompile(`(?i)^\s*(public|private|protected)\s*:`)
	memberRe     = regexp.MustCompile(`^([\w:<>,\s]*?)\s*(\*?)\s*(\w*)\s*;$`)
	functionRe   = regexp.MustCompile(`(?i)^(virtual\s+)?([\w:<>,\s*&]*?)\s*(~?\w+)\s*\((.*)\)\s*(const)?\s*(override)?\s*(final)?\s*(=\s*0)?\s*;$`)
)

// statementKeywords start lines that look like members but are statements
// inside inline bodies.
var statementKeywords = map[string]bool{
	"return":   true,
	"delete":   true,
	"throw":    true,
	"using":    true,
	"typedef":  true,
	"friend":   true,
	"goto":     true,
	"break":    true,
	"continue": true,
	"case":     true,
	"default":  true,
}

// errMalformed marks lines that look like declarations but lack a required part.
var errMalformed = errors.New("malformed declaration")

// scanState is the accumulator threaded through the fold over header lines.
type scanState struct {
	currentType string
	visibility  Visibility
}

func (s scanState) known() bool {
	return s.currentType != "" && s.visibility != VisibilityNone
}

// Extract scans header lines and returns the declarations in source order.
// Malformed declarations and duplicate attributes are recorded in diags and
// skipped; they never stop the scan.
func Extract(lines []string, diags *diagnostic.Diagnostics) []Declaration {
	var (
		state scanState
		out   []Declaration
	)

	for i, line := range lines {
		var ds []Declaration

		state, ds = state.step(line, i+1, diags)
		out = append(out, ds...)
	}

	return out
}

// step consumes one line and returns the next state and the declarations
// the line yields. A line may open a type and declare members in the same
// breath: "class Foo { public: int Count; };".
func (s scanState) step(line string, lineNo int, diags *diagnostic.Diagnostics) (scanState, []Declaration) {
	code := codePart(line)
	if code == "" {
		return s, nil
	}

	if name, vis, ok := matchTypeDecl(code); ok {
		s = scanState{currentType: name, visibility: vis}

		_, rest, found := strings.Cut(code, "{")
		if !found {
			return s, nil
		}

		code = strings.TrimSpace(rest)
	}

	var out []Declaration

	for _, stmt := range statements(code) {
		if loc := visibilityRe.FindStringSubmatchIndex(stmt); loc != nil {
			s.visibility, _ = ParseVisibility(stmt[loc[2]:loc[3]])
			stmt = strings.TrimSpace(stmt[loc[1]:])
		}

		if stmt == "" || !s.known() {
			continue
		}

		d, err := s.declare(stmt, lineNo)
		if err != nil {
			diags.AddWarning(diagnostic.CodeMalformedDeclaration, err.Error(), s.currentType, "", lineNo)
			continue
		}

		if d == nil {
			continue
		}

		attrs, err := attr.Parse(line)
		if err != nil {
			diags.AddWarning(diagnostic.CodeDuplicateAttribute, err.Error(), s.currentType, d.Ident(), lineNo)
		}

		switch v := d.(type) {
		case *Member:
			v.Attributes = attrs
		case *Function:
			v.Attributes = attrs
		}

		out = append(out, d)
	}

	return s, out
}

// statements splits a code line at semicolons. Lines carrying an inline
// body are kept whole.
func statements(code string) []string {
	if strings.Contains(code, "{") {
		return []string{code}
	}

	var out []string

	parts := strings.Split(code, ";")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if i < len(parts)-1 {
			part += ";"
		}

		out = append(out, part)
	}

	return out
}

// declare tries member extraction, then function extraction.
func (s scanState) declare(code string, lineNo int) (Declaration, error) {
	if statementKeywords[strings.ToLower(firstWord(code))] {
		return nil, nil
	}

	base := Base{Owner: s.currentType, Visibility: s.visibility, Line: lineNo}

	if m := memberRe.FindStringSubmatch(code); m != nil {
		return newMember(base, m[1], m[2], m[3], code)
	}

	if m := functionRe.FindStringSubmatch(code); m != nil {
		return s.newFunction(base, m, code)
	}

	return nil, nil
}

func newMember(base Base, typeTokens, ptr, name, code string) (Declaration, error) {
	typ := normalizeType(typeTokens)
	if typ == "" || name == "" {
		return nil, fmt.Errorf("%w: %q: missing member type or name", errMalformed, code)
	}

	if !balancedAngles(typ) {
		return nil, fmt.Errorf("%w: %q: unsupported member type %q", errMalformed, code, typ)
	}

	return &Member{Base: base, Type: typ + ptr, Name: name}, nil
}

func (s scanState) newFunction(base Base, m []string, code string) (Declaration, error) {
	name := m[3]

	// Constructors and destructors are never generator input.
	if name == s.currentType || strings.HasPrefix(name, "~") {
		return nil, nil
	}

	ret := normalizeType(m[2])
	if ret == "" {
		return nil, fmt.Errorf("%w: %q: missing return type", errMalformed, code)
	}

	params, err := splitParams(m[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errMalformed, code, err)
	}

	return &Function{
		Base:       base,
		ReturnType: ret,
		Name:       name,
		Params:     params,
		Virtual:    m[1] != "",
		Const:      m[5] != "",
		Override:   m[6] != "",
		Pure:       m[8] != "",
	}, nil
}

// matchTypeDecl recognizes a type declaration and returns its name and the
// language default visibility for it.
func matchTypeDecl(code string) (string, Visibility, bool) {
	m := typeDeclRe.FindStringSubmatch(code)
	if m == nil {
		return "", VisibilityNone, false
	}

	words := strings.Fields(m[2])
	// Skip export macros and trailing specifiers: "class ENGINE_API Foo final".
	for len(words) > 1 && strings.EqualFold(words[len(words)-1], "final") {
		words = words[:len(words)-1]
	}

	if len(words) == 0 {
		return "", VisibilityNone, false
	}

	vis := Public
	if strings.EqualFold(m[1], "class") {
		vis = Private
	}

	return words[len(words)-1], vis, true
}

// codePart strips annotations and line comments and trims the result.
func codePart(line string) string {
	code := attr.Strip(line)
	if idx := strings.Index(code, "//"); idx >= 0 {
		code = code[:idx]
	}

	return strings.TrimSpace(code)
}

func firstWord(code string) string {
	words := strings.FieldsFunc(code, func(r rune) bool { return !isIdentRune(r) })
	if len(words) == 0 {
		return ""
	}

	return words[0]
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '~' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
}
