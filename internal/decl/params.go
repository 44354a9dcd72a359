package decl

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	spaceBeforeRe = regexp.MustCompile(`\s+([*&>,)])`)
	spaceAfterRe  = regexp.MustCompile(`([<(])\s+`)
	commaRe       = regexp.MustCompile(`,(\S)`)
	trailingIdent = regexp.MustCompile(`^(.*?)([A-Za-z_]\w*)$`)
)

// splitParams splits a parenthesized parameter list body into parameters.
//
// Commas separate parameters only at nesting depth zero: commas inside
// <>, (), [], {} or quotes belong to a template argument list, a default
// value expression or a literal. A parameter's default value starts at its
// first top-level '='. The name is the trailing identifier of what remains;
// everything before it is the type.
func splitParams(body string) ([]Param, error) {
	body = strings.TrimSpace(body)
	if body == "" || body == "void" {
		return nil, nil
	}

	var params []Param

	for _, part := range splitTopLevel(body, ',') {
		p, err := parseParam(part)
		if err != nil {
			return nil, err
		}

		params = append(params, p)
	}

	return params, nil
}

func parseParam(part string) (Param, error) {
	left, def := part, ""

	if eq := splitTopLevel(part, '='); len(eq) > 1 {
		left = eq[0]
		def = strings.TrimSpace(strings.Join(eq[1:], "="))
	}

	left = strings.TrimSpace(left)

	m := trailingIdent.FindStringSubmatch(left)
	if m == nil {
		return Param{}, fmt.Errorf("parameter %q: missing name", strings.TrimSpace(part))
	}

	typ := normalizeType(m[1])
	if typ == "" || typ == "const" {
		return Param{}, fmt.Errorf("parameter %q: missing type", strings.TrimSpace(part))
	}

	return Param{Name: m[2], Type: typ, Default: def}, nil
}

// splitTopLevel splits s on sep where sep is outside brackets and quotes.
func splitTopLevel(s string, sep byte) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '<' || c == '(' || c == '[' || c == '{':
			depth++
		case c == '>' || c == ')' || c == ']' || c == '}':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	return append(parts, s[start:])
}

// normalizeType collapses whitespace so equal types compare equal:
// "const  Vector3 &" becomes "const Vector3&", "std::map< int,float >"
// becomes "std::map<int, float>".
func normalizeType(t string) string {
	t = strings.Join(strings.Fields(t), " ")
	t = spaceBeforeRe.ReplaceAllString(t, "$1")
	t = spaceAfterRe.ReplaceAllString(t, "$1")
	t = commaRe.ReplaceAllString(t, ", $1")

	return t
}

// balancedAngles reports whether every '<' is closed and no comma appears
// outside a template argument list.
func balancedAngles(t string) bool {
	depth := 0

	for _, c := range t {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
			if depth < 0 {
				return false
			}
		case ',':
			if depth == 0 {
				return false
			}
		}
	}

	return depth == 0
}
