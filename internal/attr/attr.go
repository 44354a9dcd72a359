// Package attr parses attribute annotations attached to declaration lines.
//
// Expected format:
//
//	float Speed; //@ NoSave Default[1.5f]
//	int Id;      //@ Ref[Entity] NoInit
//
// The marker is followed by whitespace-separated tokens, each either a bare
// Name or Name[payload]. Names are case-insensitive; payloads are kept
// verbatim and may contain anything except the bracket delimiters.
package attr

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// Marker introduces an annotation comment.
const Marker = "//@"

// Well-known attribute names, lower-cased.
const (
	NoSave     = "nosave"
	NoInit     = "noinit"
	NoProperty = "noproperty"
	Wrap       = "wrap"
	Const      = "const"
	Default    = "default"
	Enum       = "enum"
	Ref        = "ref"
)

// ErrDuplicate is returned when one declaration names an attribute twice.
var ErrDuplicate = errors.New("duplicate attribute")

var tokenRe = regexp.MustCompile(`^(\w+)(?:\[([^\[\]]*)\])?`)

// Attribute is a single Name or Name[payload] token.
type Attribute struct {
	Name       string // as written
	Payload    string
	HasPayload bool
}

// String renders the attribute back to its annotation form.
func (a Attribute) String() string {
	if a.HasPayload {
		return a.Name + "[" + a.Payload + "]"
	}

	return a.Name
}

// Set maps lower-cased attribute names to attributes.
type Set map[string]Attribute

// Has reports whether the attribute is present.
func (s Set) Has(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Get returns the attribute with the given name.
func (s Set) Get(name string) (Attribute, bool) {
	a, ok := s[strings.ToLower(name)]
	return a, ok
}

// Payload returns the bracketed payload of name. ok is false when the
// attribute is absent or was written without brackets.
func (s Set) Payload(name string) (payload string, ok bool) {
	a, found := s[strings.ToLower(name)]
	if !found || !a.HasPayload {
		return "", false
	}

	return a.Payload, true
}

// Names returns the attribute keys in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}

	slices.Sort(names)

	return names
}

// Parse extracts the attribute set from a source line.
//
// A line without the marker yields an empty set. When a name repeats, the
// first occurrence is kept and the returned error wraps ErrDuplicate; the
// set is still usable in that case.
func Parse(line string) (Set, error) {
	set := Set{}

	idx := strings.Index(line, Marker)
	if idx < 0 {
		return set, nil
	}

	rest := line[idx+len(Marker):]

	var errs []error

	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			break
		}

		m := tokenRe.FindStringSubmatchIndex(rest)
		if m == nil {
			// Not a token; the remainder is free comment text.
			break
		}

		a := Attribute{Name: rest[m[2]:m[3]]}
		if m[4] >= 0 {
			a.Payload = rest[m[4]:m[5]]
			a.HasPayload = true
		}

		rest = rest[m[1]:]

		key := strings.ToLower(a.Name)
		if prev, dup := set[key]; dup {
			errs = append(errs, fmt.Errorf("%w: %s (kept %s, dropped %s)", ErrDuplicate, key, prev, a))
			continue
		}

		set[key] = a
	}

	return set, errors.Join(errs...)
}

// Strip returns the part of line before the annotation marker.
func Strip(line string) string {
	if idx := strings.Index(line, Marker); idx >= 0 {
		return line[:idx]
	}

	return line
}
