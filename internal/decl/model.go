package decl

import (
	"strings"

	"regionsynth/internal/attr"
	"regionsynth/internal/common"
)

// PointerMarker terminates pointer-typed member types.
const PointerMarker = "*"

// Visibility is the access section a declaration appears in.
type Visibility int

const (
	VisibilityNone Visibility = iota
	Public
	Private
	Protected
)

// String returns the keyword for the visibility.
func (v Visibility) String() string {
	switch v {
	case VisibilityNone:
		return "none"
	case Public:
		return "public"
	case Private:
		return "private"
	case Protected:
		return "protected"
	default:
		return common.UnknownStr
	}
}

// ParseVisibility maps a section keyword to a Visibility.
func ParseVisibility(s string) (Visibility, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public":
		return Public, true
	case "private":
		return Private, true
	case "protected":
		return Protected, true
	default:
		return VisibilityNone, false
	}
}

// Declaration is either a *Member or a *Function.
type Declaration interface {
	// OwnerType is the name of the enclosing type.
	OwnerType() string
	// Access is the visibility section the declaration appeared in.
	Access() Visibility
	// Attrs is the attribute set parsed from the declaration line.
	Attrs() attr.Set
	// Ident is the member or function name.
	Ident() string
	// SourceLine is the 1-based header line.
	SourceLine() int

	declaration()
}

// Base holds what every declaration carries.
type Base struct {
	Owner      string
	Visibility Visibility
	Attributes attr.Set
	Line       int
}

func (b Base) OwnerType() string  { return b.Owner }
func (b Base) Access() Visibility { return b.Visibility }
func (b Base) SourceLine() int    { return b.Line }
func (b Base) declaration()       {}

// Attrs never returns nil.
func (b Base) Attrs() attr.Set {
	if b.Attributes == nil {
		return attr.Set{}
	}

	return b.Attributes
}

// Member is a member variable.
type Member struct {
	Base
	Type string
	Name string
}

func (m *Member) Ident() string { return m.Name }

// IsPointer reports whether the member type ends with the pointer marker.
func (m *Member) IsPointer() bool {
	return strings.HasSuffix(m.Type, PointerMarker)
}

// IsConst reports whether the member type is const-qualified.
func (m *Member) IsConst() bool {
	return m.Type == "const" || strings.HasPrefix(m.Type, "const ")
}

// Param is one function parameter.
type Param struct {
	Name    string
	Type    string
	Default string // default-value text, empty if none
}

// Function is a member function.
type Function struct {
	Base
	ReturnType string
	Name       string
	Params     []Param
	Const      bool
	Virtual    bool
	Override   bool
	Pure       bool
}

func (f *Function) Ident() string { return f.Name }

// ReturnsValue reports whether the function returns something other than void.
func (f *Function) ReturnsValue() bool {
	return f.ReturnType != "void"
}

// OwnedBy returns the declarations whose owning type is owner, in order.
func OwnedBy(decls []Declaration, owner string) []Declaration {
	return common.Filter(decls, func(d Declaration) bool {
		return d.OwnerType() == owner
	})
}

// Members returns the member declarations among decls, in order.
func Members(decls []Declaration) []*Member {
	var out []*Member

	for _, d := range decls {
		if m, ok := d.(*Member); ok {
			out = append(out, m)
		}
	}

	return out
}

// Functions returns the function declarations among decls, in order.
func Functions(decls []Declaration) []*Function {
	var out []*Function

	for _, d := range decls {
		if f, ok := d.(*Function); ok {
			out = append(out, f)
		}
	}

	return out
}

// Owners returns the distinct owning type names in first-seen order.
func Owners(decls []Declaration) []string {
	seen := map[string]bool{}

	var out []string

	for _, d := range decls {
		if !seen[d.OwnerType()] {
			seen[d.OwnerType()] = true
			out = append(out, d.OwnerType())
		}
	}

	return out
}
