// Package projection maps native value types to the types a managed
// wrapper exposes and synthesizes the conversion expressions between them.
package projection

import (
	"fmt"
	"regexp"
	"strings"

	"regionsynth/internal/attr"
)

// Entry is one row of the projection table.
type Entry struct {
	Native   string
	Wrapper  string
	Category Category
}

// Projection is the resolved relationship of one native type to its
// wrapper type. Elem is set for containers only.
type Projection struct {
	Native   string
	Wrapper  string
	Category Category
	Elem     *Projection
}

// IsIdentity reports whether values pass between native and wrapper unchanged.
func (p Projection) IsIdentity() bool {
	switch p.Category {
	case CategoryBool, CategoryIntegral, CategoryFloating, CategoryOther:
		return p.Native == p.Wrapper
	default:
		return false
	}
}

const (
	managedString = "System::String^"
	managedColor  = "System::Drawing::Color"
	editablePoint = "EditablePoint3"
	managedList   = "System::Collections::Generic::List"
)

var containerRe = regexp.MustCompile(`^(?:std::)?vector<(.+)>$`)

// builtins is the static table. Integral wrappers keep the native width.
var builtins = []Entry{
	{"bool", "bool", CategoryBool},

	{"char", "System::SByte", CategoryIntegral},
	{"signed char", "System::SByte", CategoryIntegral},
	{"int8_t", "System::SByte", CategoryIntegral},
	{"unsigned char", "System::Byte", CategoryIntegral},
	{"uint8_t", "System::Byte", CategoryIntegral},
	{"short", "System::Int16", CategoryIntegral},
	{"int16_t", "System::Int16", CategoryIntegral},
	{"unsigned short", "System::UInt16", CategoryIntegral},
	{"uint16_t", "System::UInt16", CategoryIntegral},
	{"int", "int", CategoryIntegral},
	{"long", "int", CategoryIntegral},
	{"int32_t", "int", CategoryIntegral},
	{"unsigned", "System::UInt32", CategoryIntegral},
	{"unsigned int", "System::UInt32", CategoryIntegral},
	{"unsigned long", "System::UInt32", CategoryIntegral},
	{"uint32_t", "System::UInt32", CategoryIntegral},
	{"long long", "System::Int64", CategoryIntegral},
	{"int64_t", "System::Int64", CategoryIntegral},
	{"unsigned long long", "System::UInt64", CategoryIntegral},
	{"uint64_t", "System::UInt64", CategoryIntegral},
	{"size_t", "System::UInt64", CategoryIntegral},

	{"float", "double", CategoryFloating},
	{"double", "double", CategoryFloating},

	{"std::string", managedString, CategoryTextual},
	{"String", managedString, CategoryTextual},

	{"Vector3", editablePoint, CategoryVector3},
	{"Quaternion", editablePoint, CategoryQuaternion},
	{"Color", managedColor, CategoryColor},
}

// CatalogConfig configures a Catalog.
type CatalogConfig struct {
	// Lookup is the call that resolves a native id to a managed element.
	// It is invoked as Lookup(id, "FieldName").
	Lookup string
	// Extra rows are added to the built-in table, replacing built-ins with
	// the same native name.
	Extra []Entry
}

// DefaultCatalogConfig returns the default catalog configuration.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{Lookup: "this->Lookup"}
}

// Catalog is the projection table plus the container rule. It is read-only
// after construction and safe for concurrent use.
type Catalog struct {
	entries map[string]Entry
	lookup  string
}

// NewCatalog builds a catalog from the built-in table and cfg.Extra.
func NewCatalog(cfg CatalogConfig) (*Catalog, error) {
	c := &Catalog{
		entries: make(map[string]Entry, len(builtins)+len(cfg.Extra)),
		lookup:  cfg.Lookup,
	}

	for _, e := range builtins {
		c.entries[e.Native] = e
	}

	for _, e := range cfg.Extra {
		if e.Native == "" || e.Wrapper == "" {
			return nil, fmt.Errorf("projection entry %q: native and wrapper are required", e.Native)
		}

		if e.Category == 0 || e.Category == CategoryContainer {
			return nil, fmt.Errorf("projection entry %q: category %s cannot be configured", e.Native, e.Category)
		}

		c.entries[e.Native] = e
	}

	return c, nil
}

// Classify returns the category of a native type without attribute context.
func (c *Catalog) Classify(native string) Category {
	native = BareType(native)

	if e, ok := c.entries[native]; ok {
		return e.Category
	}

	if containerRe.MatchString(native) {
		return CategoryContainer
	}

	return CategoryOther
}

// Project resolves the wrapper-facing projection of a native type. Ref and
// Enum attributes take precedence over the table. ok is false when the
// type fell through to CategoryOther.
func (c *Catalog) Project(native string, attrs attr.Set) (p Projection, ok bool) {
	native = BareType(native)

	if target, has := attrs.Payload(attr.Ref); has {
		return Projection{Native: native, Wrapper: handle(target), Category: CategoryReference}, true
	}

	if target, has := attrs.Payload(attr.Enum); has {
		return Projection{Native: native, Wrapper: target, Category: CategoryEnum}, true
	}

	if e, found := c.entries[native]; found {
		wrapper := e.Wrapper
		if e.Category == CategoryReference {
			wrapper = handle(wrapper)
		}

		return Projection{Native: native, Wrapper: wrapper, Category: e.Category}, true
	}

	if m := containerRe.FindStringSubmatch(native); m != nil {
		elem, elemOK := c.Project(m[1], nil)

		return Projection{
			Native:   native,
			Wrapper:  managedList + "<" + elem.Wrapper + ">^",
			Category: CategoryContainer,
			Elem:     &elem,
		}, elemOK
	}

	return Projection{Native: native, Wrapper: native, Category: CategoryOther}, false
}

// BareType drops const qualification and a trailing reference marker,
// neither of which changes the projection.
func BareType(t string) string {
	t = strings.TrimSpace(t)
	for strings.HasPrefix(t, "const ") {
		t = strings.TrimSpace(strings.TrimPrefix(t, "const "))
	}

	return strings.TrimSpace(strings.TrimSuffix(t, "&"))
}

func handle(managedType string) string {
	if strings.HasSuffix(managedType, "^") {
		return managedType
	}

	return managedType + "^"
}
