package projection

import "strings"

//go:generate go tool stringer -type=Category -output=category_string.go

// Category is the closed set of native type shapes the catalog recognizes.
type Category int

const (
	_ Category = iota // skip zero value, use it as a default (invalid) value for Category

	CategoryBool
	CategoryIntegral
	CategoryFloating
	CategoryTextual
	CategoryVector3    // editable as a point
	CategoryQuaternion // editable as Euler angles in a point
	CategoryColor
	CategoryEnum      // wrapper enum reinterprets the native value
	CategoryReference // native id of another managed element
	CategoryContainer // element-wise projection
	CategoryOther     // default-constructed, projected as itself

	// CategoryTotal is a constant that represents the total number of categories defined
	CategoryTotal = int(iota)
)

// Short returns the category name without its prefix, e.g. "Floating".
func (c Category) Short() string {
	return strings.TrimPrefix(c.String(), "Category")
}

// ParseCategory maps a short or full category name, case-insensitively.
func ParseCategory(name string) (Category, bool) {
	for c := Category(1); int(c) < CategoryTotal; c++ {
		if strings.EqualFold(name, c.Short()) || strings.EqualFold(name, c.String()) {
			return c, true
		}
	}

	return 0, false
}

// CategoryNames returns the short names of all categories in order.
func CategoryNames() []string {
	names := make([]string, 0, CategoryTotal-1)
	for c := Category(1); int(c) < CategoryTotal; c++ {
		names = append(names, c.Short())
	}

	return names
}
