package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regionsynth/internal/attr"
)

func newTestCatalog(t *testing.T, extra ...Entry) *Catalog {
	t.Helper()

	cfg := DefaultCatalogConfig()
	cfg.Extra = extra

	c, err := NewCatalog(cfg)
	require.NoError(t, err)

	return c
}

func mustAttrs(t *testing.T, line string) attr.Set {
	t.Helper()

	set, err := attr.Parse(line)
	require.NoError(t, err)

	return set
}

func TestCatalog_Project(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		native   string
		wrapper  string
		category Category
	}{
		{"bool", "bool", CategoryBool},
		{"int", "int", CategoryIntegral},
		{"uint64_t", "System::UInt64", CategoryIntegral},
		{"float", "double", CategoryFloating},
		{"const float", "double", CategoryFloating},
		{"std::string", "System::String^", CategoryTextual},
		{"Vector3", "EditablePoint3", CategoryVector3},
		{"const Vector3&", "EditablePoint3", CategoryVector3},
		{"Quaternion", "EditablePoint3", CategoryQuaternion},
		{"Color", "System::Drawing::Color", CategoryColor},
		{"std::vector<float>", "System::Collections::Generic::List<double>^", CategoryContainer},
		{"vector<std::vector<Color>>", "System::Collections::Generic::List<System::Collections::Generic::List<System::Drawing::Color>^>^", CategoryContainer},
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			p, ok := c.Project(tt.native, nil)
			require.True(t, ok)
			assert.Equal(t, tt.wrapper, p.Wrapper)
			assert.Equal(t, tt.category, p.Category)
			assert.Equal(t, tt.category, c.Classify(tt.native))
		})
	}
}

func TestCatalog_ProjectFromAttributes(t *testing.T) {
	c := newTestCatalog(t)

	ref, ok := c.Project("uint32_t", mustAttrs(t, "//@ Ref[Entity]"))
	require.True(t, ok)
	assert.Equal(t, CategoryReference, ref.Category)
	assert.Equal(t, "Entity^", ref.Wrapper)

	enum, ok := c.Project("BlendMode", mustAttrs(t, "//@ Enum[ManagedBlendMode]"))
	require.True(t, ok)
	assert.Equal(t, CategoryEnum, enum.Category)
	assert.Equal(t, "ManagedBlendMode", enum.Wrapper)
}

func TestCatalog_Unknown(t *testing.T) {
	c := newTestCatalog(t)

	p, ok := c.Project("Transform", nil)
	assert.False(t, ok)
	assert.Equal(t, CategoryOther, p.Category)
	assert.Equal(t, "Transform", p.Wrapper)
	assert.True(t, p.IsIdentity())

	nested, ok := c.Project("std::vector<Transform>", nil)
	assert.False(t, ok, "container of unknown element is not fully projected")
	assert.Equal(t, CategoryContainer, nested.Category)
}

func TestNewCatalog_Extra(t *testing.T) {
	c := newTestCatalog(t,
		Entry{Native: "BlendMode", Wrapper: "ManagedBlendMode", Category: CategoryEnum},
		Entry{Native: "EntityId", Wrapper: "Entity", Category: CategoryReference},
		Entry{Native: "float", Wrapper: "float", Category: CategoryFloating},
	)

	p, ok := c.Project("BlendMode", nil)
	require.True(t, ok)
	assert.Equal(t, CategoryEnum, p.Category)

	p, ok = c.Project("EntityId", nil)
	require.True(t, ok)
	assert.Equal(t, "Entity^", p.Wrapper)

	p, _ = c.Project("float", nil)
	assert.True(t, p.IsIdentity(), "extra entries replace built-ins")
}

func TestNewCatalog_Invalid(t *testing.T) {
	_, err := NewCatalog(CatalogConfig{Extra: []Entry{{Native: "X", Category: CategoryEnum}}})
	require.Error(t, err)

	_, err = NewCatalog(CatalogConfig{Extra: []Entry{{Native: "X", Wrapper: "Y", Category: CategoryContainer}}})
	require.Error(t, err)

	_, err = NewCatalog(CatalogConfig{Extra: []Entry{{Native: "X", Wrapper: "Y"}}})
	require.Error(t, err)
}

func TestConversionText(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		native string
		attrs  string
		to     string
		from   string
	}{
		{"int", "", "this->Native->Count", "value"},
		{"float", "", "(double)this->Native->Count", "(float)value"},
		{"std::string", "", "gcnew System::String(this->Native->Count.c_str())", "msclr::interop::marshal_as<std::string>(value)"},
		{"Vector3", "", "EditablePoint3::FromVector(this->Native->Count)", "value.ToVector()"},
		{"Quaternion", "", "EditablePoint3::FromQuaternion(this->Native->Count)", "value.ToQuaternion()"},
		{"Color", "", "System::Drawing::Color::FromArgb(this->Native->Count.ToArgb())", "Color::FromArgb(value.ToArgb())"},
		{"Mode", "//@ Enum[ManagedMode]", "(ManagedMode)this->Native->Count", "(Mode)value"},
		{"uint32_t", "//@ Ref[Entity]", `safe_cast<Entity^>(this->Lookup(this->Native->Count, "Count"))`, "(value != nullptr ? value->Id : 0)"},
		{
			"std::vector<float>", "",
			"ProjectionUtil::ToList<double>(this->Native->Count, [](const float& e) { return (double)e; })",
			"ProjectionUtil::ToVector<float>(value, [](double e) { return (float)e; })",
		},
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			p, _ := c.Project(tt.native, mustAttrs(t, tt.attrs))
			assert.Equal(t, tt.to, c.ToWrapper("this->Native->Count", p, "Count"))
			assert.Equal(t, tt.from, c.FromWrapper("value", p))
		})
	}
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "CategoryFloating", CategoryFloating.String())
	assert.Equal(t, "Floating", CategoryFloating.Short())
	assert.Equal(t, "Category(0)", Category(0).String())

	c, ok := ParseCategory("enum")
	require.True(t, ok)
	assert.Equal(t, CategoryEnum, c)

	c, ok = ParseCategory("CategoryReference")
	require.True(t, ok)
	assert.Equal(t, CategoryReference, c)

	_, ok = ParseCategory("nope")
	assert.False(t, ok)
}

func TestCategoryNamesList(t *testing.T) {
	names := CategoryNames()
	require.Len(t, names, CategoryTotal-1)
	assert.Equal(t, "Bool", names[0])
	assert.Equal(t, "Other", names[len(names)-1])
}
