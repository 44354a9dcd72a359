package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParams(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []Param
	}{
		{name: "empty", body: "", expected: nil},
		{name: "void", body: "void", expected: nil},
		{
			name:     "pointer and reference stay on the type",
			body:     "Mesh *mesh, const Vector3 & at",
			expected: []Param{{Name: "mesh", Type: "Mesh*"}, {Name: "at", Type: "const Vector3&"}},
		},
		{
			name: "template commas are not separators",
			body: "std::map<int, std::vector<float>> lookup, int n",
			expected: []Param{
				{Name: "lookup", Type: "std::map<int, std::vector<float>>"},
				{Name: "n", Type: "int"},
			},
		},
		{
			name: "defaults with spaces, equals and commas",
			body: `std::string label = "a = b, c", Vector3 origin = Vector3(0, 0, 0)`,
			expected: []Param{
				{Name: "label", Type: "std::string", Default: `"a = b, c"`},
				{Name: "origin", Type: "Vector3", Default: "Vector3(0, 0, 0)"},
			},
		},
		{
			name:     "default without spaces",
			body:     "int count=3",
			expected: []Param{{Name: "count", Type: "int", Default: "3"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := splitParams(tt.body)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSplitParams_Unnamed(t *testing.T) {
	_, err := splitParams("int")
	require.Error(t, err)

	_, err = splitParams("const Vector3&")
	require.Error(t, err)
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, "const Vector3&", normalizeType(" const  Vector3 & "))
	assert.Equal(t, "std::map<int, float>", normalizeType("std::map< int,float >"))
	assert.Equal(t, "unsigned int", normalizeType("unsigned\tint"))
}
