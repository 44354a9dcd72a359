package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"Init", "Init", 0},
		{"", "Size", 4},
		{"Read", "", 4},

		{"Read", "Reed", 1},  // substitution
		{"Size", "Sizes", 1}, // insertion
		{"Write", "Wrte", 1}, // deletion

		{"inti", "init", 2},
		{"property", "properties", 3},
		{"function", "functor", 2},

		// Case-sensitive; callers lower-case first
		{"READ", "read", 4},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Levenshtein(tt.b, tt.a); reverse != result {
				t.Errorf("Levenshtein(%q, %q) = %d, not symmetric with %d", tt.b, tt.a, reverse, result)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"init", "init", 1.0},
		{"abc", "xyz", 0.0},
		{"inti", "init", 0.5},
		{"size", "sizes", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for b.Loop() {
		Levenshtein("Properties", "Property")
	}
}
