package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4, 5}, even))
	assert.Nil(t, Filter([]int{1, 3}, even))
	assert.True(t, IsEmpty(Filter[[]int](nil, even)))
}

func TestLeadingWhitespace(t *testing.T) {
	assert.Equal(t, "\t  ", LeadingWhitespace("\t  x = 1;"))
	assert.Equal(t, "", LeadingWhitespace("x"))
	assert.Equal(t, "  ", LeadingWhitespace("  "))
	assert.True(t, IsBlank(" \t"))
	assert.False(t, IsBlank(" ;"))
}

func TestSwapExt(t *testing.T) {
	assert.Equal(t, "src/Foo.cpp", SwapExt("src/Foo.h", ".cpp"))
	assert.Equal(t, "Foo.inl", SwapExt("Foo.hpp", ".inl"))
	assert.Equal(t, "Makefile.cpp", SwapExt("Makefile", ".cpp"))
}
