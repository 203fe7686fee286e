package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	s := New("foo", "bar")
	assert.Equal(t, 2, s.Length())
	assert.True(t, s.Add("baz"))
	assert.False(t, s.Add("baz"))
	assert.Equal(t, 3, s.Length())
}

func TestRemove(t *testing.T) {
	s := New("foo", "bar", "baz")
	assert.True(t, s.Remove("baz"))
	assert.False(t, s.Remove("baz"))
	assert.Equal(t, 2, s.Length())
}

func TestContains(t *testing.T) {
	s := New("foo", "bar", "baz")
	assert.True(t, s.Contains("foo"))
	assert.True(t, s.Contains("foo", "bar", "baz"))
	assert.False(t, s.Contains("foo", "qux"))
}

func TestPointers(t *testing.T) {
	a, b := new(int), new(int)
	s := New(a, b, a)

	assert.Equal(t, 2, s.Length())
	assert.ElementsMatch(t, []*int{a, b}, s.ToSlice())
}

func TestEqual(t *testing.T) {
	testCases := []struct {
		testName string
		s        *Set[string]
		o        *Set[string]
		want     bool
	}{
		{
			"not equal different length",
			New("foo"),
			New("foo", "bar", "baz"),
			false,
		},
		{
			"not equal same length",
			New("foo", "bar", "qux"),
			New("foo", "bar", "baz"),
			false,
		},
		{
			"equal",
			New("foo", "bar", "baz"),
			New("baz", "bar", "foo"),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Equal(tc.o))
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "Set{foo}", New("foo").String())
	assert.Equal(t, "Set{}", New[string]().String())
}
