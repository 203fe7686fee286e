// Package set provides a small membership set for pool bookkeeping.
//
// Unlike a general purpose set it is not safe for concurrent use; callers
// guard it the same way they guard the pool that owns it.
package set

import (
	"fmt"
	"strings"
)

type Set[T comparable] struct {
	m map[T]struct{}
}

// New returns a set initialized with the provided items.
func New[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		m: make(map[T]struct{}, len(items)),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add an item to the set. Returns false if the item was already present.
func (s *Set[T]) Add(item T) bool {
	before := len(s.m)
	s.m[item] = struct{}{}

	return before != len(s.m)
}

// Remove an item from the set. Returns false if the item was not present.
func (s *Set[T]) Remove(item T) bool {
	before := len(s.m)
	delete(s.m, item)

	return before != len(s.m)
}

// Contains determines whether all of the provided items are in the set.
func (s *Set[T]) Contains(items ...T) bool {
	for _, item := range items {
		if _, ok := s.m[item]; !ok {
			return false
		}
	}

	return true
}

// Length returns the number of items in the set.
func (s *Set[T]) Length() int {
	return len(s.m)
}

// Equal determines if both sets hold the same items. Order is irrelevant.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Length() != other.Length() {
		return false
	}

	for item := range s.m {
		if !other.Contains(item) {
			return false
		}
	}

	return true
}

// ToSlice returns the set as a slice.
func (s *Set[T]) ToSlice() []T {
	items := make([]T, 0, len(s.m))

	for item := range s.m {
		items = append(items, item)
	}

	return items
}

func (s *Set[T]) String() string {
	items := make([]string, 0, len(s.m))

	for item := range s.m {
		items = append(items, fmt.Sprint(item))
	}

	return fmt.Sprintf("Set{%s}", strings.Join(items, ", "))
}
