package model

import (
	"maps"
	"slices"
)

// LiveSet is the set of currently alive cells
type LiveSet map[Coordinate]struct{}

// NewLiveSet builds a LiveSet from the given cells, dropping duplicates
func NewLiveSet(cells ...Coordinate) LiveSet {
	s := make(LiveSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add marks c as alive
func (s LiveSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

// Contains reports whether c is alive
func (s LiveSet) Contains(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the population
func (s LiveSet) Len() int {
	return len(s)
}

// Clone returns an independent copy
func (s LiveSet) Clone() LiveSet {
	if s == nil {
		return LiveSet{}
	}
	return maps.Clone(s)
}

// Union returns a new set holding the cells of s and other
func (s LiveSet) Union(other LiveSet) LiveSet {
	out := s.Clone()
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells
func (s LiveSet) Equal(other LiveSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Sorted returns the cells in row-major order
func (s LiveSet) Sorted() []Coordinate {
	cells := slices.Collect(maps.Keys(s))
	slices.SortFunc(cells, compareCoordinates)
	return cells
}

func compareCoordinates(a, b Coordinate) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
