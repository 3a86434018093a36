// Package engine advances a sparse Game of Life population by one generation.
package engine

import (
	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/rules"
)

// neighborOffsets in row-major order: up-left, up, up-right, left, right, down-left, down, down-right
var neighborOffsets = [8]model.Coordinate{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

/*
NeighborsOf returns the eight cells at Chebyshev distance 1 from c in row-major order.

Offsets use int32 two's-complement wrapping, so a neighbor of a cell on the
MaxInt32 edge lands on MinInt32. The eight results are always distinct and
never equal to c.
*/
func NeighborsOf(c model.Coordinate) [8]model.Coordinate {
	var out [8]model.Coordinate
	for i, off := range neighborOffsets {
		out[i] = model.Coordinate{Row: c.Row + off.Row, Col: c.Col + off.Col}
	}
	return out
}

/*
Advance computes the generation following curr. curr is only read.

Every live cell adds one to the count of each of its neighbors, so only cells
with at least one live neighbor are ever considered. No boundary filtering is
applied: cells may drift outside the renderable area.
*/
func Advance(curr model.LiveSet) model.LiveSet {
	counts := make(map[model.Coordinate]int, len(curr)*len(neighborOffsets))
	for c := range curr {
		for _, n := range NeighborsOf(c) {
			counts[n]++
		}
	}

	next := make(model.LiveSet, len(curr))
	for cell, count := range counts {
		if rules.ApplyConwayRules(count, curr.Contains(cell)) {
			next.Add(cell)
		}
	}
	return next
}
