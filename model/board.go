package model

import (
	"slices"

	"github.com/pkg/errors"
)

// ErrEmptyBoundary is returned when a boundary contains no cells
var ErrEmptyBoundary = errors.New("boundary is empty")

// Boundary is the renderable region: Min is inclusive, Max is exclusive
type Boundary struct {
	Min Coordinate `json:"min"`
	Max Coordinate `json:"max"`
}

// Validate checks that the boundary spans at least one cell on both axes
func (b Boundary) Validate() error {
	if b.Min.Row >= b.Max.Row || b.Min.Col >= b.Max.Col {
		return errors.Wrapf(ErrEmptyBoundary, "[Boundary.Validate] min %v, max %v", b.Min, b.Max)
	}
	return nil
}

// InBounds reports whether c lies inside the boundary
func (b Boundary) InBounds(c Coordinate) bool {
	return b.Min.Row <= c.Row && c.Row < b.Max.Row &&
		b.Min.Col <= c.Col && c.Col < b.Max.Col
}

// Height returns the number of rows in the boundary
func (b Boundary) Height() int {
	return int(b.Max.Row) - int(b.Min.Row)
}

// Width returns the number of columns in the boundary
func (b Boundary) Width() int {
	return int(b.Max.Col) - int(b.Min.Col)
}

// Area returns the number of cells in the boundary. It is a float so a full int32 square does not overflow.
func (b Boundary) Area() float64 {
	return float64(b.Height()) * float64(b.Width())
}

// Board pairs the current live cells with the fixed boundary.
// Boards are values: advancing produces a new Board via WithLive.
type Board struct {
	bounds Boundary
	live   LiveSet
}

// NewBoard creates a board over bounds holding live
func NewBoard(bounds Boundary, live LiveSet) Board {
	if live == nil {
		live = LiveSet{}
	}
	return Board{bounds: bounds, live: live}
}

// Boundary returns the board's fixed boundary
func (b Board) Boundary() Boundary {
	return b.bounds
}

// Live returns the current live set. Callers must not modify it.
func (b Board) Live() LiveSet {
	return b.live
}

// WithLive returns a board over the same boundary holding next
func (b Board) WithLive(next LiveSet) Board {
	return NewBoard(b.bounds, next)
}

// InBounds reports whether c lies inside the board's boundary
func (b Board) InBounds(c Coordinate) bool {
	return b.bounds.InBounds(c)
}

// Population returns the number of live cells, including those outside the boundary
func (b Board) Population() int {
	return b.live.Len()
}

// Visible returns the live cells inside the boundary in row-major order
func (b Board) Visible() []Coordinate {
	visible := make([]Coordinate, 0, len(b.live))
	for c := range b.live {
		if b.InBounds(c) {
			visible = append(visible, c)
		}
	}
	slices.SortFunc(visible, compareCoordinates)
	return visible
}
