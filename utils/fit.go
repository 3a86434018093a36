package utils

import "github.com/sheikhrachel/sparse-gol/model"

// FitBoundary shrinks b so it fits a terminal of rows x cols.
// Each cell takes two columns; the boundary never grows and keeps at least one cell.
func FitBoundary(b model.Boundary, rows, cols int) model.Boundary {
	if rows < 1 || cols < 2 {
		return b
	}
	if h := int32(min(rows, b.Height())); h > 0 {
		b.Max.Row = b.Min.Row + h
	}
	if w := int32(min(cols/2, b.Width())); w > 0 {
		b.Max.Col = b.Min.Col + w
	}
	return b
}
