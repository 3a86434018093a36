package model

import "fmt"

// Coordinate identifies one grid cell. Rows grow downward, columns grow to the right.
type Coordinate struct {
	Row int32 `json:"row"`
	Col int32 `json:"col"`
}

// Less orders coordinates row-major
func (c Coordinate) Less(other Coordinate) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
