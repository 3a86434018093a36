package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation, given the
number of live cells around it and whether it is alive now.

Survival needs two or three live neighbors, birth needs exactly three:
(alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
