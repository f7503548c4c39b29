package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
every other cell is dead. A dead cell with 2 neighbors stays dead.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if neighbors < 2 || neighbors > 3 {
		return false
	}
	if alive {
		return true
	}
	return neighbors == 3
}
