package model

import "math/rand/v2"

// SetCell sets a cell to alive or dead using only the GameOfLife contract
func SetCell(g GameOfLife, x, y int, alive bool) {
	current, ok := g.IsCellAlive(x, y)
	if !ok || current == alive {
		return
	}
	g.ToggleCell(x, y)
}

// ApplyDefaultPattern draws a rectangular border one cell in from each edge.
// Every border cell is toggled exactly once.
func ApplyDefaultPattern(g GameOfLife) {
	w, h := g.Width(), g.Height()
	if w < 3 || h < 3 {
		return
	}

	for x := 1; x < w-1; x++ {
		g.ToggleCell(x, 1)
		if h-2 != 1 {
			g.ToggleCell(x, h-2)
		}
	}

	// corners already belong to the rows above
	for y := 2; y < h-2; y++ {
		g.ToggleCell(1, y)
		if w-2 != 1 {
			g.ToggleCell(w-2, y)
		}
	}
}

func stamp(g GameOfLife, startX, startY int, pattern [][]bool) {
	for y, row := range pattern {
		for x, cell := range row {
			SetCell(g, startX+x, startY+y, cell)
		}
	}
}

// AddGlider adds a glider pattern at the specified position
func AddGlider(g GameOfLife, startX, startY int) {
	stamp(g, startX, startY, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// AddBlinker adds a horizontal blinker oscillator
func AddBlinker(g GameOfLife, startX, startY int) {
	stamp(g, startX, startY, [][]bool{{true, true, true}})
}

// AddBlock adds a 2x2 still life
func AddBlock(g GameOfLife, startX, startY int) {
	stamp(g, startX, startY, [][]bool{
		{true, true},
		{true, true},
	})
}

// Randomize sets every cell alive with probability density. The same seed always gives the same board.
func Randomize(g GameOfLife, density float64, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for y := range g.Height() {
		for x := range g.Width() {
			SetCell(g, x, y, rng.Float64() < density)
		}
	}
}
