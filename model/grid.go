package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Grid is the reference Game of Life board: a finite, non-wrapping grid of cells stored row-major
type Grid struct {
	width  int
	height int
	cells  []bool
	next   []bool // scratch buffer for the generation being computed
}

// NewGrid creates a grid with every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewGrid]")
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
		next:   make([]bool, width*height),
	}, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return x + y*g.width
}

// IsCellAlive returns the state of a cell, ok is false when (x, y) is off the grid
func (g *Grid) IsCellAlive(x, y int) (alive, ok bool) {
	if !g.inBounds(x, y) {
		return false, false
	}
	return g.cells[g.index(x, y)], true
}

// ToggleCell flips a cell, off-grid coordinates are ignored
func (g *Grid) ToggleCell(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.cells[i] = !g.cells[i]
}

// countNeighbors counts living neighbors in the current generation, cells past the edge count as absent
func (g *Grid) countNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[g.index(nx, ny)] {
				count++
			}
		}
	}

	return count
}

// Tick computes the next generation into the scratch buffer, then swaps it in
func (g *Grid) Tick() {
	for y := range g.height {
		for x := range g.width {
			i := g.index(x, y)
			g.next[i] = rules.ApplyConwayRules(g.countNeighbors(x, y), g.cells[i])
		}
	}
	g.cells, g.next = g.next, g.cells
}

// LivingCells returns the total number of living cells
func (g *Grid) LivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}
