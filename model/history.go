package model

import (
	"crypto/md5"
	"fmt"
)

const defaultHistorySize = 5

// Fingerprint returns an MD5 hash of the board's current generation
func Fingerprint(g GameOfLife) string {
	h := md5.New()
	for y := range g.Height() {
		for x := range g.Width() {
			if alive, _ := g.IsCellAlive(x, y); alive {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// CountLivingCells counts living cells through the GameOfLife contract
func CountLivingCells(g GameOfLife) (count int) {
	if grid, ok := g.(*Grid); ok {
		return grid.LivingCells()
	}
	for y := range g.Height() {
		for x := range g.Width() {
			if alive, _ := g.IsCellAlive(x, y); alive {
				count++
			}
		}
	}
	return
}

// History remembers recent generations to detect still lifes and short cycles
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size generations, a non-positive size uses the default of 5
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds the board's current generation to the history
func (h *History) Record(g GameOfLife) {
	h.hashes = append(h.hashes, Fingerprint(g))
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// IsStagnant reports whether the board's current generation repeats one of the last three recorded
func (h *History) IsStagnant(g GameOfLife) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := Fingerprint(g)
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
