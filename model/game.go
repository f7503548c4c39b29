package model

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a board is constructed with a non-positive width or height
	ErrInvalidDimensions = errors.New("width and height must be greater than 0")
	// ErrUnknownVariant is returned by NewGame for an unregistered variant name
	ErrUnknownVariant = errors.New("unknown game variant")
)

// GameOfLife is the contract the renderer, pattern seeders and driver loop use to drive a board.
//
// The origin (0, 0) is the top-left cell. Coordinates outside the board are never an error:
// IsCellAlive reports ok == false and ToggleCell does nothing.
type GameOfLife interface {
	// IsCellAlive returns the state of the cell and whether (x, y) is on the board
	IsCellAlive(x, y int) (alive, ok bool)
	// ToggleCell flips the cell from alive to dead or dead to alive
	ToggleCell(x, y int)
	// Tick advances the board by one generation
	Tick()
	Width() int
	Height() int
}

const (
	VariantSolution = "solution"
	VariantBroken   = "broken"
)

// Factory constructs a board of the given dimensions
type Factory func(width, height int) (GameOfLife, error)

var variants = map[string]Factory{
	VariantSolution: func(width, height int) (GameOfLife, error) {
		g, err := NewGrid(width, height)
		if err != nil {
			return nil, err
		}
		return g, nil
	},
	VariantBroken: func(width, height int) (GameOfLife, error) {
		b, err := NewBrokenGame(width, height)
		if err != nil {
			return nil, err
		}
		return b, nil
	},
}

// Variants returns the registered variant names in sorted order
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewGame builds the named variant
func NewGame(variant string, width, height int) (GameOfLife, error) {
	factory, ok := variants[variant]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVariant, "[NewGame] variant: %q", variant)
	}
	return factory(width, height)
}

func validateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d cells overflow int", width, height)
	}
	return nil
}
