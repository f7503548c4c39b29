package model

import "github.com/pkg/errors"

// BrokenGame is a deliberately wrong GameOfLife. It keeps a single cell no matter
// the requested size, toggles that cell for every coordinate and reports a fixed size.
// It exists to show a type satisfying the contract without honoring it.
type BrokenGame struct {
	cellState bool
}

// NewBrokenGame validates the dimensions like any variant, then ignores them
func NewBrokenGame(width, height int) (*BrokenGame, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewBrokenGame]")
	}
	return &BrokenGame{cellState: true}, nil
}

func (b *BrokenGame) IsCellAlive(_, _ int) (alive, ok bool) {
	return b.cellState, true
}

func (b *BrokenGame) ToggleCell(_, _ int) {
	b.cellState = !b.cellState
}

// Tick toggles an arbitrary cell instead of applying the rules
func (b *BrokenGame) Tick() {
	b.ToggleCell(42, 42)
}

func (b *BrokenGame) Width() int { return 49 }

func (b *BrokenGame) Height() int { return 40 }
