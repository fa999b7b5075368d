package entity

import (
	"github.com/pkg/errors"

	"torus-snake/game/types"
)

// ErrBoardFull is returned when no free cell is left for the food.
var ErrBoardFull = errors.New("board full: no free cell for food")

// minRelocateAttempts is the floor of random samples tried before the free
// cells are enumerated.
const minRelocateAttempts = 64

type Food struct {
	Position types.Point
}

// Relocate moves the food to a uniformly random cell accepted by valid.
// Random sampling is bounded; after that the valid cells are listed and one is
// picked, so a nearly full board still terminates.
func (f *Food) Relocate(rng types.Rand, grid types.Grid, valid func(types.Point) bool) (types.Point, error) {
	attempts := 4 * grid.Area()
	if attempts < minRelocateAttempts {
		attempts = minRelocateAttempts
	}

	for i := 0; i < attempts; i++ {
		p := types.Point{
			X: rng.Intn(grid.Width),
			Y: rng.Intn(grid.Height),
		}
		if valid(p) {
			f.Position = p
			return p, nil
		}
	}

	var free []types.Point
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if valid(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return f.Position, ErrBoardFull
	}

	f.Position = free[rng.Intn(len(free))]
	return f.Position, nil
}
