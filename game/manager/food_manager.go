package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

type FoodManager struct {
	grid         types.Grid
	food         entity.Food
	rng          types.Rand
	collisionMgr *CollisionManager
	spawned      int
}

func NewFoodManager(grid types.Grid, rng types.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Relocate moves the food off the snake. It returns entity.ErrBoardFull when
// the snake covers every cell.
func (fm *FoodManager) Relocate(snake *entity.Snake) error {
	occupied := snake.Cells()
	valid := func(p types.Point) bool {
		return fm.collisionMgr.ValidateSpawnPosition(p, occupied)
	}
	if _, err := fm.food.Relocate(fm.rng, fm.grid, valid); err != nil {
		return err
	}
	fm.spawned++
	return nil
}

func (fm *FoodManager) Position() types.Point {
	return fm.food.Position
}

// Spawned counts successful relocations.
func (fm *FoodManager) Spawned() int {
	return fm.spawned
}

// Place puts the food on a fixed cell without any checks.
func (fm *FoodManager) Place(pos types.Point) {
	fm.food.Position = pos
}
