package manager

import (
	"torus-snake/game/entity"
	"torus-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	}
	return "none"
}

// CollisionManager answers collision questions for a torus grid. There are no
// walls, so the only way to die is biting yourself.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check is called after the head has moved.
func (cm *CollisionManager) Check(snake *entity.Snake) CollisionType {
	if snake.IsSelfColliding() {
		return SelfCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is a legal food cell
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied types.CellSet) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !occupied.Has(pos)
}
