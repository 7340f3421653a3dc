package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead returns the cell one step from head in dir, wrapped around
// the grid edges. There are no walls, crossing an edge re-enters on
// the opposite side.
func (cm *CollisionManager) NextHead(head types.Point, dir types.Direction) types.Point {
	return cm.grid.Wrap(head.Add(dir.ToPoint()))
}

// HitsSnake checks a position against the snake's entire current
// body. The tail cell counts even though it moves away on the same
// tick, so driving the head onto the tail is fatal.
func (cm *CollisionManager) HitsSnake(pos types.Point, snake *entity.Snake) bool {
	return snake.Occupies(pos)
}

// ValidateSpawnPosition checks if a position is valid for spawning food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return !snake.Occupies(pos)
}
