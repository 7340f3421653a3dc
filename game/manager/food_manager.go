package manager

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type FoodManager struct {
	grid         types.Grid
	collisionMgr *CollisionManager
	rng          *rand.Rand
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		collisionMgr: collisionMgr,
		rng:          rng,
	}
}

// Place picks a uniformly random cell not occupied by the snake,
// resampling until a free cell comes up. The snake can never cover
// the whole grid while the game is running, so the loop terminates.
func (fm *FoodManager) Place(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}
}
