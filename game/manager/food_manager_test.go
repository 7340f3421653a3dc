package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func TestPlaceNeverLandsOnSnake(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 20}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, cm, rand.New(rand.NewSource(1)))

	// A long snake raises the odds of rejected samples.
	snake := entity.NewSnake(types.Point{X: 25, Y: 10}, types.DirRight, 3, entity.Color{})
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < 10; x++ {
			snake.Body = append(snake.Body, types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 500; i++ {
		food := fm.Place(snake)
		if snake.Occupies(food) {
			t.Fatalf("Expected food on a free cell, got %v on the snake (iteration %d)", food, i)
		}
		if !grid.Contains(food) {
			t.Fatalf("Expected food inside the grid, got %v (iteration %d)", food, i)
		}
	}
}
