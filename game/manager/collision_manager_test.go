package manager

import (
	"testing"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

func TestNextHeadWrapsAroundEdges(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 20}
	cm := NewCollisionManager(grid)

	tests := []struct {
		name string
		head types.Point
		dir  types.Direction
		want types.Point
	}{
		{"right edge wraps to left", types.Point{X: 29, Y: 10}, types.DirRight, types.Point{X: 0, Y: 10}},
		{"left edge wraps to right", types.Point{X: 0, Y: 5}, types.DirLeft, types.Point{X: 29, Y: 5}},
		{"top edge wraps to bottom", types.Point{X: 10, Y: 0}, types.DirUp, types.Point{X: 10, Y: 19}},
		{"bottom edge wraps to top", types.Point{X: 10, Y: 19}, types.DirDown, types.Point{X: 10, Y: 0}},
		{"interior move does not wrap", types.Point{X: 15, Y: 10}, types.DirRight, types.Point{X: 16, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cm.NextHead(tt.head, tt.dir)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHitsSnakeIncludesTail(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 20}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.DirRight, 3, entity.Color{})

	if !cm.HitsSnake(types.Point{X: 3, Y: 5}, snake) {
		t.Error("Expected hit on the tail cell")
	}
	if !cm.HitsSnake(types.Point{X: 4, Y: 5}, snake) {
		t.Error("Expected hit on a body cell")
	}
	if cm.HitsSnake(types.Point{X: 6, Y: 5}, snake) {
		t.Error("Expected no hit on a free cell")
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	grid := types.Grid{Width: 30, Height: 20}
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.DirRight, 3, entity.Color{})

	if cm.ValidateSpawnPosition(types.Point{X: 4, Y: 5}, snake) {
		t.Error("Expected snake cell to be invalid for spawning")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 30, Y: 5}, snake) {
		t.Error("Expected off-grid cell to be invalid for spawning")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 10, Y: 10}, snake) {
		t.Error("Expected free cell to be valid for spawning")
	}
}
