package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestNewSnakeTrailsBehindHead(t *testing.T) {
	s := NewSnake(types.Point{X: 15, Y: 10}, types.DirRight, 3, Color{})

	want := []types.Point{{X: 15, Y: 10}, {X: 14, Y: 10}, {X: 13, Y: 10}}
	if len(s.Body) != len(want) {
		t.Fatalf("Expected %d segments, got %d", len(want), len(s.Body))
	}
	for i, p := range want {
		if s.Body[i] != p {
			t.Errorf("Expected segment %d at %v, got %v", i, p, s.Body[i])
		}
	}
	if s.Direction != types.DirRight {
		t.Errorf("Expected direction Right, got %v", s.Direction)
	}
}

func TestMovePrependsHead(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.DirRight, 3, Color{})

	s.Move(types.Point{X: 6, Y: 5})

	if s.Head() != (types.Point{X: 6, Y: 5}) {
		t.Errorf("Expected head at (6,5), got %v", s.Head())
	}
	if s.Len() != 4 {
		t.Errorf("Expected 4 segments before tail removal, got %d", s.Len())
	}
	if s.Body[1] != (types.Point{X: 5, Y: 5}) {
		t.Errorf("Expected old head at index 1, got %v", s.Body[1])
	}

	s.RemoveTail()
	if s.Len() != 3 {
		t.Errorf("Expected 3 segments after tail removal, got %d", s.Len())
	}
	if s.Tail() != (types.Point{X: 4, Y: 5}) {
		t.Errorf("Expected tail at (4,5), got %v", s.Tail())
	}
}

func TestGrowDuplicatesTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.DirRight, 2, Color{})

	s.Grow(2)

	if s.Len() != 4 {
		t.Fatalf("Expected 4 segments after growing by 2, got %d", s.Len())
	}
	tail := types.Point{X: 4, Y: 5}
	if s.Body[2] != tail || s.Body[3] != tail {
		t.Errorf("Expected duplicated tail segments at %v, got %v and %v", tail, s.Body[2], s.Body[3])
	}

	// The duplicates unwind one per move.
	s.Move(types.Point{X: 6, Y: 5})
	s.RemoveTail()
	if s.Len() != 4 {
		t.Errorf("Expected length to stay 4 while duplicates unwind, got %d", s.Len())
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	tests := []struct {
		name    string
		current types.Direction
		next    types.Direction
		want    bool
	}{
		{"reversal right to left", types.DirRight, types.DirLeft, false},
		{"reversal up to down", types.DirUp, types.DirDown, false},
		{"reversal down to up", types.DirDown, types.DirUp, false},
		{"reversal left to right", types.DirLeft, types.DirRight, false},
		{"perpendicular turn", types.DirRight, types.DirUp, true},
		{"same direction", types.DirRight, types.DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(types.Point{X: 5, Y: 5}, tt.current, 3, Color{})
			got := s.SetDirection(tt.next)
			if got != tt.want {
				t.Errorf("Expected accepted=%v, got %v", tt.want, got)
			}
			wantDir := tt.current
			if tt.want {
				wantDir = tt.next
			}
			if s.Direction != wantDir {
				t.Errorf("Expected direction %v, got %v", wantDir, s.Direction)
			}
		})
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.DirRight, 3, Color{})

	if !s.Occupies(types.Point{X: 3, Y: 5}) {
		t.Error("Expected tail cell to be occupied")
	}
	if s.Occupies(types.Point{X: 6, Y: 5}) {
		t.Error("Expected cell ahead of head to be free")
	}
}
