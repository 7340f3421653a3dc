package entity

import (
	"snake-arcade/game/types"
)

type Color struct {
	R, G, B uint8
}

// Snake is the player snake. Body is ordered head first, so Body[0]
// is the head and the last element is the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	Color     Color
}

// NewSnake builds a snake of the given length with its head at head,
// moving dir, with the body trailing away from the heading.
func NewSnake(head types.Point, dir types.Direction, length int, color Color) *Snake {
	back := dir.Opposite().ToPoint()
	body := make([]types.Point, length)
	for i := range body {
		body[i] = types.Point{X: head.X + back.X*i, Y: head.Y + back.Y*i}
	}
	return &Snake{
		Body:      body,
		Direction: dir,
		Color:     color,
	}
}

// Head returns the current head position.
func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// Tail returns the current tail position.
func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Move prepends the new head position. The tail stays in place until
// RemoveTail runs, so Move alone grows the snake by one.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail drops the tail segment.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Grow appends n copies of the tail segment. The copies occupy the
// same cell and unwind over the next n moves, so the visible body
// lengthens gradually.
func (s *Snake) Grow(n int) {
	if len(s.Body) == 0 {
		return
	}
	tail := s.Tail()
	for i := 0; i < n; i++ {
		s.Body = append(s.Body, tail)
	}
}

// Occupies reports whether any body segment covers pos.
func (s *Snake) Occupies(pos types.Point) bool {
	for _, p := range s.Body {
		if p == pos {
			return true
		}
	}
	return false
}

// SetDirection applies a direction change and reports whether it was
// accepted. A 180-degree reversal of the current direction is
// rejected and leaves the direction unchanged.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}
