package types

import "time"

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Wrap maps a position back onto the grid, wrapping coordinates that
// crossed an edge around to the opposite side.
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Contains reports whether p lies on the grid without wrapping.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Point is a cell position on the grid
type Point struct {
	X, Y int
}

// Add returns the position shifted by d, without wrapping.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction represents a cardinal movement direction
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// ToPoint converts a Direction into a movement delta. Up decrements Y,
// Down increments Y (screen coordinates).
func (d Direction) ToPoint() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirRight:
		return Point{X: 1, Y: 0}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Game constants
const (
	GridWidth  = 30 // Cells per row
	GridHeight = 20 // Cells per column
	CellSize   = 20 // Pixels per cell

	InitialSnakeLength = 3
	FoodPoints         = 10 // Score per food eaten

	BaseMoveInterval = 100 * time.Millisecond // Default time between moves
	MinMoveInterval  = 20 * time.Millisecond  // Speed floor under boost

	OfferInterval     = 60 * time.Second       // Game time between offers
	OfferTimeout      = 12 * time.Second       // Wall time before an offer auto-closes
	InsufficientFlash = 700 * time.Millisecond // Flash after a rejected purchase
)
