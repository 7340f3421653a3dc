package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const (
	hudHeight    = 30
	footerHeight = 30

	// Window dimensions: the grid on top, HUD and footer strips below.
	WindowWidth  = types.GridWidth * types.CellSize
	WindowHeight = types.GridHeight*types.CellSize + hudHeight + footerHeight
)

type Renderer struct {
	cellSize   int32
	gridWidth  int32 // pixels
	gridHeight int32
	hudY       int32
	footerY    int32
}

func NewRenderer() *Renderer {
	return &Renderer{
		cellSize:   int32(types.CellSize),
		gridWidth:  int32(types.GridWidth * types.CellSize),
		gridHeight: int32(types.GridHeight * types.CellSize),
		hudY:       int32(types.GridHeight*types.CellSize) + 6,
		footerY:    int32(types.GridHeight*types.CellSize+hudHeight) + 6,
	}
}

func (r *Renderer) Draw(s *game.Session) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawGrid()
	r.drawFood(s)
	r.drawSnake(s)
	r.drawHUD(s)

	// The offer overlay wins: it only ever shows over a paused game.
	switch {
	case s.Offer() != nil:
		r.drawOffer(s)
	case s.State() == game.StatePaused:
		r.drawPaused()
	case s.State() == game.StateGameOver:
		r.drawGameOver(s)
	}

	r.drawFooter()
	rl.EndDrawing()
}

func (r *Renderer) drawGrid() {
	for x := int32(0); x < int32(types.GridWidth); x++ {
		for y := int32(0); y < int32(types.GridHeight); y++ {
			rl.DrawRectangleLines(
				x*r.cellSize,
				y*r.cellSize,
				r.cellSize, r.cellSize, rl.DarkGray)
		}
	}
}

func (r *Renderer) drawFood(s *game.Session) {
	food := s.Food()
	x := int32(food.X) * r.cellSize
	y := int32(food.Y) * r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Yellow)
}

func (r *Renderer) drawSnake(s *game.Session) {
	snake := s.Snake()
	bodyColor := rl.Color{R: snake.Color.R, G: snake.Color.G, B: snake.Color.B, A: 255}
	headColor := rl.Color{
		R: brighten(snake.Color.R),
		G: brighten(snake.Color.G),
		B: brighten(snake.Color.B),
		A: 255,
	}

	for i, p := range snake.Body {
		color := bodyColor
		if i == 0 {
			color = headColor
		}
		rl.DrawRectangle(
			int32(p.X)*r.cellSize,
			int32(p.Y)*r.cellSize,
			r.cellSize, r.cellSize, color)
	}

	r.drawHeading(snake.Head(), snake.Direction)
}

// drawHeading marks the head with a triangle pointing the way the
// snake moves.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	x := int32(head.X) * r.cellSize
	y := int32(head.Y) * r.cellSize
	half := r.cellSize / 2

	switch dir {
	case types.DirRight:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Yellow)
	case types.DirLeft:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Yellow)
	case types.DirDown:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y + r.cellSize)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Yellow)
	case types.DirUp:
		rl.DrawTriangle(
			rl.Vector2{X: float32(x + half), Y: float32(y)},
			rl.Vector2{X: float32(x), Y: float32(y + half)},
			rl.Vector2{X: float32(x + r.cellSize), Y: float32(y + half)},
			rl.Yellow)
	}
}

func (r *Renderer) drawHUD(s *game.Session) {
	fontSize := int32(20)

	rl.DrawText(fmt.Sprintf("Score: %d", s.Score()), 10, r.hudY, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", s.Stats().BestScore()), 150, r.hudY, fontSize, rl.Gray)

	if labels := s.EffectLabels(); len(labels) > 0 {
		rl.DrawText(strings.Join(labels, " | "), 280, r.hudY, fontSize, rl.Green)
	}

	elapsed := s.Elapsed()
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60
	timeText := fmt.Sprintf("Time: %02d:%02d", minutes, seconds)
	timeWidth := rl.MeasureText(timeText, fontSize)
	rl.DrawText(timeText, r.gridWidth-timeWidth-10, r.hudY, fontSize, rl.White)
}

func (r *Renderer) drawPaused() {
	r.dimGrid()
	text := "PAUSED"
	fontSize := int32(40)
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.gridWidth-width)/2, r.gridHeight/2-fontSize/2, fontSize, rl.White)
}

func (r *Renderer) drawOffer(s *game.Session) {
	r.dimGrid()

	offer := s.Offer()
	panelWidth := int32(380)
	panelHeight := 60 + 48*int32(len(offer.Items)) + 36
	panelX := (r.gridWidth - panelWidth) / 2
	panelY := (r.gridHeight - panelHeight) / 2

	rl.DrawRectangle(panelX, panelY, panelWidth, panelHeight, rl.Color{R: 30, G: 30, B: 30, A: 255})
	rl.DrawRectangleLines(panelX, panelY, panelWidth, panelHeight, rl.Gold)

	title := "Special Offers"
	titleWidth := rl.MeasureText(title, 24)
	rl.DrawText(title, panelX+(panelWidth-titleWidth)/2, panelY+10, 24, rl.Gold)

	rowY := panelY + 52
	for i, item := range offer.Items {
		color := rl.White
		if s.OfferFlashing(i) {
			color = rl.Red
		}
		line := fmt.Sprintf("%d) %s - %d pts", i+1, item.Name, item.Cost)
		rl.DrawText(line, panelX+20, rowY, 20, color)
		rl.DrawText(item.Description, panelX+40, rowY+22, 14, rl.Gray)
		rowY += 48
	}

	hint := "1-3 buy | Enter or Esc close"
	hintWidth := rl.MeasureText(hint, 16)
	rl.DrawText(hint, panelX+(panelWidth-hintWidth)/2, panelY+panelHeight-24, 16, rl.LightGray)
}

func (r *Renderer) drawGameOver(s *game.Session) {
	r.dimGrid()

	title := "GAME OVER"
	titleWidth := rl.MeasureText(title, 44)
	centerX := r.gridWidth / 2
	rl.DrawText(title, centerX-titleWidth/2, r.gridHeight/2-80, 44, rl.Red)

	score := fmt.Sprintf("Score: %d", s.Score())
	scoreWidth := rl.MeasureText(score, 24)
	rl.DrawText(score, centerX-scoreWidth/2, r.gridHeight/2-24, 24, rl.White)

	stats := s.Stats()
	summary := fmt.Sprintf("Games: %d | Best: %d", stats.GamesPlayed(), stats.BestScore())
	summaryWidth := rl.MeasureText(summary, 20)
	rl.DrawText(summary, centerX-summaryWidth/2, r.gridHeight/2+10, 20, rl.Gray)

	hint := "Press R to restart"
	hintWidth := rl.MeasureText(hint, 20)
	rl.DrawText(hint, centerX-hintWidth/2, r.gridHeight/2+44, 20, rl.LightGray)
}

func (r *Renderer) drawFooter() {
	rl.DrawText("Arrows/WASD move | Space pause | R restart", 10, r.footerY, 16, rl.Gray)
}

// dimGrid darkens the play area behind an overlay.
func (r *Renderer) dimGrid() {
	rl.DrawRectangle(0, 0, r.gridWidth, r.gridHeight, rl.Color{R: 0, G: 0, B: 0, A: 180})
}

func brighten(c uint8) uint8 {
	v := int32(float32(c) * 1.3)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
