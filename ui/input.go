package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// HandleInput polls the pressed keys once per frame and routes them
// to the session: arrows or WASD steer, space toggles pause, R
// restarts, and digits or Enter/Esc act on an open offer.
func HandleInput(s *game.Session) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		s.Move(types.DirUp)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		s.Move(types.DirDown)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		s.Move(types.DirLeft)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		s.Move(types.DirRight)
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		s.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.Restart()
	}

	if s.Offer() == nil {
		return
	}
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		s.PurchaseOffer(0)
	case rl.IsKeyPressed(rl.KeyTwo):
		s.PurchaseOffer(1)
	case rl.IsKeyPressed(rl.KeyThree):
		s.PurchaseOffer(2)
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyEscape):
		s.DismissOffer()
	}
}
