package main

import (
	"flag"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/ui"
)

func main() {
	speed := flag.Int("speed", 100, "Base milliseconds between moves (lower = faster)")
	flag.Parse()

	rl.InitWindow(ui.WindowWidth, ui.WindowHeight, "Snake")
	defer rl.CloseWindow()

	// Esc dismisses offers instead of quitting.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)

	session := game.NewSession(time.Duration(*speed) * time.Millisecond)
	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		ui.HandleInput(session)
		session.Update()
		renderer.Draw(session)
	}
}
