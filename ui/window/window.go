// Package window is the raylib desktop backend: one window that renders the
// board, reports key presses and paces frames with raylib's target FPS.
package window

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"torus-snake/game"
	"torus-snake/game/types"
)

type Window struct {
	cellSize int32
	fps      int
}

// Open creates the window sized to the grid. rate is the initial tick rate.
func Open(grid types.Grid, cellSize int, title string, rate int) (*Window, error) {
	rl.InitWindow(int32(grid.Width*cellSize), int32(grid.Height*cellSize), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window could not be created")
	}
	// Escape is reported through Poll instead of closing the window behind our back.
	rl.SetExitKey(0)

	w := &Window{cellSize: int32(cellSize)}
	w.WaitForNextTick(rate)
	return w, nil
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) Clear(c color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(c)
}

func (w *Window) DrawCell(p types.Point, fill, border color.RGBA) {
	x := int32(p.X) * w.cellSize
	y := int32(p.Y) * w.cellSize
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, fill)
	rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, border)
}

// Present ends the frame. raylib sleeps here to honour the target FPS.
func (w *Window) Present() error {
	rl.EndDrawing()
	return nil
}

func (w *Window) SetTitle(title string) {
	rl.SetWindowTitle(title)
}

// WaitForNextTick only retunes the target FPS; the wait itself happens in
// EndDrawing.
func (w *Window) WaitForNextTick(rate int) {
	if rate == w.fps {
		return
	}
	rl.SetTargetFPS(int32(rate))
	w.fps = rate
}

func (w *Window) Poll() ([]game.Event, error) {
	if rl.WindowShouldClose() {
		return []game.Event{{Kind: game.EventQuit}}, nil
	}

	var events []game.Event
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if k := keyFromRaylib(key); k != game.KeyNone {
			events = append(events, game.Event{Kind: game.EventKeyDown, Key: k})
		}
	}
	return events, nil
}

func keyFromRaylib(key int32) game.Key {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return game.KeyUp
	case rl.KeyDown, rl.KeyS:
		return game.KeyDown
	case rl.KeyLeft, rl.KeyA:
		return game.KeyLeft
	case rl.KeyRight, rl.KeyD:
		return game.KeyRight
	case rl.KeyEscape, rl.KeyQ:
		return game.KeyEscape
	case rl.KeyF12, rl.KeyP:
		return game.KeySnapshot
	}
	return game.KeyNone
}
