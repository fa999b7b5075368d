package game

import (
	"image/color"
	"log"

	"github.com/pkg/errors"

	"torus-snake/game/types"
)

// Key is a keyboard key the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeySnapshot
)

type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
)

type Event struct {
	Kind EventKind
	Key  Key
}

// Renderer draws one frame at a time.
type Renderer interface {
	Clear(c color.RGBA)
	DrawCell(p types.Point, fill, border color.RGBA)
	Present() error
	SetTitle(title string)
}

// InputSource hands out the events queued since the last call.
type InputSource interface {
	Poll() ([]Event, error)
}

// FramePacer blocks until the next tick is due at rate ticks per second.
type FramePacer interface {
	WaitForNextTick(rate int)
}

// Snapshotter writes the current frame somewhere and returns where.
type Snapshotter interface {
	Snapshot(g *Game, pal Palette) (string, error)
}

// Reloader reports a new palette when the configuration changes.
type Reloader interface {
	Reload() (Palette, bool)
}

type Palette struct {
	Background color.RGBA
	Border     color.RGBA
	Snake      color.RGBA
	Food       color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Border:     color.RGBA{R: 93, G: 216, B: 228, A: 255},
		Snake:      color.RGBA{R: 0, G: 255, B: 0, A: 255},
		Food:       color.RGBA{R: 255, G: 0, B: 0, A: 255},
	}
}

func (p Palette) fill(kind EntityKind) color.RGBA {
	if kind == EntityFood {
		return p.Food
	}
	return p.Snake
}

// DrawFrame renders the board: snake, the vacated tail cell, then food. The
// tail cell is only erased while it is empty; the head may have moved into it.
func DrawFrame(r Renderer, g *Game, pal Palette) error {
	r.Clear(pal.Background)
	for _, e := range g.Entities() {
		for _, cell := range e.Cells {
			r.DrawCell(cell, pal.fill(e.Kind), pal.Border)
		}
		if e.Kind == EntitySnake {
			if last, ok := g.Erased(); ok && !g.GetSnake().Occupies(last) {
				r.DrawCell(last, pal.Background, pal.Background)
			}
		}
	}
	return r.Present()
}

// Runner owns the main loop.
type Runner struct {
	Game     *Game
	Renderer Renderer
	Input    InputSource
	Pacer    FramePacer
	Palette  Palette
	Title    string

	// Optional.
	Snapshots Snapshotter
	Reloader  Reloader
}

// Run loops until a quit event arrives. Any input or rendering error ends the
// loop and is returned.
func (r *Runner) Run() error {
	r.Renderer.SetTitle(r.Game.Title(r.Title))

	for {
		events, err := r.Input.Poll()
		if err != nil {
			return errors.Wrap(err, "poll input")
		}
		for _, ev := range events {
			if quit := r.handle(ev); quit {
				log.Printf("quit after %d ticks, high score %d", r.Game.Ticks, r.Game.HighScore())
				return nil
			}
		}

		if r.Reloader != nil {
			if pal, ok := r.Reloader.Reload(); ok {
				r.Palette = pal
				log.Printf("palette reloaded")
			}
		}

		score, speed := r.Game.Score(), r.Game.Speed()
		outcome, err := r.Game.Tick()
		if err != nil {
			return errors.Wrapf(err, "tick %d", r.Game.Ticks)
		}
		switch outcome {
		case Collided:
			log.Printf("snake bit itself at score %d, resetting", score)
		case Cleared:
			log.Printf("board cleared at score %d, resetting", score+1)
		}
		if r.Game.Score() != score || r.Game.Speed() != speed {
			r.Renderer.SetTitle(r.Game.Title(r.Title))
		}

		if err := DrawFrame(r.Renderer, r.Game, r.Palette); err != nil {
			return errors.Wrap(err, "render")
		}

		r.Pacer.WaitForNextTick(r.Game.Speed())
	}
}

func (r *Runner) handle(ev Event) bool {
	if ev.Kind == EventQuit {
		return true
	}
	switch ev.Key {
	case KeyUp:
		r.Game.Steer(types.Up)
	case KeyDown:
		r.Game.Steer(types.Down)
	case KeyLeft:
		r.Game.Steer(types.Left)
	case KeyRight:
		r.Game.Steer(types.Right)
	case KeyEscape:
		return true
	case KeySnapshot:
		if r.Snapshots == nil {
			return false
		}
		path, err := r.Snapshots.Snapshot(r.Game, r.Palette)
		if err != nil {
			log.Printf("snapshot failed: %v", err)
			return false
		}
		log.Printf("snapshot written to %s", path)
	}
	return false
}
