package ui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"torus-snake/game"
	"torus-snake/game/types"
)

// cellWidth is the number of terminal columns per board cell, so cells look
// roughly square.
const cellWidth = 2

// Terminal renders the board with tcell and reads keys from the same screen.
// The title goes on the row below the board.
type Terminal struct {
	screen tcell.Screen
	grid   types.Grid
	title  string
}

func OpenTerminal(grid types.Grid) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	return NewTerminal(s, grid), nil
}

// NewTerminal wraps an initialised screen.
func NewTerminal(s tcell.Screen, grid types.Grid) *Terminal {
	s.HideCursor()
	return &Terminal{screen: s, grid: grid}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) Clear(c color.RGBA) {
	t.screen.SetStyle(tcell.StyleDefault.Background(tcellColor(c)))
	t.screen.Clear()
}

// DrawCell paints a cell. Terminal cells have no room for a border.
func (t *Terminal) DrawCell(p types.Point, fill, border color.RGBA) {
	style := tcell.StyleDefault.Background(tcellColor(fill)).Foreground(tcellColor(border))
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(p.X*cellWidth+i, p.Y, ' ', nil, style)
	}
}

func (t *Terminal) Present() error {
	for i, r := range []rune(t.title) {
		t.screen.SetContent(i, t.grid.Height, r, nil, tcell.StyleDefault)
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) SetTitle(title string) {
	t.title = title
}

// Poll drains the pending events without blocking.
func (t *Terminal) Poll() ([]game.Event, error) {
	var events []game.Event
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			if e, ok := eventFromKey(ev); ok {
				events = append(events, e)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		case nil:
			// Screen was finalised.
			return append(events, game.Event{Kind: game.EventQuit}), nil
		}
	}
	return events, nil
}

func eventFromKey(ev *tcell.EventKey) (game.Event, bool) {
	key := game.KeyNone
	switch ev.Key() {
	case tcell.KeyUp:
		key = game.KeyUp
	case tcell.KeyDown:
		key = game.KeyDown
	case tcell.KeyLeft:
		key = game.KeyLeft
	case tcell.KeyRight:
		key = game.KeyRight
	case tcell.KeyEscape:
		key = game.KeyEscape
	case tcell.KeyCtrlC:
		return game.Event{Kind: game.EventQuit}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return game.Event{Kind: game.EventQuit}, true
		case 'p':
			key = game.KeySnapshot
		}
	}
	if key == game.KeyNone {
		return game.Event{}, false
	}
	return game.Event{Kind: game.EventKeyDown, Key: key}, true
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
