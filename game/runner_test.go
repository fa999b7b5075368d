package game

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"

	"torus-snake/game/types"
)

type drawnCell struct {
	p            types.Point
	fill, border color.RGBA
}

type fakeRenderer struct {
	clears     []color.RGBA
	cells      []drawnCell
	presents   int
	titles     []string
	presentErr error
}

func (r *fakeRenderer) Clear(c color.RGBA) {
	r.clears = append(r.clears, c)
	r.cells = r.cells[:0]
}

func (r *fakeRenderer) DrawCell(p types.Point, fill, border color.RGBA) {
	r.cells = append(r.cells, drawnCell{p: p, fill: fill, border: border})
}

func (r *fakeRenderer) Present() error {
	r.presents++
	return r.presentErr
}

func (r *fakeRenderer) SetTitle(title string) {
	r.titles = append(r.titles, title)
}

// fakeInput replays batches, then asks to quit.
type fakeInput struct {
	batches [][]Event
	err     error
	polls   int
}

func (in *fakeInput) Poll() ([]Event, error) {
	in.polls++
	if in.err != nil {
		return nil, in.err
	}
	if len(in.batches) == 0 {
		return []Event{{Kind: EventQuit}}, nil
	}
	batch := in.batches[0]
	in.batches = in.batches[1:]
	return batch, nil
}

type fakePacer struct {
	rates []int
}

func (p *fakePacer) WaitForNextTick(rate int) {
	p.rates = append(p.rates, rate)
}

type fakeSnapshots struct {
	calls int
}

func (s *fakeSnapshots) Snapshot(g *Game, pal Palette) (string, error) {
	s.calls++
	return "frame.png", nil
}

type fakeReloader struct {
	pal  Palette
	sent bool
}

func (r *fakeReloader) Reload() (Palette, bool) {
	if r.sent {
		return Palette{}, false
	}
	r.sent = true
	return r.pal, true
}

func newTestRunner(t *testing.T, batches ...[]Event) (*Runner, *fakeRenderer, *fakeInput, *fakePacer) {
	t.Helper()
	g := newTestGame(t, board, 1)
	g.foodMgr.Place(types.Point{X: 0, Y: 0})
	renderer := &fakeRenderer{}
	input := &fakeInput{batches: batches}
	pacer := &fakePacer{}
	return &Runner{
		Game:     g,
		Renderer: renderer,
		Input:    input,
		Pacer:    pacer,
		Palette:  DefaultPalette(),
		Title:    "Snake",
	}, renderer, input, pacer
}

func TestRunQuitsBeforeFirstTick(t *testing.T) {
	r, renderer, _, pacer := newTestRunner(t)
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Game.Ticks != 0 || renderer.presents != 0 || len(pacer.rates) != 0 {
		t.Errorf("ticks=%d presents=%d waits=%d, want none", r.Game.Ticks, renderer.presents, len(pacer.rates))
	}
	if len(renderer.titles) != 1 || renderer.titles[0] != "Snake. Speed: 10, Score: 0" {
		t.Errorf("titles = %q", renderer.titles)
	}
}

func TestRunTicksAndPaces(t *testing.T) {
	r, renderer, _, pacer := newTestRunner(t, nil, nil, nil)
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.Game.Ticks != 3 || renderer.presents != 3 {
		t.Errorf("ticks=%d presents=%d, want 3", r.Game.Ticks, renderer.presents)
	}
	if len(pacer.rates) != 3 || pacer.rates[0] != 10 {
		t.Errorf("pacer rates = %v, want three waits at 10", pacer.rates)
	}
	if head := r.Game.GetSnake().Head(); head != (types.Point{X: 19, Y: 12}) {
		t.Errorf("head = %v, want (19,12)", head)
	}
}

func TestRunSteersFromKeys(t *testing.T) {
	r, _, _, _ := newTestRunner(t,
		[]Event{{Kind: EventKeyDown, Key: KeyLeft}, {Kind: EventKeyDown, Key: KeyUp}},
	)
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if head := r.Game.GetSnake().Head(); head != (types.Point{X: 16, Y: 11}) {
		t.Errorf("head = %v, want (16,11)", head)
	}
}

func TestRunEscapeQuits(t *testing.T) {
	r, _, input, _ := newTestRunner(t, nil, []Event{{Kind: EventKeyDown, Key: KeyEscape}}, nil)
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if input.polls != 2 || r.Game.Ticks != 1 {
		t.Errorf("polls=%d ticks=%d, want 2/1", input.polls, r.Game.Ticks)
	}
}

func TestRunUpdatesTitleOnScore(t *testing.T) {
	r, renderer, _, pacer := newTestRunner(t, nil)
	r.Game.foodMgr.Place(types.Point{X: 17, Y: 12})
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := renderer.titles[len(renderer.titles)-1]; got != "Snake. Speed: 11, Score: 1" {
		t.Errorf("title = %q", got)
	}
	if pacer.rates[0] != 11 {
		t.Errorf("pacer rate = %d, want 11", pacer.rates[0])
	}
}

func TestRunInputErrorIsFatal(t *testing.T) {
	r, _, input, _ := newTestRunner(t)
	errBroken := errors.New("device gone")
	input.err = errBroken

	err := r.Run()
	if !errors.Is(err, errBroken) {
		t.Fatalf("err = %v, want wrapped device error", err)
	}
}

func TestRunPresentErrorIsFatal(t *testing.T) {
	r, renderer, _, _ := newTestRunner(t, nil, nil)
	errPresent := errors.New("swap failed")
	renderer.presentErr = errPresent

	if err := r.Run(); !errors.Is(err, errPresent) {
		t.Fatalf("err = %v, want wrapped present error", err)
	}
	if r.Game.Ticks != 1 {
		t.Errorf("ticks = %d, want 1", r.Game.Ticks)
	}
}

func TestRunSnapshotKey(t *testing.T) {
	r, _, _, _ := newTestRunner(t, []Event{{Kind: EventKeyDown, Key: KeySnapshot}})
	snaps := &fakeSnapshots{}
	r.Snapshots = snaps
	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if snaps.calls != 1 {
		t.Errorf("snapshot calls = %d, want 1", snaps.calls)
	}
}

func TestRunAppliesReloadedPalette(t *testing.T) {
	r, renderer, _, _ := newTestRunner(t, nil)
	pal := DefaultPalette()
	pal.Background = color.RGBA{R: 10, G: 20, B: 30, A: 255}
	r.Reloader = &fakeReloader{pal: pal}

	if err := r.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(renderer.clears) != 1 || renderer.clears[0] != pal.Background {
		t.Errorf("clears = %v, want %v", renderer.clears, pal.Background)
	}
}

func TestDrawFrameOrder(t *testing.T) {
	g := newTestGame(t, board, 1)
	g.foodMgr.Place(types.Point{X: 0, Y: 0})
	if _, err := g.Tick(); err != nil {
		t.Fatal(err)
	}
	pal := DefaultPalette()
	r := &fakeRenderer{}
	if err := DrawFrame(r, g, pal); err != nil {
		t.Fatal(err)
	}

	want := []drawnCell{
		{p: types.Point{X: 17, Y: 12}, fill: pal.Snake, border: pal.Border},
		{p: types.Point{X: 16, Y: 12}, fill: pal.Background, border: pal.Background},
		{p: types.Point{X: 0, Y: 0}, fill: pal.Food, border: pal.Border},
	}
	if len(r.cells) != len(want) {
		t.Fatalf("drew %d cells, want %d: %+v", len(r.cells), len(want), r.cells)
	}
	for i := range want {
		if r.cells[i] != want[i] {
			t.Errorf("cell %d = %+v, want %+v", i, r.cells[i], want[i])
		}
	}
	if r.clears[0] != pal.Background || r.presents != 1 {
		t.Errorf("clear=%v presents=%d", r.clears[0], r.presents)
	}
}

func TestDrawFrameKeepsHeadOnFreedTailCell(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	g := newTestGame(t, grid, 1)
	snake := g.GetSnake()
	for i := 0; i < 3; i++ {
		snake.Grow()
	}
	// A full row: the head wraps into the cell the tail leaves.
	snake.Body = []types.Point{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	g.foodMgr.Place(types.Point{X: 2, Y: 2})

	outcome, err := g.Tick()
	if err != nil || outcome != Moved {
		t.Fatalf("tick: %v %v", outcome, err)
	}
	head := snake.Head()
	if last, ok := g.Erased(); !ok || last != head {
		t.Fatalf("erased %v,%v, want the head cell %v", last, ok, head)
	}

	pal := DefaultPalette()
	r := &fakeRenderer{}
	if err := DrawFrame(r, g, pal); err != nil {
		t.Fatal(err)
	}
	var final drawnCell
	for _, c := range r.cells {
		if c.p == head {
			final = c
		}
	}
	if final.fill != pal.Snake {
		t.Errorf("head %v painted %v last, want snake colour", head, final.fill)
	}
}
