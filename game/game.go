package game

import (
	"github.com/pkg/errors"

	"torus-snake/game/entity"
	"torus-snake/game/manager"
	"torus-snake/game/types"
)

// Settings are the tuning knobs of the speed counter.
type Settings struct {
	InitialSpeed int // ticks per second at the start of a round
	SpeedStep    int // added to the speed for every food eaten
}

// Outcome describes what a single tick did.
type Outcome int

const (
	Moved Outcome = iota
	Ate
	Collided
	Cleared // the snake filled the board
)

func (o Outcome) String() string {
	switch o {
	case Ate:
		return "ate"
	case Collided:
		return "collided"
	case Cleared:
		return "cleared"
	}
	return "moved"
}

// EntityKind tags what an Entity is, so one draw routine handles all of them.
type EntityKind int

const (
	EntitySnake EntityKind = iota
	EntityFood
)

type Entity struct {
	Kind  EntityKind
	Cells []types.Point
}

type Game struct {
	Grid  types.Grid
	Ticks int

	snake        *entity.Snake
	rng          types.Rand
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewGame starts a length 1 snake on the centre cell heading right and places
// the first food.
func NewGame(grid types.Grid, rng types.Rand, settings Settings) (*Game, error) {
	if grid.Width < 2 || grid.Height < 2 {
		return nil, errors.Errorf("grid %dx%d too small", grid.Width, grid.Height)
	}
	if settings.InitialSpeed < 1 {
		return nil, errors.Errorf("initial speed %d must be positive", settings.InitialSpeed)
	}

	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Grid:         grid,
		snake:        entity.NewSnake(grid, grid.Center(), types.Right),
		rng:          rng,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(settings.InitialSpeed, settings.SpeedStep),
	}
	if err := g.foodMgr.Relocate(g.snake); err != nil {
		return nil, errors.Wrap(err, "place initial food")
	}
	return g, nil
}

// Steer queues a direction change for the next tick. Reversals are ignored.
func (g *Game) Steer(dir types.Direction) bool {
	return g.snake.SetPendingDirection(dir)
}

// Tick advances the game by one step. Food is eaten when the head moves onto
// it; self collision is checked after the move, against every other segment.
func (g *Game) Tick() (Outcome, error) {
	g.Ticks++
	g.snake.ApplyPendingDirection()

	ate := g.collisionMgr.IsFoodCollision(g.snake.NextHead(), g.foodMgr.Position())
	if ate {
		g.snake.Grow()
		g.stateMgr.RecordFood()
	}

	g.snake.Advance()

	if g.collisionMgr.Check(g.snake) == manager.SelfCollision {
		if err := g.reset(); err != nil {
			return Collided, err
		}
		return Collided, nil
	}

	if !ate {
		return Moved, nil
	}

	err := g.foodMgr.Relocate(g.snake)
	switch {
	case err == nil:
		return Ate, nil
	case errors.Is(err, entity.ErrBoardFull):
		if err := g.reset(); err != nil {
			return Cleared, err
		}
		return Cleared, nil
	default:
		return Ate, errors.Wrap(err, "relocate food")
	}
}

func (g *Game) reset() error {
	g.snake.Reset(g.rng)
	g.stateMgr.Reset()
	if err := g.foodMgr.Relocate(g.snake); err != nil {
		return errors.Wrap(err, "relocate food after reset")
	}
	return nil
}

// Entities lists what is on the board, snake first.
func (g *Game) Entities() []Entity {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)
	return []Entity{
		{Kind: EntitySnake, Cells: body},
		{Kind: EntityFood, Cells: []types.Point{g.foodMgr.Position()}},
	}
}

// Erased returns the tail cell vacated by the last tick, if any.
func (g *Game) Erased() (types.Point, bool) {
	return g.snake.Erased()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodMgr.Position()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) Speed() int {
	return g.stateMgr.Speed()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) Rounds() int {
	return g.stateMgr.Rounds()
}

// Title formats the window caption from the current score and speed.
func (g *Game) Title(base string) string {
	return g.stateMgr.Title(base)
}
