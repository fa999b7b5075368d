package entity

import (
	"torus-snake/game/types"
)

// Snake is the player's body, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction

	grid         types.Grid
	targetLength int
	pending      types.Direction
	last         types.Point
	hasLast      bool
}

func NewSnake(grid types.Grid, startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:         []types.Point{startPos},
		Direction:    dir,
		grid:         grid,
		targetLength: 1,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

// NextHead is the cell the head moves into on the next Advance.
func (s *Snake) NextHead() types.Point {
	return s.grid.Wrap(s.Head(), s.Direction)
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) TargetLength() int {
	return s.targetLength
}

// SetPendingDirection queues dir for the next tick. A reversal of the current
// direction is ignored; a later call in the same tick overwrites an earlier one.
func (s *Snake) SetPendingDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// ApplyPendingDirection makes the queued direction current.
func (s *Snake) ApplyPendingDirection() {
	if s.pending == 0 {
		return
	}
	s.Direction = s.pending
	s.pending = 0
}

// Advance moves the head one cell. The tail is dropped only when the body is
// already at its target length; the dropped cell is kept for Erased.
func (s *Snake) Advance() {
	newHead := s.NextHead()

	body := make([]types.Point, 0, len(s.Body)+1)
	body = append(body, newHead)
	s.Body = append(body, s.Body...)

	if len(s.Body) > s.targetLength {
		s.last = s.Body[len(s.Body)-1]
		s.hasLast = true
		s.Body = s.Body[:len(s.Body)-1]
	} else {
		s.hasLast = false
	}
}

// Erased returns the tail cell dropped by the last Advance, if any.
func (s *Snake) Erased() (types.Point, bool) {
	return s.last, s.hasLast
}

// IsSelfColliding reports whether the head overlaps any other segment.
func (s *Snake) IsSelfColliding() bool {
	if len(s.Body) == 1 {
		return false
	}
	head := s.Head()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Grow raises the target length; the extra segment appears on the next Advance.
func (s *Snake) Grow() {
	s.targetLength++
}

// Reset puts a length 1 snake on the board centre heading in a random direction.
func (s *Snake) Reset(rng types.Rand) {
	s.Body = []types.Point{s.grid.Center()}
	s.Direction = types.RandomDirection(rng)
	s.targetLength = 1
	s.pending = 0
	s.hasLast = false
}

// Cells returns the set of occupied cells.
func (s *Snake) Cells() types.CellSet {
	return types.NewCellSet(s.Body...)
}

func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}
