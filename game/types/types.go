package types

// Grid represents the game grid dimensions in cells. The grid is a torus:
// leaving one edge re-enters from the opposite one.
type Grid struct {
	Width  int
	Height int
}

// Point is a single cell on the grid, addressed by column and row.
type Point struct {
	X, Y int
}

// Direction is one of the four unit moves. The zero value means no direction.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists the valid directions in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Rand is the random source used for every random choice in the game.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the unit vector for d. Up decreases Y (screen coordinates).
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(rng Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Wrap moves p one step in direction d and folds the result back onto the grid.
func (g Grid) Wrap(p Point, d Direction) Point {
	delta := d.Delta()
	return Point{
		X: mod(p.X+delta.X, g.Width),
		Y: mod(p.Y+delta.Y, g.Height),
	}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Area is the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// CellSet is a set of occupied cells.
type CellSet map[Point]struct{}

// NewCellSet builds a set from the given points.
func NewCellSet(points ...Point) CellSet {
	s := make(CellSet, len(points))
	for _, p := range points {
		s.Add(p)
	}
	return s
}

func (s CellSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s CellSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s CellSet) Len() int {
	return len(s)
}
