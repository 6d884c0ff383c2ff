// Package geometry maps abstract track positions to cells of a 15x15 board.
// It is presentation data: the rules engine never imports it.
package geometry

import (
	"fmt"

	"github.com/yola1107/ludo/internal/model"
)

const BoardSize = 15

// Cell is a board coordinate, X to the right and Y down.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Table is built once by NewTable and never mutated.
type Table struct {
	shared [model.TotalPositions]Cell
	lanes  [model.PlayerCount][model.LaneLen]Cell
	bases  [model.PlayerCount][model.PiecesPerPlayer]Cell
}

// segment walks n cells from (x,y) in direction (dx,dy).
type segment struct {
	x, y, dx, dy, n int
}

// Ring, starting on Red's entry cell and running clockwise. Arms are the
// three middle rows/columns (6..8) of the board.
var ring = []segment{
	{1, 6, 1, 0, 5},   // left arm, top row, east
	{6, 5, 0, -1, 6},  // top arm, left column, north
	{7, 0, 1, 0, 1},   // top edge
	{8, 0, 0, 1, 6},   // top arm, right column, south
	{9, 6, 1, 0, 6},   // right arm, top row, east
	{14, 7, 0, 1, 1},  // right edge
	{14, 8, -1, 0, 6}, // right arm, bottom row, west
	{8, 9, 0, 1, 6},   // bottom arm, right column, south
	{7, 14, -1, 0, 1}, // bottom edge
	{6, 14, 0, -1, 6}, // bottom arm, left column, north
	{5, 8, -1, 0, 6},  // left arm, bottom row, west
	{0, 7, 0, -1, 1},  // left edge
	{0, 6, 1, 0, 1},   // corner before Red's entry
}

// Lanes run along the middle row/column of each arm towards the centre.
var lanes = [model.PlayerCount]segment{
	{1, 7, 1, 0, model.LaneLen},   // Red
	{7, 1, 0, 1, model.LaneLen},   // Green
	{13, 7, -1, 0, model.LaneLen}, // Blue
	{7, 13, 0, -1, model.LaneLen}, // Yellow
}

// Yard origins (top-left of each 6x6 corner).
var yards = [model.PlayerCount]Cell{
	{0, 0}, // Red
	{9, 0}, // Green
	{9, 9}, // Blue
	{0, 9}, // Yellow
}

var yardSlots = [model.PiecesPerPlayer]Cell{{1, 1}, {4, 1}, {1, 4}, {4, 4}}

func NewTable() *Table {
	t := &Table{}
	i := 0
	for _, s := range ring {
		for k := 0; k < s.n; k++ {
			t.shared[i] = Cell{s.x + k*s.dx, s.y + k*s.dy}
			i++
		}
	}
	if i != model.TotalPositions {
		panic(fmt.Sprintf("geometry: ring has %d cells, want %d", i, model.TotalPositions))
	}
	for owner, s := range lanes {
		for k := 0; k < s.n; k++ {
			t.lanes[owner][k] = Cell{s.x + k*s.dx, s.y + k*s.dy}
		}
	}
	for owner, y := range yards {
		for slot, off := range yardSlots {
			t.bases[owner][slot] = Cell{y.X + off.X, y.Y + off.Y}
		}
	}
	return t
}

// Shared returns the cell of an absolute ring index.
func (t *Table) Shared(abs int32) Cell {
	return t.shared[abs]
}

// Lane returns the j-th lane cell of owner; j == 5 is the goal.
func (t *Table) Lane(owner, j int32) Cell {
	return t.lanes[owner][j]
}

// Goal returns the goal cell of owner.
func (t *Table) Goal(owner int32) Cell {
	return t.lanes[owner][model.GoalLaneIndex]
}

// Base returns the yard cell of a piece slot.
func (t *Table) Base(owner, slot int32) Cell {
	return t.bases[owner][slot]
}

// Locate returns the cell of a piece standing at pos. slot is only used
// for pieces at base.
func (t *Table) Locate(owner, slot int32, pos model.Position) Cell {
	switch pos.Zone {
	case model.ZoneShared:
		return t.Shared(model.AbsoluteCell(owner, pos.Index))
	case model.ZoneLane:
		return t.Lane(owner, pos.Index)
	case model.ZoneGoal:
		return t.Goal(owner)
	default:
		return t.Base(owner, slot)
	}
}

// PieceCell is Locate for a piece.
func (t *Table) PieceCell(p *model.Piece) Cell {
	return t.Locate(p.Owner(), p.Slot(), p.Position())
}
