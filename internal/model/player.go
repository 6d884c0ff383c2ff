package model

import (
	"fmt"

	"github.com/samber/lo"
)

var colorNames = [PlayerCount]string{"Red", "Green", "Blue", "Yellow"}

// ColorName is the colour tag of a player id.
func ColorName(id int32) string {
	if id < 0 || id >= PlayerCount {
		return fmt.Sprintf("Player(%d)", id)
	}
	return colorNames[id]
}

// Player owns exactly four pieces, slots 0..3.
type Player struct {
	id     int32
	pieces [PiecesPerPlayer]*Piece
}

func NewPlayer(id int32) *Player {
	p := &Player{id: id}
	for slot := int32(0); slot < PiecesPerPlayer; slot++ {
		p.pieces[slot] = NewPiece(id, slot)
	}
	return p
}

func (p *Player) ID() int32     { return p.id }
func (p *Player) Color() string { return ColorName(p.id) }
func (p *Player) Pieces() []*Piece {
	return p.pieces[:]
}

// Piece returns the piece in slot, nil when out of range.
func (p *Player) Piece(slot int32) *Piece {
	if slot < 0 || slot >= PiecesPerPlayer {
		return nil
	}
	return p.pieces[slot]
}

// HasLegalMove reports whether any piece can move roll.
func (p *Player) HasLegalMove(roll int32) bool {
	return lo.SomeBy(p.Pieces(), func(pc *Piece) bool { return pc.CanMove(roll) })
}

// Movable returns the ids of the pieces that can move roll.
func (p *Player) Movable(roll int32) []int32 {
	return lo.FilterMap(p.Pieces(), func(pc *Piece, _ int) (int32, bool) {
		return pc.ID(), pc.CanMove(roll)
	})
}

// IsFinished reports whether all pieces reached the goal.
func (p *Player) IsFinished() bool {
	return lo.EveryBy(p.Pieces(), func(pc *Piece) bool { return pc.IsArrived() })
}

// ArrivedCount is the number of pieces at the goal.
func (p *Player) ArrivedCount() int {
	return lo.CountBy(p.Pieces(), func(pc *Piece) bool { return pc.IsArrived() })
}

// Progress sums the cells travelled by all pieces.
func (p *Player) Progress() int32 {
	return lo.SumBy(p.Pieces(), func(pc *Piece) int32 { return pc.Progress() })
}

func (p *Player) Desc() string {
	return fmt.Sprintf("(%d %s arrived:%d progress:%d)", p.id, p.Color(), p.ArrivedCount(), p.Progress())
}

func (p *Player) clone() *Player {
	c := &Player{id: p.id}
	for i, pc := range p.pieces {
		c.pieces[i] = pc.Clone()
	}
	return c
}
