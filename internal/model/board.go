package model

import "github.com/samber/lo"

const _MaxSteps = 10 // 保存的最大步数

// Board holds the four players, indexes their pieces by global id and
// resolves captures. Pieces never look at each other; the board does.
type Board struct {
	players [PlayerCount]*Player
	pieces  [TotalPieces]*Piece
	steps   []*Step
}

func NewBoard() *Board {
	b := &Board{}
	for id := int32(0); id < PlayerCount; id++ {
		b.players[id] = NewPlayer(id)
	}
	b.index()
	return b
}

func (b *Board) index() {
	for _, p := range b.players {
		for _, pc := range p.Pieces() {
			b.pieces[pc.ID()] = pc
		}
	}
}

func (b *Board) Players() []*Player {
	return b.players[:]
}

func (b *Board) Pieces() []*Piece {
	return b.pieces[:]
}

// GetPlayer returns the player with id, nil when out of range.
func (b *Board) GetPlayer(id int32) *Player {
	if id < 0 || id >= PlayerCount {
		return nil
	}
	return b.players[id]
}

// GetPieceByID returns the piece with id, nil when out of range.
func (b *Board) GetPieceByID(id int32) *Piece {
	if id < 0 || id >= TotalPieces {
		return nil
	}
	return b.pieces[id]
}

// Steps returns the most recent moves, oldest first.
func (b *Board) Steps() []*Step {
	return b.steps
}

// LastStep returns the most recent move or nil.
func (b *Board) LastStep() *Step {
	if len(b.steps) == 0 {
		return nil
	}
	return b.steps[len(b.steps)-1]
}

// OccupantsAt returns the pieces standing on the absolute ring cell.
func (b *Board) OccupantsAt(cell int32) []*Piece {
	return lo.Filter(b.Pieces(), func(pc *Piece, _ int) bool { return pc.Cell() == cell })
}

// Move moves piece id by roll and resolves captures. A nil step means the id
// is unknown; a step with From == To means the roll was illegal.
func (b *Board) Move(id, roll int32) *Step {
	p := b.GetPieceByID(id)
	if p == nil {
		return nil
	}
	from, to := p.move(roll)
	step := &Step{ID: id, Owner: p.owner, Roll: roll, From: from, To: to}
	if from != to && to.Zone == ZoneShared {
		step.Killed = b.capture(p)
	}
	b.steps = append(b.steps, step)
	if len(b.steps) > _MaxSteps {
		copy(b.steps, b.steps[len(b.steps)-_MaxSteps:])
		b.steps = b.steps[:_MaxSteps]
	}
	return step
}

// capture sends home every enemy piece on the mover's absolute cell.
func (b *Board) capture(mover *Piece) []*KilledInfo {
	cell := mover.Cell()
	var killed []*KilledInfo
	for _, other := range b.pieces {
		if other == mover || !mover.IsEnemy(other) || other.Cell() != cell {
			continue
		}
		from := other.pos
		if other.sendHome() {
			killed = append(killed, &KilledInfo{ID: other.id, Owner: other.owner, From: from, Cell: cell})
		}
	}
	return killed
}

// Undo reverts the most recent move including its captures.
func (b *Board) Undo() *Step {
	if len(b.steps) == 0 {
		return nil
	}
	s := b.steps[len(b.steps)-1]
	if p := b.GetPieceByID(s.ID); p != nil {
		p.setPos(s.From)
	}
	for _, k := range s.Killed {
		if p := b.GetPieceByID(k.ID); p != nil {
			p.setPos(k.From)
		}
	}
	b.steps = b.steps[:len(b.steps)-1]
	return s
}

// Clone deep copies the board, history included.
func (b *Board) Clone() *Board {
	c := &Board{steps: make([]*Step, len(b.steps))}
	for i, p := range b.players {
		c.players[i] = p.clone()
	}
	c.index()
	for i, s := range b.steps {
		c.steps[i] = s.Clone()
	}
	return c
}

// Place puts a piece at pos without running the rules. Used to set up
// positions for analysis and tests.
func (b *Board) Place(id int32, pos Position) bool {
	p := b.GetPieceByID(id)
	if p == nil || !validPosition(pos) {
		return false
	}
	p.setPos(pos)
	return true
}

func validPosition(pos Position) bool {
	switch pos.Zone {
	case ZoneBase, ZoneGoal:
		return pos.Index == NoIndex
	case ZoneShared:
		return pos.Index >= 0 && pos.Index < TotalPositions
	case ZoneLane:
		return pos.Index >= 0 && pos.Index < GoalLaneIndex
	default:
		return false
	}
}
