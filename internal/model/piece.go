package model

import "fmt"

// Zone tells which index space a piece's index is read in.
type Zone int32

const (
	ZoneBase   Zone = iota // 基地，未出发
	ZoneShared             // 公共路径
	ZoneLane               // 私有通道
	ZoneGoal               // 终点
)

func (z Zone) String() string {
	switch z {
	case ZoneBase:
		return "base"
	case ZoneShared:
		return "shared"
	case ZoneLane:
		return "lane"
	case ZoneGoal:
		return "goal"
	default:
		return fmt.Sprintf("Zone(%d)", int32(z))
	}
}

const (
	PlayerCount     = 4  // 玩家数
	PiecesPerPlayer = 4  // 每人棋子数
	TotalPieces     = PlayerCount * PiecesPerPlayer
	TotalPositions  = 52 // 公共路径长度
	LaneLen         = 6  // 私有通道长度, 最后一格即终点
	GoalLaneIndex   = LaneLen - 1
	EntryStride     = TotalPositions / PlayerCount // 相邻玩家入口间隔
	StartRoll       = 6                            // 出基地所需点数
	BonusRoll       = 6                            // 奖励回合点数

	MinRoll int32 = 1
	MaxRoll int32 = 6
	NoIndex int32 = -1
)

const (
	MoveOK            int32 = iota // 可移动
	ErrInvalidStep                 // 点数不在 1..6
	ErrBaseMustBeSix               // 基地棋子只能掷 6 出发
	ErrExceedLane                  // 超出终点，必须精确落点
	ErrAlreadyArrived              // 已到终点
)

// Position is a piece location: zone plus an index whose meaning depends on
// the zone (player relative offset on the shared path, lane cell in the lane).
type Position struct {
	Zone  Zone  `json:"zone"`
	Index int32 `json:"index"`
}

var BasePosition = Position{Zone: ZoneBase, Index: NoIndex}

func (p Position) String() string {
	switch p.Zone {
	case ZoneShared, ZoneLane:
		return fmt.Sprintf("%s(%d)", p.Zone, p.Index)
	default:
		return p.Zone.String()
	}
}

// Piece is one token. owner and slot never change.
type Piece struct {
	id    int32
	owner int32
	slot  int32
	pos   Position
}

func NewPiece(owner, slot int32) *Piece {
	return &Piece{
		id:    PieceID(owner, slot),
		owner: owner,
		slot:  slot,
		pos:   BasePosition,
	}
}

// PieceID is the global id of the piece owned by owner in slot.
func PieceID(owner, slot int32) int32 {
	return owner*PiecesPerPlayer + slot
}

func (p *Piece) Desc() string {
	return fmt.Sprintf("[ID:%d owner:%d slot:%d pos:%v cell:%d]", p.id, p.owner, p.slot, p.pos, p.Cell())
}

func (p *Piece) ID() int32          { return p.id }
func (p *Piece) Owner() int32       { return p.owner }
func (p *Piece) Slot() int32        { return p.slot }
func (p *Piece) Zone() Zone         { return p.pos.Zone }
func (p *Piece) Index() int32       { return p.pos.Index }
func (p *Piece) Position() Position { return p.pos }
func (p *Piece) IsAtBase() bool     { return p.pos.Zone == ZoneBase }
func (p *Piece) IsOnShared() bool   { return p.pos.Zone == ZoneShared }
func (p *Piece) IsArrived() bool    { return p.pos.Zone == ZoneGoal }
func (p *Piece) IsEnemy(o *Piece) bool {
	return p.owner != o.owner
}

func (p *Piece) Clone() *Piece {
	cp := *p
	return &cp
}

// Cell returns the absolute ring cell of a piece on the shared path, -1
// otherwise.
func (p *Piece) Cell() int32 {
	if p.pos.Zone != ZoneShared {
		return NoIndex
	}
	return AbsoluteCell(p.owner, p.pos.Index)
}

// AbsoluteCell converts a player relative shared path offset to a ring cell.
func AbsoluteCell(owner, offset int32) int32 {
	return (offset + owner*EntryStride) % TotalPositions
}

// Progress is the number of cells travelled from the entry cell.
func (p *Piece) Progress() int32 {
	switch p.pos.Zone {
	case ZoneShared:
		return p.pos.Index
	case ZoneLane:
		return TotalPositions + p.pos.Index
	case ZoneGoal:
		return TotalPositions + GoalLaneIndex
	default:
		return 0
	}
}

// CanMove reports whether roll is a legal move for the piece.
func (p *Piece) CanMove(roll int32) bool {
	ok, _, _ := calcNextPos(p.pos, roll)
	return ok
}

// Check is CanMove plus the reason code.
func (p *Piece) Check(roll int32) (bool, int32) {
	ok, code, _ := calcNextPos(p.pos, roll)
	return ok, code
}

// move applies roll. An illegal roll leaves the piece where it is.
func (p *Piece) move(roll int32) (from, to Position) {
	from = p.pos
	ok, _, next := calcNextPos(p.pos, roll)
	if !ok {
		return from, from
	}
	p.pos = next
	return from, next
}

// sendHome resets a captured piece. Only shared path pieces can be captured.
func (p *Piece) sendHome() bool {
	if p.pos.Zone != ZoneShared {
		return false
	}
	p.pos = BasePosition
	return true
}

func (p *Piece) setPos(pos Position) {
	p.pos = pos
}

// calcNextPos 核心计算函数：返回是否可移动，错误码，目标位置
func calcNextPos(pos Position, roll int32) (bool, int32, Position) {
	if roll < MinRoll || roll > MaxRoll {
		return false, ErrInvalidStep, pos
	}

	switch pos.Zone {
	case ZoneBase:
		if roll == StartRoll {
			return true, MoveOK, Position{Zone: ZoneShared, Index: 0}
		}
		return false, ErrBaseMustBeSix, pos

	case ZoneShared:
		next := pos.Index + roll
		if next < TotalPositions {
			return true, MoveOK, Position{Zone: ZoneShared, Index: next}
		}
		return enterLane(next-TotalPositions, pos)

	case ZoneLane:
		return enterLane(pos.Index+roll, pos)

	case ZoneGoal:
		return false, ErrAlreadyArrived, pos

	default:
		return false, ErrInvalidStep, pos
	}
}

func enterLane(lane int32, pos Position) (bool, int32, Position) {
	switch {
	case lane == GoalLaneIndex:
		return true, MoveOK, Position{Zone: ZoneGoal, Index: NoIndex}
	case lane < GoalLaneIndex:
		return true, MoveOK, Position{Zone: ZoneLane, Index: lane}
	default:
		return false, ErrExceedLane, pos
	}
}
