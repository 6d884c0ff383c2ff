package match

import (
	"fmt"
	"time"

	"github.com/yola1107/ludo/internal/model"
)

/*
	StageID 对局阶段
*/

type StageID int32

const (
	StAwaitRoll StageID = iota // 等待掷骰
	StAwaitMove                // 等待选子
	StGameOver                 // 结束
)

// StageNames maps each stage to its string name.
var StageNames = map[StageID]string{
	StAwaitRoll: "StAwaitRoll",
	StAwaitMove: "StAwaitMove",
	StGameOver:  "StGameOver",
}

// String returns the string representation of the StageID.
func (s StageID) String() string {
	if name, ok := StageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("StageID(%d)", s)
}

/*
	Stage 阶段状态封装
*/

type Stage struct {
	State   StageID
	Prev    StageID
	StartAt time.Time
}

func (s *Stage) GetState() StageID {
	return s.State
}

func (s *Stage) Set(state StageID) {
	s.Prev = s.State
	s.State = state
	s.StartAt = time.Now()
}

func (s *Stage) Desc() string {
	return fmt.Sprintf("[%d->%d, %v -> %v]", int32(s.Prev), int32(s.State), s.Prev, s.State)
}

// RollOutcome is the result of a roll.
type RollOutcome struct {
	Player       int32 `json:"player"`
	Value        int32 `json:"value"`
	HasLegalMove bool  `json:"has_legal_move"`
	Skipped      bool  `json:"skipped"` // no legal move, turn passed
	Next         int32 `json:"next"`    // player to act next
}

// MoveOutcome is the result of a successful selection.
type MoveOutcome struct {
	Player    int32          `json:"player"`
	PieceID   int32          `json:"piece_id"`
	Roll      int32          `json:"roll"`
	From      model.Position `json:"from"`
	To        model.Position `json:"to"`
	NewZone   model.Zone     `json:"new_zone"`
	Captured  []int32        `json:"captured"`
	BonusTurn bool           `json:"bonus_turn"`
	Winner    int32          `json:"winner"` // -1 while the game goes on
	Next      int32          `json:"next"`
}

// HasWinner reports whether the move ended the game.
func (o *MoveOutcome) HasWinner() bool {
	return o.Winner != NoWinner
}
