package match

import (
	"fmt"
	"strconv"

	"github.com/yola1107/ludo/internal/model"
	"github.com/yola1107/ludo/pkg/codes"
)

/*
	对局主逻辑

	StAwaitRoll --Roll--> StAwaitMove   有可移动棋子
	StAwaitRoll --Roll--> StAwaitRoll   无可移动棋子, 轮到下一家
	StAwaitMove --Select--> StAwaitRoll 掷出 6 同一玩家再掷, 否则下一家
	StAwaitMove --Select--> StGameOver  四枚棋子全部到达终点
*/

// Roll draws a value for the active player. With no legal move the roll is
// consumed and the turn passes.
func (m *Match) Roll() (*RollOutcome, error) {
	if err := m.expect(StAwaitRoll, "roll"); err != nil {
		return nil, err
	}

	value := m.dice.Roll()
	if value < model.MinRoll || value > model.MaxRoll {
		err := codes.ErrBadDice.WithMetadata(map[string]string{
			"value": strconv.Itoa(int(value)),
			"want":  fmt.Sprintf("%d..%d", model.MinRoll, model.MaxRoll),
		})
		m.mLog.reject("roll", err)
		return nil, err
	}

	p := m.activePlayer()
	m.turns++
	m.roll = value
	movable := p.HasLegalMove(value)

	out := &RollOutcome{Player: m.active, Value: value, HasLegalMove: movable}
	m.mLog.dice(p, value, movable)
	m.log.Debugf("Roll: p=%v, dice=%d, movable=%v", p.Desc(), value, movable)

	if movable {
		m.updateStage(StAwaitMove)
		out.Next = m.active
		return out, nil
	}

	// 无法移动，直接结束本轮
	m.endPlayerTurn()
	out.Skipped = true
	out.Next = m.active
	return out, nil
}

// LegalMoves returns the ids of the active player's pieces that can move the
// current roll. It is empty unless a selection is awaited.
func (m *Match) LegalMoves() []int32 {
	if m.stage.GetState() != StAwaitMove {
		return []int32{}
	}
	return m.activePlayer().Movable(m.roll)
}

// CanSelect reports whether Select(pieceID) would be accepted.
func (m *Match) CanSelect(pieceID int32) bool {
	return m.checkSelect(pieceID) == nil
}

// Select moves one of the active player's pieces by the current roll.
func (m *Match) Select(pieceID int32) (*MoveOutcome, error) {
	if err := m.checkSelect(pieceID); err != nil {
		m.mLog.reject("select", err)
		return nil, err
	}

	p := m.activePlayer()
	roll := m.roll
	step := m.board.Move(pieceID, roll)
	m.kills += int32(len(step.Killed))

	out := &MoveOutcome{
		Player:   m.active,
		PieceID:  pieceID,
		Roll:     roll,
		From:     step.From,
		To:       step.To,
		NewZone:  step.To.Zone,
		Captured: step.KilledIDs(),
		Winner:   NoWinner,
	}

	if p.IsFinished() {
		m.winner = m.active
		m.roll = 0
		m.updateStage(StGameOver)
		out.Winner = m.winner
		out.Next = NoWinner
		m.mLog.move(p, step, false)
		m.mLog.end(p, m.turns)
		m.log.Infof("match over. winner=%s %s", p.Color(), m.Desc())
		return out, nil
	}

	// 回合控制
	if roll == model.BonusRoll {
		// 奖励再掷一次骰子
		out.BonusTurn = true
		m.repeatPlayerTurn()
	} else {
		m.endPlayerTurn()
	}
	out.Next = m.active

	m.mLog.move(p, step, out.BonusTurn)
	m.log.Debugf("Select: p=%v, id=%d, x=%d, %v -> %v, killed=%v, bonus=%v",
		p.Desc(), pieceID, roll, step.From, step.To, out.Captured, out.BonusTurn)
	return out, nil
}

func (m *Match) checkSelect(pieceID int32) error {
	if err := m.expect(StAwaitMove, "select"); err != nil {
		return err
	}
	md := map[string]string{
		"piece":  strconv.Itoa(int(pieceID)),
		"roll":   strconv.Itoa(int(m.roll)),
		"active": strconv.Itoa(int(m.active)),
	}
	piece := m.board.GetPieceByID(pieceID)
	if piece == nil {
		md["reason"] = "unknown piece"
		return codes.ErrIllegalSelection.WithMetadata(md)
	}
	if piece.Owner() != m.active {
		md["reason"] = "not your piece"
		return codes.ErrIllegalSelection.WithMetadata(md)
	}
	if ok, code := piece.Check(m.roll); !ok {
		md["reason"] = "cannot move"
		md["code"] = strconv.Itoa(int(code))
		return codes.ErrIllegalSelection.WithMetadata(md)
	}
	return nil
}

// expect rejects an operation outside its stage.
func (m *Match) expect(state StageID, op string) error {
	cur := m.stage.GetState()
	if cur == state {
		return nil
	}
	md := map[string]string{"op": op, "stage": cur.String()}
	if cur == StGameOver {
		return codes.ErrGameAlreadyOver.WithMetadata(md)
	}
	return codes.ErrInvalidStateTransition.WithMetadata(md)
}

// repeatPlayerTurn keeps the active player and waits for another roll.
func (m *Match) repeatPlayerTurn() {
	m.roll = 0
	m.updateStage(StAwaitRoll)
}

// endPlayerTurn passes the turn to the next player.
func (m *Match) endPlayerTurn() {
	m.roll = 0
	m.active = m.nextPlayer()
	m.updateStage(StAwaitRoll)
}
