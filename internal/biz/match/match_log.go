package match

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yola1107/ludo/internal/model"
	"github.com/yola1107/ludo/library/log/file"
	"github.com/yola1107/ludo/library/xgo"
)

// Log is the per-match operation log. A nil *Log or a closed cache drops
// every line.
type Log struct {
	matchID string
	logger  *file.Log
}

func NewMatchLog(dir, matchID string) *Log {
	return &Log{
		matchID: matchID,
		logger:  file.NewFileLog(filepath.Join(dir, fmt.Sprintf("match_%s.log", matchID))),
	}
}

func (l *Log) Close() error {
	if l == nil {
		return nil
	}
	return l.logger.Close()
}

func (l *Log) write(msg string, args ...any) {
	if l == nil {
		return
	}
	l.logger.WriteLog(msg, args...)
}

func (l *Log) begin(b *model.Board) {
	if l == nil {
		return
	}
	logs := []string{fmt.Sprintf("[游戏开始] match=%s", l.matchID)}
	for _, p := range b.Players() {
		logs = append(logs, fmt.Sprintf("玩家:%s", p.Desc()))
	}
	l.write(strings.Join(logs, "\r\n"))
}

func (l *Log) stage(s string, active int32) {
	l.write("[状态转移] %s. active=%d", s, active)
}

func (l *Log) dice(p *model.Player, dice int32, movable bool) {
	l.write("[玩家掷骰] 玩家:%s. dice=%d, movable=%v", p.Desc(), dice, movable)
}

func (l *Log) move(p *model.Player, step *model.Step, bonus bool) {
	l.write("[玩家移动] 玩家:%s. [id=%d, x=%d] %v -> %v, eat=%v, bonus=%v, step=%s",
		p.Desc(), step.ID, step.Roll, step.From, step.To, step.KilledIDs(), bonus, xgo.ToJSON(step))
}

func (l *Log) reject(op string, err error) {
	l.write("[非法操作] op=%s err=%v", op, err)
}

func (l *Log) end(winner *model.Player, turns int32) {
	l.write("[GameEnd] 赢家:%s turns=%d", winner.Desc(), turns)
	l.write("\r\n\r\n\r\n")
}
