package match

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"

	"github.com/yola1107/ludo/internal/model"
)

// NoWinner marks a match still in progress.
const NoWinner int32 = -1

// Match is one game session: four players, the active player, the current
// roll and the winner. It is driven only through Roll and Select and is not
// safe for concurrent use.
type Match struct {
	id     string
	board  *model.Board
	stage  *Stage
	dice   Dice
	active int32 // 当前操作玩家
	roll   int32 // 当前点数, 0 = 未掷骰
	winner int32
	turns  int32 // 掷骰次数
	kills  int32 // 击杀次数
	log    *log.Helper
	logDir string
	mLog   *Log
}

type Option func(*Match)

// WithDice replaces the fair die.
func WithDice(d Dice) Option {
	return func(m *Match) { m.dice = d }
}

// WithID sets the match id instead of a random UUID.
func WithID(id string) Option {
	return func(m *Match) { m.id = id }
}

// WithLogger sets the process logger.
func WithLogger(logger log.Logger) Option {
	return func(m *Match) { m.log = log.NewHelper(logger) }
}

// WithMatchLog writes a per-match log file into dir.
func WithMatchLog(dir string) Option {
	return func(m *Match) { m.logDir = dir }
}

// New creates a match with all pieces at base, player 0 to roll.
func New(opts ...Option) *Match {
	m := &Match{
		id:     uuid.NewString(),
		board:  model.NewBoard(),
		stage:  &Stage{},
		active: 0,
		winner: NoWinner,
		log:    log.NewHelper(log.GetLogger()),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logDir != "" {
		m.mLog = NewMatchLog(m.logDir, m.id)
	}
	if m.dice == nil {
		m.dice = NewRandomDice(0)
	}
	m.stage.Set(StAwaitRoll)
	m.mLog.begin(m.board)
	m.log.Infof("match created. %s", m.Desc())
	return m
}

// Close releases the match log.
func (m *Match) Close() error {
	return m.mLog.Close()
}

func (m *Match) ID() string          { return m.id }
func (m *Match) Stage() StageID      { return m.stage.GetState() }
func (m *Match) Active() int32       { return m.active }
func (m *Match) CurrentRoll() int32  { return m.roll }
func (m *Match) Winner() int32       { return m.winner }
func (m *Match) Turns() int32        { return m.turns }
func (m *Match) Captures() int32     { return m.kills }
func (m *Match) Board() *model.Board { return m.board }

// IsOver reports whether a winner has been set.
func (m *Match) IsOver() bool {
	return m.winner != NoWinner
}

func (m *Match) Desc() string {
	return fmt.Sprintf("(M:%s St:%v active:%d roll:%d winner:%d turns:%d)",
		m.id, m.stage.GetState(), m.active, m.roll, m.winner, m.turns)
}

func (m *Match) activePlayer() *model.Player {
	return m.board.GetPlayer(m.active)
}

func (m *Match) nextPlayer() int32 {
	return (m.active + 1) % model.PlayerCount
}

func (m *Match) updateStage(state StageID) {
	m.stage.Set(state)
	m.mLog.stage(m.stage.Desc(), m.active)
}
