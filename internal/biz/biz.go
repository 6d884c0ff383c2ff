package biz

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/yola1107/ludo/internal/biz/match"
	"github.com/yola1107/ludo/internal/conf"
)

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(NewUsecase)

// Result is the record of a finished match.
type Result struct {
	MatchID    string    `json:"match_id"`
	Winner     int32     `json:"winner"`
	Turns      int32     `json:"turns"`
	Captures   int32     `json:"captures"`
	FinishedAt time.Time `json:"finished_at"`
}

// ResultRepo stores finished matches.
type ResultRepo interface {
	Save(ctx context.Context, r *Result) error
	Wins(ctx context.Context) (map[int32]int64, error)
	Recent(ctx context.Context, n int) ([]*Result, error)
}

// Usecase creates matches and records their results.
type Usecase struct {
	c      *conf.Match
	repo   ResultRepo
	logger log.Logger
	log    *log.Helper
}

func NewUsecase(c *conf.Match, repo ResultRepo, logger log.Logger) *Usecase {
	return &Usecase{
		c:      c,
		repo:   repo,
		logger: logger,
		log:    log.NewHelper(log.With(logger, "module", "biz")),
	}
}

// NewMatch starts a match with the configured die and match log. Extra
// options are applied last.
func (uc *Usecase) NewMatch(ctx context.Context, opts ...match.Option) *match.Match {
	base := []match.Option{
		match.WithLogger(uc.logger),
		match.WithDice(match.NewRandomDice(uc.c.Seed)),
	}
	if uc.c.LogCache != nil && uc.c.LogCache.Open {
		base = append(base, match.WithMatchLog(uc.c.LogCache.Directory))
	}
	m := match.New(append(base, opts...)...)
	uc.log.WithContext(ctx).Debugf("new match %s", m.ID())
	return m
}

func (uc *Usecase) Roll(ctx context.Context, m *match.Match) (*match.RollOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m.Roll()
}

// Select moves a piece. A winning move is saved before returning.
func (uc *Usecase) Select(ctx context.Context, m *match.Match, pieceID int32) (*match.MoveOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := m.Select(pieceID)
	if err != nil {
		return nil, err
	}
	if !out.HasWinner() {
		return out, nil
	}
	r := &Result{
		MatchID:    m.ID(),
		Winner:     out.Winner,
		Turns:      m.Turns(),
		Captures:   m.Captures(),
		FinishedAt: time.Now(),
	}
	if err := uc.repo.Save(ctx, r); err != nil {
		// 对局结果已定, 保存失败只记录
		uc.log.WithContext(ctx).Errorf("save result failed. match=%s err=%v", m.ID(), err)
	}
	return out, nil
}

// Wins returns the number of wins per player.
func (uc *Usecase) Wins(ctx context.Context) (map[int32]int64, error) {
	return uc.repo.Wins(ctx)
}

// Recent returns up to n results, newest first.
func (uc *Usecase) Recent(ctx context.Context, n int) ([]*Result, error) {
	return uc.repo.Recent(ctx, n)
}
