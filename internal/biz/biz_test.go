package biz

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"

	"github.com/yola1107/ludo/internal/biz/match"
	"github.com/yola1107/ludo/internal/conf"
	"github.com/yola1107/ludo/internal/model"
)

type fakeRepo struct {
	mu      sync.Mutex
	results []*Result
	err     error
}

func (f *fakeRepo) Save(_ context.Context, r *Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.results = append(f.results, r)
	return nil
}

func (f *fakeRepo) Wins(context.Context) (map[int32]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	wins := map[int32]int64{}
	for _, r := range f.results {
		wins[r.Winner]++
	}
	return wins, nil
}

func (f *fakeRepo) Recent(_ context.Context, n int) ([]*Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results[:min(n, len(f.results))], nil
}

func newTestUsecase(repo ResultRepo) *Usecase {
	return NewUsecase(conf.Default().Match, repo, log.DefaultLogger)
}

// 把红方放到差一步获胜的位置
func almostWon(m *match.Match) {
	b := m.Board()
	for slot := int32(0); slot < 3; slot++ {
		b.Place(model.PieceID(0, slot), model.Position{Zone: model.ZoneGoal, Index: model.NoIndex})
	}
	b.Place(model.PieceID(0, 3), model.Position{Zone: model.ZoneLane, Index: 4})
}

func TestUsecaseSavesWinner(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo)
	ctx := context.Background()

	m := uc.NewMatch(ctx, match.WithDice(match.NewScriptedDice(1)))
	almostWon(m)

	_, err := uc.Roll(ctx, m)
	require.NoError(t, err)
	out, err := uc.Select(ctx, m, model.PieceID(0, 3))
	require.NoError(t, err)
	require.True(t, out.HasWinner())

	require.Len(t, repo.results, 1)
	require.Equal(t, m.ID(), repo.results[0].MatchID)
	require.Equal(t, int32(0), repo.results[0].Winner)
	require.Equal(t, int32(1), repo.results[0].Turns)

	wins, err := uc.Wins(ctx)
	require.NoError(t, err)
	require.Equal(t, map[int32]int64{0: 1}, wins)

	recent, err := uc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
}

func TestUsecaseNoSaveWithoutWinner(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUsecase(repo)
	ctx := context.Background()

	m := uc.NewMatch(ctx, match.WithDice(match.NewScriptedDice(6)))
	_, err := uc.Roll(ctx, m)
	require.NoError(t, err)
	_, err = uc.Select(ctx, m, 0)
	require.NoError(t, err)
	require.Empty(t, repo.results)
}

func TestUsecaseSaveErrorKeepsOutcome(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{err: errors.New("down")})
	ctx := context.Background()

	m := uc.NewMatch(ctx, match.WithDice(match.NewScriptedDice(1)))
	almostWon(m)
	_, err := uc.Roll(ctx, m)
	require.NoError(t, err)
	out, err := uc.Select(ctx, m, model.PieceID(0, 3))
	require.NoError(t, err)
	require.Equal(t, int32(0), out.Winner)
	require.True(t, m.IsOver())
}

func TestUsecaseCanceledContext(t *testing.T) {
	uc := newTestUsecase(&fakeRepo{})
	ctx, cancel := context.WithCancel(context.Background())
	m := uc.NewMatch(ctx)
	cancel()

	_, err := uc.Roll(ctx, m)
	require.ErrorIs(t, err, context.Canceled)
	_, err = uc.Select(ctx, m, 0)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, match.StAwaitRoll, m.Stage())
}

func TestUsecaseMatchLog(t *testing.T) {
	c := conf.Default().Match
	c.LogCache.Open = true
	c.LogCache.Directory = t.TempDir()
	uc := NewUsecase(c, &fakeRepo{}, log.DefaultLogger)

	m := uc.NewMatch(context.Background(), match.WithID("abc"))
	require.NoError(t, m.Close())
	require.FileExists(t, c.LogCache.Directory+"/match_abc.log")
}
