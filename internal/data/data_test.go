package data

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"

	"github.com/yola1107/ludo/internal/biz"
	"github.com/yola1107/ludo/internal/conf"
)

func result(i int, winner int32) *biz.Result {
	return &biz.Result{
		MatchID:    fmt.Sprintf("m%d", i),
		Winner:     winner,
		Turns:      int32(10 + i),
		Captures:   int32(i % 3),
		FinishedAt: time.Unix(1700000000+int64(i), 0).UTC(),
	}
}

func testRepo(t *testing.T, repo biz.ResultRepo) {
	ctx := context.Background()

	wins, err := repo.Wins(ctx)
	require.NoError(t, err)
	require.Empty(t, wins)

	for i := 0; i < maxResults+5; i++ {
		require.NoError(t, repo.Save(ctx, result(i, int32(i%2))))
	}

	wins, err = repo.Wins(ctx)
	require.NoError(t, err)
	require.Equal(t, map[int32]int64{0: 53, 1: 52}, wins)

	recent, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	require.Equal(t, result(maxResults+4, 0), recent[0])
	require.Equal(t, "m103", recent[1].MatchID)

	all, err := repo.Recent(ctx, 1000)
	require.NoError(t, err)
	require.Len(t, all, maxResults)

	none, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryRepo(t *testing.T) {
	testRepo(t, newMemoryRepo())
}

func TestMemoryRepoConcurrent(t *testing.T) {
	repo := newMemoryRepo()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = repo.Save(context.Background(), result(j, int32(i%4)))
			}
		}(i)
	}
	wg.Wait()
	wins, err := repo.Wins(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[int32]int64{0: 100, 1: 100, 2: 100, 3: 100}, wins)
}

func TestRedisRepo(t *testing.T) {
	s := miniredis.RunT(t)
	c := &conf.Data{Redis: &conf.Redis{Addr: s.Addr()}}
	d, cleanup, err := NewData(c, log.DefaultLogger, NewRedis(c))
	require.NoError(t, err)
	defer cleanup()

	repo := NewResultRepo(d, log.DefaultLogger)
	require.IsType(t, &redisRepo{}, repo)
	testRepo(t, repo)

	n, err := s.Lpush(resultsKey, "not json")
	require.NoError(t, err)
	require.Equal(t, maxResults+1, n)
	recent, err := repo.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, recent, 1)
}

func TestMemoryRepoWithoutRedis(t *testing.T) {
	c := conf.Default().Data
	require.Nil(t, NewRedis(c))
	d, cleanup, err := NewData(c, log.DefaultLogger, nil)
	require.NoError(t, err)
	defer cleanup()
	require.IsType(t, &memoryRepo{}, NewResultRepo(d, log.DefaultLogger))
}

func TestNewDataRedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	c := &conf.Data{Redis: &conf.Redis{Addr: s.Addr()}}
	s.Close()
	_, _, err := NewData(c, log.DefaultLogger, NewRedis(c))
	require.Error(t, err)
}
