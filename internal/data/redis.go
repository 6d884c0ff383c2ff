package data

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"github.com/yola1107/ludo/internal/biz"
)

const (
	winsKey    = "ludo:wins"
	resultsKey = "ludo:results"
	maxResults = 100
)

type redisRepo struct {
	rdb *redis.Client
	log *log.Helper
}

func newRedisRepo(rdb *redis.Client, logger log.Logger) *redisRepo {
	return &redisRepo{rdb: rdb, log: log.NewHelper(log.With(logger, "module", "data/redis"))}
}

func (r *redisRepo) Save(ctx context.Context, res *biz.Result) error {
	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, winsKey, strconv.Itoa(int(res.Winner)), 1)
		pipe.LPush(ctx, resultsKey, b)
		pipe.LTrim(ctx, resultsKey, 0, maxResults-1)
		return nil
	})
	if err != nil {
		r.log.WithContext(ctx).Errorf("save result failed. match=%s err=%v", res.MatchID, err)
	}
	return err
}

func (r *redisRepo) Wins(ctx context.Context) (map[int32]int64, error) {
	m, err := r.rdb.HGetAll(ctx, winsKey).Result()
	if err != nil {
		return nil, err
	}
	wins := make(map[int32]int64, len(m))
	for k, v := range m {
		id, err1 := strconv.ParseInt(k, 10, 32)
		n, err2 := strconv.ParseInt(v, 10, 64)
		if err1 != nil || err2 != nil {
			r.log.WithContext(ctx).Warnf("bad wins field %q=%q", k, v)
			continue
		}
		wins[int32(id)] = n
	}
	return wins, nil
}

func (r *redisRepo) Recent(ctx context.Context, n int) ([]*biz.Result, error) {
	if n <= 0 {
		return []*biz.Result{}, nil
	}
	vals, err := r.rdb.LRange(ctx, resultsKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(vals, func(v string, _ int) (*biz.Result, bool) {
		res := &biz.Result{}
		if err := json.Unmarshal([]byte(v), res); err != nil {
			r.log.WithContext(ctx).Warnf("bad result entry: %v", err)
			return nil, false
		}
		return res, true
	}), nil
}
