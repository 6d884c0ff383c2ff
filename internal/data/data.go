package data

import (
	"context"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	"github.com/yola1107/ludo/internal/biz"
	"github.com/yola1107/ludo/internal/conf"
	"github.com/yola1107/ludo/pkg/xredis"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewResultRepo, NewRedis)

// Data .
type Data struct {
	redis *redis.Client // nil: 结果只保存在内存
}

// NewData .
func NewData(c *conf.Data, logger log.Logger, rdb *redis.Client) (*Data, func(), error) {
	l := log.NewHelper(logger)
	if rdb != nil {
		if err := xredis.Ping(context.Background(), rdb); err != nil {
			_ = rdb.Close()
			return nil, nil, err
		}
		l.Infof("redis connected. addr=%s db=%d", c.Redis.Addr, c.Redis.Db)
	}
	cleanup := func() {
		l.Info("closing the data resources")
		if rdb != nil {
			_ = rdb.Close()
		}
	}
	return &Data{redis: rdb}, cleanup, nil
}

// NewRedis returns nil when no address is configured.
func NewRedis(c *conf.Data) *redis.Client {
	if c == nil || c.Redis == nil || c.Redis.Addr == "" {
		return nil
	}
	return xredis.NewClient(
		xredis.WithAddress(c.Redis.Addr),
		xredis.WithPassword(c.Redis.Password),
		xredis.WithDB(int(c.Redis.Db)),
	)
}

// NewResultRepo picks the Redis store when a client is available.
func NewResultRepo(data *Data, logger log.Logger) biz.ResultRepo {
	if data.redis != nil {
		return newRedisRepo(data.redis, logger)
	}
	return newMemoryRepo()
}
