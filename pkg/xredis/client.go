package xredis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// 默认配置值
const (
	defaultHost        = "127.0.0.1"
	defaultPort        = 6379
	defaultMinIdle     = 1
	defaultMaxIdle     = 4
	defaultPoolSize    = 4
	defaultMaxLifetime = 2 * time.Minute
	defaultMaxIdleTime = 5 * time.Minute
	defaultDialTimeout = 3 * time.Second
)

// ClientOption 配置函数类型
type ClientOption func(*redis.Options)

// NewClient 创建Redis客户端
func NewClient(opts ...ClientOption) *redis.Client {
	options := &redis.Options{
		Addr:            fmt.Sprintf("%s:%d", defaultHost, defaultPort),
		PoolSize:        defaultPoolSize,
		MinIdleConns:    defaultMinIdle,
		MaxIdleConns:    defaultMaxIdle,
		ConnMaxLifetime: defaultMaxLifetime,
		ConnMaxIdleTime: defaultMaxIdleTime,
		DialTimeout:     defaultDialTimeout,
	}
	for _, opt := range opts {
		opt(options)
	}
	return redis.NewClient(options)
}

// WithAddress 设置Redis完整地址, 格式错误时忽略
func WithAddress(addr string) ClientOption {
	return func(o *redis.Options) {
		if _, _, err := net.SplitHostPort(addr); err == nil {
			o.Addr = addr
		}
	}
}

// WithPassword 设置Redis密码
func WithPassword(pass string) ClientOption {
	return func(o *redis.Options) {
		o.Password = pass
	}
}

// WithDB 选择Redis数据库
func WithDB(db int) ClientOption {
	return func(o *redis.Options) {
		if db >= 0 {
			o.DB = db
		}
	}
}

// Ping 检查连接
func Ping(ctx context.Context, rdb *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultDialTimeout)
	defer cancel()
	return rdb.Ping(ctx).Err()
}
