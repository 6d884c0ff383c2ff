package conf

import (
	"fmt"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/yola1107/ludo/library/ext"
	"github.com/yola1107/ludo/library/log/zap"
	zconf "github.com/yola1107/ludo/library/log/zap/conf"
)

const Name = "ludo"
const Version = "v0.1.0"

type Bootstrap struct {
	App   *App   `json:"app"`
	Match *Match `json:"match"`
	Data  *Data  `json:"data"`
}

type App struct {
	Name string `json:"name"`
}

type Match struct {
	LogCache *LogCache `json:"log_cache"`
	Seed     int64     `json:"seed"` // 0 = time based
}

type LogCache struct {
	Open      bool   `json:"open"`
	Directory string `json:"directory"`
}

type Data struct {
	Redis *Redis `json:"redis"`
}

type Redis struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	Db       int32  `json:"db"`
}

// Default returns the configuration used when no file is given.
func Default() *Bootstrap {
	return &Bootstrap{
		App: &App{Name: Name},
		Match: &Match{
			LogCache: &LogCache{Open: false, Directory: "./logs/log_cache"},
		},
		Data: &Data{Redis: &Redis{}},
	}
}

// Validate fills missing sections and rejects unusable values.
func (b *Bootstrap) Validate() error {
	def := Default()
	if b.App == nil {
		b.App = def.App
	}
	if b.App.Name == "" {
		b.App.Name = Name
	}
	if b.Match == nil {
		b.Match = def.Match
	}
	if b.Match.LogCache == nil {
		b.Match.LogCache = def.Match.LogCache
	}
	if b.Match.LogCache.Open && b.Match.LogCache.Directory == "" {
		return fmt.Errorf("match.log_cache.directory is required when the log cache is open")
	}
	if b.Data == nil {
		b.Data = def.Data
	}
	if b.Data.Redis == nil {
		b.Data.Redis = def.Data.Redis
	}
	if b.Data.Redis.Db < 0 {
		return fmt.Errorf("data.redis.db must not be negative: %d", b.Data.Redis.Db)
	}
	return nil
}

// Load reads the config file (or directory) at path.
func Load(path string) (config.Config, *Bootstrap, *zconf.Bootstrap, error) {
	c := config.New(
		config.WithSource(
			file.NewSource(path),
		),
	)
	if err := c.Load(); err != nil {
		return nil, nil, nil, err
	}

	var (
		bc Bootstrap
		lc zconf.Bootstrap
	)
	if err := c.Scan(&bc); err != nil {
		_ = c.Close()
		return nil, nil, nil, fmt.Errorf("bootstrap config invalid: %w", err)
	}
	if err := bc.Validate(); err != nil {
		_ = c.Close()
		return nil, nil, nil, fmt.Errorf("bootstrap config invalid: %w", err)
	}
	if err := c.Scan(&lc); err != nil {
		_ = c.Close()
		return nil, nil, nil, fmt.Errorf("logger config invalid: %w", err)
	}
	lc.Fill()
	if lc.Log.Logger.AppName == "" || lc.Log.Logger.AppName == "app" {
		lc.Log.Logger.AppName = bc.App.Name
	}
	return c, &bc, &lc, nil
}

// LoadConfig is Load that panics, for main.
func LoadConfig(path string) (config.Config, *Bootstrap, *zconf.Bootstrap) {
	c, bc, lc, err := Load(path)
	if err != nil {
		panic(err)
	}
	return c, bc, lc
}

// WatchConfig applies logger changes (level, sensitive keys) at runtime.
func WatchConfig(c config.Config, lc *zconf.Bootstrap, logger *zap.Logger) error {
	key := "log.logger"
	if err := c.Watch(key, observer(key, lc.Log.Logger, logger)); err != nil {
		return fmt.Errorf("watch %q failed: %w", key, err)
	}
	return nil
}

func observer(key string, target *zconf.Logger, logger *zap.Logger) func(string, config.Value) {
	return func(_ string, val config.Value) {
		next := &zconf.Logger{}
		if err := val.Scan(next); err != nil {
			log.Errorf("[config] scan failed: key=%q, err=%v", key, err)
			return
		}
		applyLogger(key, target, next, logger)
	}
}

func applyLogger(key string, target, next *zconf.Logger, logger *zap.Logger) bool {
	_, diff, err := ext.DiffLog(target, next)
	if err != nil {
		log.Errorf("[config] diff failed: key=%q, err=%v", key, err)
		return false
	}
	if len(diff) == 0 {
		return false
	}
	log.Warnf("[config] [%q] updated:\n%s", key, diff)
	if err := ext.DeepCopy(target, next); err != nil {
		log.Errorf("[config] update failed: key=%q, err=%v", key, err)
		return false
	}
	if logger != nil {
		if target.Level != "" && target.Level != logger.GetLevel() {
			logger.SetLevel(target.Level)
		}
		logger.SetSensitive(target.Sensitive)
	}
	return true
}
