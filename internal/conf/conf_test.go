package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yola1107/ludo/library/log/zap"
	zconf "github.com/yola1107/ludo/library/log/zap/conf"
)

const sample = `
app:
  name: ludo-test
log:
  logger:
    level: info
    sensitive: [password]
match:
  log_cache:
    open: true
    directory: /tmp/ludo
  seed: 42
data:
  redis:
    addr: 127.0.0.1:6379
    db: 2
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	c, bc, lc, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, "ludo-test", bc.App.Name)
	require.True(t, bc.Match.LogCache.Open)
	require.Equal(t, int64(42), bc.Match.Seed)
	require.Equal(t, "127.0.0.1:6379", bc.Data.Redis.Addr)
	require.Equal(t, int32(2), bc.Data.Redis.Db)

	require.Equal(t, "info", lc.Log.Logger.Level)
	require.Equal(t, "ludo-test", lc.Log.Logger.AppName)
	require.Equal(t, zconf.ModeDev, lc.Log.Logger.Mode)
	require.NotNil(t, lc.Log.Logger.Rotate)
}

func TestLoadDefaults(t *testing.T) {
	c, bc, lc, err := Load(writeConfig(t, "app:\n  name: bare\n"))
	require.NoError(t, err)
	defer c.Close()

	require.False(t, bc.Match.LogCache.Open)
	require.NotNil(t, bc.Data.Redis)
	require.Empty(t, bc.Data.Redis.Addr)
	require.Equal(t, "debug", lc.Log.Logger.Level)
}

func TestValidate(t *testing.T) {
	b := &Bootstrap{Match: &Match{LogCache: &LogCache{Open: true}}}
	require.Error(t, b.Validate())

	b = &Bootstrap{Data: &Data{Redis: &Redis{Db: -1}}}
	require.Error(t, b.Validate())

	require.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyLogger(t *testing.T) {
	logger := zap.NewLogger(nil)
	defer logger.Close()

	target := zconf.DefaultConfig().Log.Logger
	next := zconf.DefaultConfig(zconf.WithLevel("error"), zconf.WithSensitive([]string{"token"})).Log.Logger

	require.True(t, applyLogger("log.logger", target, next, logger))
	require.Equal(t, "error", target.Level)
	require.Equal(t, "error", logger.GetLevel())
	require.Equal(t, []string{"token"}, logger.GetSensitive())

	require.False(t, applyLogger("log.logger", target, next, logger))
}
