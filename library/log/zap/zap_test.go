package zap

import (
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yola1107/ludo/library/log/zap/conf"
)

func newObserved(t *testing.T, sensitive ...string) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	level := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	l := initLogger(&conf.Logger{Sensitive: sensitive}, &zapWrap{log: zap.New(core), level: level})
	return l, logs
}

func TestLoggerLog(t *testing.T) {
	l, logs := newObserved(t)

	require.NoError(t, l.Log(log.LevelInfo, log.DefaultMessageKey, "rolled", "player", 1, "value", 6))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "rolled", entries[0].Message)
	require.Equal(t, int64(1), entries[0].ContextMap()["player"])
}

func TestLoggerOddKeyvals(t *testing.T) {
	l, logs := newObserved(t)

	require.NoError(t, l.Log(log.LevelInfo, "lonely"))
	require.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestLoggerSensitive(t *testing.T) {
	l, logs := newObserved(t, "Password")

	_ = l.Log(log.LevelInfo, "password", "hunter2", "addr", "127.0.0.1:6379")

	ctx := logs.All()[0].ContextMap()
	require.Equal(t, sensitiveMask, ctx["password"])
	require.Equal(t, "127.0.0.1:6379", ctx["addr"])
	require.ElementsMatch(t, []string{"password"}, l.GetSensitive())
}

func TestNewLoggerDefaults(t *testing.T) {
	l := NewLogger(&conf.Bootstrap{})
	defer l.Close()

	require.Equal(t, "debug", l.GetLevel())
	l.SetLevel("warn")
	require.Equal(t, "warn", l.GetLevel())
	l.SetLevel("nope")
	require.Equal(t, "warn", l.GetLevel())
}

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		in   log.Level
		want zapcore.Level
	}{
		{log.LevelDebug, zapcore.DebugLevel},
		{log.LevelInfo, zapcore.InfoLevel},
		{log.LevelWarn, zapcore.WarnLevel},
		{log.LevelError, zapcore.ErrorLevel},
		{log.LevelFatal, zapcore.FatalLevel},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, toZapLevel(tt.in), tt.in.String())
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := initLogger(&conf.Logger{}, &zapWrap{log: zap.New(core), level: zap.NewAtomicLevelAt(zapcore.WarnLevel)})

	_ = l.Log(log.LevelInfo, log.DefaultMessageKey, "hidden")
	_ = l.Log(log.LevelError, log.DefaultMessageKey, "shown")
	require.Len(t, logs.All(), 1)
	require.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}
