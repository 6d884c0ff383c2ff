package zap

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/go-kratos/kratos/v2/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yola1107/ludo/library/log/zap/conf"
)

var _ log.Logger = (*Logger)(nil)

const sensitiveMask = "***"

// Logger adapts a zap logger to the kratos log.Logger interface.
type Logger struct {
	wrap       *zapWrap
	sensitives map[string]struct{}
	mu         sync.RWMutex
}

func NewLogger(c *conf.Bootstrap) *Logger {
	if c == nil {
		c = conf.DefaultConfig()
	}
	c.Fill()
	return initLogger(c.Log.Logger, newZapWrap(c.Log.Logger))
}

func initLogger(c *conf.Logger, wrap *zapWrap) *Logger {
	l := &Logger{
		wrap:       wrap,
		sensitives: make(map[string]struct{}),
	}
	l.SetSensitive(c.Sensitive)
	return l
}

func (l *Logger) Log(level log.Level, keyvals ...any) error {
	zl := toZapLevel(level)
	if !l.wrap.log.Core().Enabled(zl) {
		return nil
	}
	if len(keyvals) == 0 || len(keyvals)%2 != 0 {
		l.wrap.log.Warn(fmt.Sprint("Keyvalues must appear in pairs: ", keyvals))
		return nil
	}

	msg := ""
	fields := make([]zap.Field, 0, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key := fmt.Sprint(keyvals[i])
		if key == log.DefaultMessageKey {
			msg = fmt.Sprint(keyvals[i+1])
			continue
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	logger := l.wrap.log.WithOptions(zap.AddCallerSkip(calculateSkip()))
	if ce := logger.Check(zl, msg); ce != nil {
		ce.Write(l.filterSensitive(fields)...)
	}
	return nil
}

// kratos 的 Fatal 是 3, zap 的 3 是 DPanic
func toZapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelWarn:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	case log.LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *Logger) Close() error {
	return l.wrap.close()
}

func (l *Logger) GetLevel() string {
	return l.wrap.level.String()
}

func (l *Logger) SetLevel(level string) {
	if err := l.wrap.level.UnmarshalText([]byte(level)); err != nil {
		l.wrap.log.Warn("invalid log level", zap.String("level", level), zap.Error(err))
		return
	}
	l.wrap.log.Info("log level updated", zap.String("level", level))
}

func (l *Logger) GetSensitive() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.sensitives))
	for k := range l.sensitives {
		keys = append(keys, k)
	}
	return keys
}

func (l *Logger) SetSensitive(keys []string) {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[strings.ToLower(k)] = struct{}{}
	}

	l.mu.Lock()
	l.sensitives = set
	l.mu.Unlock()
}

func (l *Logger) filterSensitive(fields []zap.Field) []zap.Field {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.sensitives) == 0 {
		return fields
	}
	for i, field := range fields {
		if _, ok := l.sensitives[strings.ToLower(field.Key)]; ok {
			fields[i] = zap.String(field.Key, sensitiveMask)
		}
	}
	return fields
}

func calculateSkip() int {
	pc := make([]uintptr, 8)
	n := runtime.Callers(3, pc)
	if n == 0 {
		return 2
	}

	frames := runtime.CallersFrames(pc[:n])

	for frame, more := frames.Next(); more; frame, more = frames.Next() {
		if strings.Contains(frame.Function, "kratos/v2/log.(*") {
			return 3 // helper and filter wrappers add a frame
		}
	}
	return 2
}
