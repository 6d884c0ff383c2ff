package file

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	timeFormat        = "2006/01/02 15:04:05"
	defaultMaxSize    = 10 // 10 MB
	defaultMaxAge     = 7  // 7 days
	defaultMaxBackups = 3
)

// Log writes plain lines to a single rotated file.
type Log struct {
	logger *zap.Logger
	writer *lumberjack.Logger
}

// NewFileLog opens (lazily) a rotated log file at filename.
func NewFileLog(filename string) *Log {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeLevel = nil
	encoderCfg.EncodeCaller = nil
	encoderCfg.EncodeTime = customTimeEncoder
	encoderCfg.ConsoleSeparator = " "
	fileEnc := zapcore.NewConsoleEncoder(encoderCfg)
	lj := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    defaultMaxSize,
		MaxAge:     defaultMaxAge,
		MaxBackups: defaultMaxBackups,
		LocalTime:  true,
		Compress:   true,
	}
	logger := zap.New(zapcore.NewCore(fileEnc, zapcore.AddSync(lj), zapcore.InfoLevel))
	return &Log{
		logger: logger,
		writer: lj,
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.Format(timeFormat) + "]")
}

// Sync flushes buffered entries.
func (l *Log) Sync() error {
	return l.logger.Sync()
}

// Close flushes and releases the file handle.
func (l *Log) Close() error {
	_ = l.logger.Sync()
	return l.writer.Close()
}

// Infow writes a structured line.
func (l *Log) Infow(msg string, kvs ...any) {
	l.logger.Sugar().Infow(msg, kvs...)
}

// WriteLog writes a formatted line.
func (l *Log) WriteLog(msg string, args ...any) {
	l.logger.Sugar().Infof(msg, args...)
}
