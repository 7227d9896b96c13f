package app

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes JSON lines to stderr and, when configured, to a log file.
// Verbose runs log at debug level; otherwise only warnings and errors show.
type Logger struct {
	z    *zap.Logger
	file *os.File
	mu   sync.Mutex
}

func NewLogger(verbose bool, logFile string) (*Logger, error) {
	return newLogger(verbose, logFile, os.Stderr)
}

func newLogger(verbose bool, logFile string, stderr io.Writer) (*Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	sinks := []zapcore.WriteSyncer{zapcore.Lock(zapcore.AddSync(stderr))}

	l := &Logger{}
	if strings.TrimSpace(logFile) != "" {
		dir := filepath.Dir(logFile)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
		sinks = append(sinks, zapcore.Lock(f))
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.NewMultiWriteSyncer(sinks...), level)
	l.z = zap.New(core)
	return l, nil
}

func newLoggerWithCore(core zapcore.Core) *Logger {
	return &Logger{z: zap.New(core)}
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.z.Sync()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Info(msg string) {
	l.z.Info(msg)
}

func (l *Logger) Warn(msg string, err error) {
	l.z.Warn(msg, zap.Error(err))
}

// Event logs a named debug event. Field order is stable.
func (l *Logger) Event(event string, fields map[string]any) {
	if ce := l.z.Check(zapcore.DebugLevel, event); ce != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		zf := make([]zap.Field, 0, len(keys)+1)
		zf = append(zf, zap.String("event", event))
		for _, k := range keys {
			zf = append(zf, zap.Any(k, fields[k]))
		}
		ce.Write(zf...)
	}
}
