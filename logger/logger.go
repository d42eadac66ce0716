package logger

import (
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/seglog/core"
	"github.com/philipp01105/seglog/formatter"
	"github.com/philipp01105/seglog/handler"
	"github.com/philipp01105/seglog/storage"
)

// callerSkip reaches the caller of Info and friends from log.
const callerSkip = 2

// Logger writes records into a rotating set of segment files. It is safe
// for concurrent use; the level can be changed while other goroutines log.
type Logger struct {
	level   *core.LevelVar
	handler *handler.SegmentHandler
	writer  *handler.RecordWriter
}

// New opens the segment files described by cfg. Missing fields take
// their defaults; invalid ones are reported as ErrInvalidConfig.
func New(cfg Config) (*Logger, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	maxSize := cfg.MaxSizeKB * KB
	backend, err := storage.New(cfg.Storage, maxSize, cfg.BufferSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	h, err := handler.NewSegmentHandler(handler.SegmentConfig{
		Folder:   cfg.Folder,
		Prefix:   cfg.Prefix,
		MaxSize:  maxSize,
		MaxFiles: cfg.MaxFiles,
		Backend:  backend,
	})
	if err != nil {
		return nil, err
	}

	var now func() time.Time
	if cfg.CoarseClock {
		core.StartCoarseClock()
		now = core.CoarseNow
	}
	f := formatter.NewRecordFormatter(formatter.NewClock(nil, now))

	return &Logger{
		level:   core.NewLevelVar(cfg.Level),
		handler: h,
		writer:  handler.NewRecordWriter(h, f),
	}, nil
}

// Log writes msg at level with the caller's file and line. It returns
// nil without doing any work when level is filtered out.
func (l *Logger) Log(level core.Level, msg string) error {
	if !l.level.Enabled(level) {
		return nil
	}
	return l.log(level, msg)
}

// LogAt is Log with an explicit call site.
func (l *Logger) LogAt(level core.Level, file string, line int, msg string) error {
	if !l.level.Enabled(level) {
		return nil
	}
	return l.writer.WriteRecord(level, file, line, msg)
}

func (l *Logger) log(level core.Level, msg string) error {
	c := core.GetCaller(callerSkip)
	return l.writer.WriteRecord(level, c.ShortFile, c.Line, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) error {
	if !l.level.Enabled(core.DebugLevel) {
		return nil
	}
	return l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) error {
	if !l.level.Enabled(core.InfoLevel) {
		return nil
	}
	return l.log(core.InfoLevel, msg)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string) error {
	if !l.level.Enabled(core.WarningLevel) {
		return nil
	}
	return l.log(core.WarningLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) error {
	if !l.level.Enabled(core.ErrorLevel) {
		return nil
	}
	return l.log(core.ErrorLevel, msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...any) error {
	if !l.level.Enabled(core.DebugLevel) {
		return nil
	}
	return l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...any) error {
	if !l.level.Enabled(core.InfoLevel) {
		return nil
	}
	return l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...any) error {
	if !l.level.Enabled(core.WarningLevel) {
		return nil
	}
	return l.log(core.WarningLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...any) error {
	if !l.level.Enabled(core.ErrorLevel) {
		return nil
	}
	return l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// SetLevel changes the minimum level. It takes effect for calls that
// start after it returns; calls already past the check still write.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Set(level)
}

// Level returns the current minimum level.
func (l *Logger) Level() core.Level {
	return l.level.Level()
}

// Sync writes buffered records to the current segment file.
func (l *Logger) Sync() error {
	return l.handler.Sync()
}

// Stats returns the handler statistics.
func (l *Logger) Stats() handler.Snapshot {
	return l.handler.Stats()
}

// Handler returns the segment handler behind the logger.
func (l *Logger) Handler() *handler.SegmentHandler {
	return l.handler
}

// SlogHandler returns a slog.Handler writing into the same segments and
// sharing the logger's level.
func (l *Logger) SlogHandler() slog.Handler {
	return handler.NewSlogHandler(l.writer, l.level)
}

// ZapCore returns a zapcore.Core writing into the same segments and
// sharing the logger's level.
func (l *Logger) ZapCore() zapcore.Core {
	return handler.NewZapCore(l.writer, l.level)
}

// Close flushes pending records, truncates the active segment to its
// written length and releases it. Later calls return handler.ErrClosed;
// calling Close again is a no-op.
func (l *Logger) Close() error {
	return l.handler.Close()
}
