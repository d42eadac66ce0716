package logger

import (
	"fmt"

	"github.com/philipp01105/seglog/core"
	"github.com/philipp01105/seglog/handler"
	"github.com/philipp01105/seglog/storage"
)

// KB is the unit of Config.MaxSizeKB.
const KB = 1000

const (
	// DefaultPrefix names segments when Config.Prefix is empty.
	DefaultPrefix = "log"
	// DefaultMaxSizeKB is the segment budget when Config.MaxSizeKB is 0.
	DefaultMaxSizeKB = 10 * 1000
)

// Storage kinds accepted by Config.Storage.
const (
	Buffered = storage.Buffered
	Mapped   = storage.Mapped
)

// ErrInvalidConfig is wrapped by every error New returns for a bad Config.
var ErrInvalidConfig = handler.ErrInvalidConfig

// Config holds configuration for a Logger
type Config struct {
	// Folder receives the segment files. Required.
	Folder string
	// Prefix names the segments: Prefix.N.log
	Prefix string
	// MaxSizeKB is the segment budget in units of 1000 bytes
	MaxSizeKB int64
	// MaxFiles is the number of segments kept on disk (0 = keep all)
	MaxFiles int
	// Storage selects the backend (Buffered or Mapped)
	Storage storage.Kind
	// BufferSize is the arena size of the Buffered backend in bytes
	BufferSize int
	// Level is the initial threshold. The zero value is DebugLevel;
	// DefaultConfig and NewBuilder start at InfoLevel.
	Level core.Level
	// CoarseClock stamps records from a clock cached every 500µs
	CoarseClock bool
}

// DefaultConfig returns a Config writing into folder with every other
// field at its default.
func DefaultConfig(folder string) Config {
	return Config{
		Folder:    folder,
		Prefix:    DefaultPrefix,
		MaxSizeKB: DefaultMaxSizeKB,
		Storage:   Buffered,
		Level:     InfoLevel,
	}
}

func (c *Config) applyDefaults() {
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
	if c.MaxSizeKB == 0 {
		c.MaxSizeKB = DefaultMaxSizeKB
	}
	if c.BufferSize == 0 {
		c.BufferSize = storage.DefaultBufferSize
	}
}

func (c *Config) validate() error {
	switch {
	case c.Folder == "":
		return fmt.Errorf("%w: folder is required", ErrInvalidConfig)
	case c.MaxSizeKB < 0:
		return fmt.Errorf("%w: negative segment size %d KB", ErrInvalidConfig, c.MaxSizeKB)
	case c.MaxFiles < 0:
		return fmt.Errorf("%w: negative file count %d", ErrInvalidConfig, c.MaxFiles)
	case c.BufferSize < 0:
		return fmt.Errorf("%w: negative buffer size %d", ErrInvalidConfig, c.BufferSize)
	case c.Level < DebugLevel || c.Level > OffLevel:
		return fmt.Errorf("%w: unknown level %d", ErrInvalidConfig, c.Level)
	case c.Storage != Buffered && c.Storage != Mapped:
		return fmt.Errorf("%w: unknown storage kind %d", ErrInvalidConfig, c.Storage)
	}
	return nil
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	cfg Config
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{cfg: DefaultConfig("")}
}

// WithFolder sets the folder receiving the segment files
func (b *Builder) WithFolder(folder string) *Builder {
	b.cfg.Folder = folder
	return b
}

// WithPrefix sets the segment file prefix
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.cfg.Prefix = prefix
	return b
}

// WithMaxSizeKB sets the segment budget in KB (1000 bytes)
func (b *Builder) WithMaxSizeKB(kb int64) *Builder {
	b.cfg.MaxSizeKB = kb
	return b
}

// WithMaxFiles sets how many segments are kept on disk
func (b *Builder) WithMaxFiles(n int) *Builder {
	b.cfg.MaxFiles = n
	return b
}

// WithStorage selects the storage backend
func (b *Builder) WithStorage(kind storage.Kind) *Builder {
	b.cfg.Storage = kind
	return b
}

// WithBufferSize sets the arena size of the buffered backend
func (b *Builder) WithBufferSize(n int) *Builder {
	b.cfg.BufferSize = n
	return b
}

// WithLevel sets the initial log level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.cfg.Level = level
	return b
}

// WithCoarseClock enables the cached clock for timestamps
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.cfg.CoarseClock = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() (*Logger, error) {
	return New(b.cfg)
}
