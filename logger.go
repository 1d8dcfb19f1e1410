package bkdtree

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with bkdtree-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*zap.Logger
}

// NewLogger creates a new Logger around an already-configured zap.Logger.
// If base is nil, falls back to a no-op logger.
func NewLogger(base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	return &Logger{Logger: base}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs at stderr.
// level sets the minimum log level (e.g., zapcore.DebugLevel, zapcore.InfoLevel).
func NewJSONLogger(level zapcore.Level) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	base, err := cfg.Build()
	if err != nil {
		return NoopLogger()
	}
	return &Logger{Logger: base}
}

// NewTextLogger creates a Logger that outputs human-readable console logs.
func NewTextLogger(level zapcore.Level) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	base, err := cfg.Build()
	if err != nil {
		return NoopLogger()
	}
	return &Logger{Logger: base}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{Logger: l.Logger.With(zap.Int("dimension", dim))}
}

// WithBlockSize adds a block size field to the logger.
func (l *Logger) WithBlockSize(blockSize int) *Logger {
	return &Logger{Logger: l.Logger.With(zap.Int("block_size", blockSize))}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{Logger: l.Logger.With(zap.Int("count", count))}
}

// LogBuild logs the initial bulk construction of a KDT. ctx is accepted for
// call-site symmetry with the other Log* methods and future trace-id
// propagation; it is not yet read.
func (l *Logger) LogBuild(ctx context.Context, dimension, count int, err error) {
	if err != nil {
		l.Error("build failed",
			zap.Int("dimension", dimension),
			zap.Int("count", count),
			zap.Error(err),
		)
	} else {
		l.Debug("build completed",
			zap.Int("dimension", dimension),
			zap.Int("count", count),
		)
	}
}

// LogInsert logs a single insert into a BKDT's base buffer.
func (l *Logger) LogInsert(ctx context.Context, count int, err error) {
	if err != nil {
		l.Error("insert failed",
			zap.Int("count", count),
			zap.Error(err),
		)
	} else {
		l.Debug("insert completed",
			zap.Int("count", count),
		)
	}
}

// LogMerge logs a slot-merge cascade triggered by a base buffer overflow.
func (l *Logger) LogMerge(ctx context.Context, slot, mergedItems int) {
	l.Info("slot merge completed",
		zap.Int("slot", slot),
		zap.Int("merged_items", mergedItems),
	)
}

// LogSearch logs a completed ForEach, ForEachEqual, or ForEachRange call.
// The lazy Get and GetAll sequences do not log.
func (l *Logger) LogSearch(ctx context.Context, resultsFound int, canceled bool) {
	l.Debug("search completed",
		zap.Int("results", resultsFound),
		zap.Bool("canceled", canceled),
	)
}

// LogNearestNeighbor logs a completed nearest-neighbor query.
func (l *Logger) LogNearestNeighbor(ctx context.Context, found bool, sqDist float64) {
	l.Debug("nearest neighbor completed",
		zap.Bool("found", found),
		zap.Float64("squared_distance", sqDist),
	)
}
