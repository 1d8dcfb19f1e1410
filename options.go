package bkdtree

import "go.uber.org/zap/zapcore"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures KDT/BKDT constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface with
// constructor variants for observability concerns.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// build, insert, merge, search, and nearest-neighbor operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector, registered with the default registry
// and served via promhttp:
//
//	metrics := bkdtree.NewBasicMetricsCollector(prometheus.DefaultRegisterer)
//	tree, _ := bkdtree.NewBKDT[Point](2, 128, bkdtree.WithMetricsCollector(metrics))
//	http.Handle("/metrics", promhttp.Handler())
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := bkdtree.NewJSONLogger(zapcore.InfoLevel)
//	tree, _ := bkdtree.NewBKDT[Point](2, 128, bkdtree.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a console logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level zapcore.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
