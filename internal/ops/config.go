package ops

import (
	"log/slog"
	"sync/atomic"

	"github.com/johng149/tensorops/internal/parallel"
)

var (
	logger      atomic.Pointer[slog.Logger]
	parallelCfg atomic.Pointer[parallel.Config]
)

func init() {
	SetLogger(nil)
	SetParallelConfig(parallel.DefaultConfig())
}

// SetLogger sets the logger used for diagnostics. A nil logger discards output.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger.Store(l)
}

// Logger returns the logger used for diagnostics.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetParallelConfig sets how element-wise work is split across goroutines.
func SetParallelConfig(cfg parallel.Config) {
	parallelCfg.Store(&cfg)
}

// ParallelConfig returns the current parallel execution config.
func ParallelConfig() parallel.Config {
	return *parallelCfg.Load()
}
