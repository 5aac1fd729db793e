// Package parallel splits element-wise array work across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1024,
	}
}

// Sequential returns a config that runs everything on the calling goroutine.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// chunks returns the chunk size to use for n items, or 0 for sequential execution.
func (c Config) chunks(n int) int {
	if !c.Enabled || c.NumWorkers < 2 || n < 2*max(c.MinChunkSize, 1) {
		return 0
	}
	return max((n+c.NumWorkers-1)/c.NumWorkers, c.MinChunkSize)
}

// ForRange executes f over disjoint half-open ranges covering [0, n).
// Each range is handled by one goroutine, so f may keep per-call scratch buffers.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	chunkSize := cfg.chunks(n)
	if chunkSize == 0 {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForLanes executes f once per lane of laneLen contiguous items, for lanes in [0, lanes).
// Chunking is by item count, so many short lanes are grouped together.
func ForLanes(lanes, laneLen int, f func(lane int), cfg Config) {
	perChunk := cfg
	if laneLen > 0 {
		perChunk.MinChunkSize = max(cfg.MinChunkSize/laneLen, 1)
	}
	For(lanes, f, perChunk)
}
