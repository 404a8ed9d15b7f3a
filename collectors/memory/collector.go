package memory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"gitlab.com/tinyland/lab/memglitch/cache"
	"gitlab.com/tinyland/lab/memglitch/collectors"
	"gitlab.com/tinyland/lab/memglitch/status"
)

const (
	// collectorName is the unique identifier for this collector.
	collectorName = "memory"

	// collectorDescription describes what this collector gathers.
	collectorDescription = "Memory and swap usage with rolling percentage history"

	// DefaultInterval is the sampling cadence. Half a second keeps the
	// chart lively without measurable CPU cost.
	DefaultInterval = 500 * time.Millisecond

	// cacheKey is the cache store key under which history is persisted.
	cacheKey = "memory"
)

// Config configures a Collector.
type Config struct {
	// Interval overrides the sampling cadence. Zero uses DefaultInterval.
	Interval time.Duration

	// Source supplies the raw counters. Nil uses the live system source.
	Source Source

	// Store, when non-nil, persists history between runs. The previous
	// history is restored on the first Collect call.
	Store *cache.Store

	// Logger receives debug output. Nil uses a no-op logger.
	Logger *slog.Logger
}

// Collector samples memory and swap usage once per tick. It owns the
// history buffer exclusively: all reads and appends happen inside a single
// Collect call, so no locking is needed.
type Collector struct {
	logger   *slog.Logger
	source   Source
	store    *cache.Store
	history  *History
	interval time.Duration
	firstRun bool

	// last holds the most recent successful reading. When the source is
	// briefly unavailable the stale values are reused; a missing sample
	// is never worth failing a tick over.
	last *Data
}

// New creates a memory collector from the given configuration.
func New(cfg Config) *Collector {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	source := cfg.Source
	if source == nil {
		source = NewSystemSource()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Collector{
		logger:   logger,
		source:   source,
		store:    cfg.Store,
		history:  NewHistory(MaxHistorySamples),
		interval: interval,
		firstRun: true,
	}
}

// Name returns the collector's unique identifier.
func (c *Collector) Name() string {
	return collectorName
}

// Description returns a human-readable description of what this collector gathers.
func (c *Collector) Description() string {
	return collectorDescription
}

// Interval returns the sampling cadence.
func (c *Collector) Interval() time.Duration {
	return c.interval
}

// Collect performs one tick: refresh the source, compute percentages,
// append to the history, and evaluate the critical alarm. On the first run
// it restores previous history from the cache so the chart survives
// restarts.
func (c *Collector) Collect(ctx context.Context) (*collectors.CollectResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var warnings []string

	if c.firstRun {
		c.restoreHistory()
		c.firstRun = false
	}

	total := uint64(0)
	used := uint64(0)
	swapTotal := uint64(0)
	swapUsed := uint64(0)

	if err := c.source.Refresh(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		warnings = append(warnings, "memory: source unavailable, using previous reading: "+err.Error())
		if c.last != nil {
			total = c.last.TotalBytes
			used = c.last.UsedBytes
			swapTotal = c.last.SwapTotalBytes
			swapUsed = c.last.SwapUsedBytes
		}
	} else {
		total = c.source.TotalMemory()
		used = c.source.UsedMemory()
		swapTotal = c.source.TotalSwap()
		swapUsed = c.source.UsedSwap()
	}

	memoryPct := percent(used, total)
	swapPct := percent(swapUsed, swapTotal)

	c.history.Append(memoryPct, swapPct)

	data := &Data{
		MemoryPct:      memoryPct,
		SwapPct:        swapPct,
		Critical:       status.IsCritical(memoryPct),
		TotalBytes:     total,
		UsedBytes:      used,
		SwapTotalBytes: swapTotal,
		SwapUsedBytes:  swapUsed,
	}
	data.MemoryHistory, data.SwapHistory = c.history.Snapshot()
	c.last = data

	c.persistHistory(data)

	c.logger.Debug("memory collected",
		slog.Float64("memory_pct", data.MemoryPct),
		slog.Float64("swap_pct", data.SwapPct),
		slog.Bool("critical", data.Critical),
		slog.Int("history_len", len(data.MemoryHistory)),
	)

	return &collectors.CollectResult{
		Collector: collectorName,
		Timestamp: time.Now(),
		Data:      data,
		Warnings:  warnings,
	}, nil
}

// LoadCached returns the most recent persisted reading from the store, or
// nil when nothing has been persisted yet.
func LoadCached(store *cache.Store) (*Data, error) {
	return cache.GetTyped[Data](store, cacheKey)
}

// restoreHistory loads the persisted history from the cache, if any.
func (c *Collector) restoreHistory() {
	if c.store == nil {
		return
	}

	prev, err := cache.GetTyped[Data](c.store, cacheKey)
	if err != nil || prev == nil {
		return
	}

	c.history.Restore(prev.MemoryHistory, prev.SwapHistory)
	c.logger.Debug("restored previous history",
		slog.Int("samples", c.history.Len()),
		slog.Duration("age", c.store.Age(cacheKey)),
	)
}

// persistHistory writes the latest reading to the cache, best effort.
func (c *Collector) persistHistory(data *Data) {
	if c.store == nil {
		return
	}
	if err := cache.SetTyped(c.store, cacheKey, data); err != nil {
		c.logger.Warn("failed to persist history", slog.String("error", err.Error()))
	}
}

// percent computes used/total as a percentage, clamped to 0-100. A zero
// total (no swap configured, or no reading yet) yields 0 rather than a
// division error.
func percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(used) / float64(total) * 100.0
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Compile-time interface compliance check.
var _ collectors.Collector = (*Collector)(nil)
