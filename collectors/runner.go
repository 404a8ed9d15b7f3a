package collectors

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"
)

const (
	// DefaultUpdateBufferSize is the default capacity of the updates
	// channel. A buffered channel keeps a slow consumer from blocking
	// collection.
	DefaultUpdateBufferSize = 64

	// DefaultStopTimeout is the maximum time Stop waits for collector
	// goroutines to finish before returning.
	DefaultStopTimeout = 5 * time.Second
)

// Update is one collection result fanned in from a collector goroutine.
type Update struct {
	Source    string
	Result    *CollectResult
	Err       error
	Timestamp time.Time
}

// errTracker deduplicates repeated identical errors per collector.
type errTracker struct {
	lastMsg    string
	lastTime   time.Time
	suppressed int64
}

// Runner starts and stops collector goroutines. Each registered collector
// runs in its own goroutine with an independent ticker; results fan in to
// a single updates channel.
type Runner struct {
	registry    *Registry
	updates     chan<- Update
	logger      *slog.Logger
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	stopped     chan struct{}
	once        sync.Once
	errTrackers map[string]*errTracker
}

// NewRunner creates a runner that sends collection results to the provided
// updates channel. The caller owns the channel. A nil logger is replaced
// with a no-op logger.
func NewRunner(registry *Registry, updates chan<- Update, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		registry:    registry,
		updates:     updates,
		logger:      logger,
		stopped:     make(chan struct{}),
		errTrackers: make(map[string]*errTracker),
	}
}

// Start launches a goroutine per registered collector. Each goroutine runs
// an immediate collection and then ticks at the collector's Interval. The
// provided context controls the lifetime of all goroutines; cancelling it
// (or calling Stop) shuts them down.
func (r *Runner) Start(ctx context.Context) error {
	ctx, r.cancel = context.WithCancel(ctx)

	names := r.registry.Names()
	if len(names) == 0 {
		// Nothing registered. Close stopped immediately so Stop doesn't block.
		close(r.stopped)
		return nil
	}

	for _, name := range names {
		c, ok := r.registry.Get(name)
		if !ok {
			continue
		}
		r.wg.Add(1)
		go r.runCollector(ctx, c)
	}

	go func() {
		r.wg.Wait()
		close(r.stopped)
	}()

	return nil
}

// Stop cancels the runner context and waits for collector goroutines to
// finish, bounded by DefaultStopTimeout.
func (r *Runner) Stop() {
	r.once.Do(func() {
		if r.cancel != nil {
			r.cancel()
		}
	})

	select {
	case <-r.stopped:
	case <-time.After(DefaultStopTimeout):
		r.logger.Warn("runner stop timed out", slog.Duration("timeout", DefaultStopTimeout))
	}
}

// runCollector is the per-collector goroutine: one immediate collection,
// then one per tick. Errors are logged but never stop the loop; each tick
// is independent and self-contained.
func (r *Runner) runCollector(ctx context.Context, c Collector) {
	defer r.wg.Done()

	interval := c.Interval()
	if interval <= 0 {
		interval = time.Second
	}

	r.collectAndSend(ctx, c)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.collectAndSend(ctx, c)
		}
	}
}

// collectAndSend performs one collection cycle and sends the result. The
// send is non-blocking: if the channel is full the update is dropped, so a
// stuck consumer cannot stall sampling.
func (r *Runner) collectAndSend(ctx context.Context, c Collector) {
	name := c.Name()
	start := time.Now()

	result, err := c.Collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logCollectorError(name, err)
	}

	update := Update{
		Source:    name,
		Result:    result,
		Err:       err,
		Timestamp: start,
	}

	select {
	case r.updates <- update:
	default:
		r.logger.Warn("update channel full, dropping update", slog.String("collector", name))
	}
}

// logCollectorError deduplicates repeated identical errors from the same
// collector. A message that recurs within an hour is suppressed, with a
// summary logged every 100 suppressions.
func (r *Runner) logCollectorError(name string, err error) {
	msg := err.Error()
	tracker := r.errTrackers[name]
	if tracker == nil {
		tracker = &errTracker{}
		r.errTrackers[name] = tracker
	}
	now := time.Now()
	if msg == tracker.lastMsg && now.Sub(tracker.lastTime) < time.Hour {
		tracker.suppressed++
		if tracker.suppressed%100 == 0 {
			r.logger.Error("collector error (repeated)",
				slog.String("collector", name),
				slog.Int64("count", tracker.suppressed),
				slog.String("error", msg),
			)
		}
		return
	}
	if tracker.suppressed > 0 {
		r.logger.Info("previous collector error repeated",
			slog.String("collector", name),
			slog.Int64("count", tracker.suppressed),
		)
	}
	r.logger.Error("collector error", slog.String("collector", name), slog.String("error", msg))
	tracker.lastMsg = msg
	tracker.lastTime = now
	tracker.suppressed = 0
}
