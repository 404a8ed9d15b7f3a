package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"gitlab.com/tinyland/lab/memglitch/cache"
)

// fakeSource is an in-memory Source with settable counters and an
// optional refresh failure.
type fakeSource struct {
	total, used         uint64
	swapTotal, swapUsed uint64
	refreshErr          error
	refreshCount        int
}

func (f *fakeSource) Refresh(ctx context.Context) error {
	f.refreshCount++
	return f.refreshErr
}

func (f *fakeSource) TotalMemory() uint64 { return f.total }
func (f *fakeSource) UsedMemory() uint64  { return f.used }
func (f *fakeSource) TotalSwap() uint64   { return f.swapTotal }
func (f *fakeSource) UsedSwap() uint64    { return f.swapUsed }

func collectData(t *testing.T, c *Collector) *Data {
	t.Helper()
	result, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	data, ok := result.Data.(*Data)
	if !ok {
		t.Fatalf("result data type = %T, want *Data", result.Data)
	}
	return data
}

// TestCollectPercentages verifies the basic percentage computation and the
// critical alarm, including the 950/1000 -> 95% -> alarm scenario.
func TestCollectPercentages(t *testing.T) {
	src := &fakeSource{total: 1000, used: 950, swapTotal: 2000, swapUsed: 500}
	c := New(Config{Source: src})

	data := collectData(t, c)

	if data.MemoryPct != 95.0 {
		t.Errorf("MemoryPct = %v, want 95.0", data.MemoryPct)
	}
	if data.SwapPct != 25.0 {
		t.Errorf("SwapPct = %v, want 25.0", data.SwapPct)
	}
	if !data.Critical {
		t.Error("Critical = false, want true at 95%")
	}
	if data.TotalBytes != 1000 || data.UsedBytes != 950 {
		t.Errorf("raw counters = %d/%d, want 950/1000", data.UsedBytes, data.TotalBytes)
	}
}

// TestCollectNoSwap verifies the divide-by-zero guard: zero total swap
// yields 0% without error.
func TestCollectNoSwap(t *testing.T) {
	src := &fakeSource{total: 1000, used: 400, swapTotal: 0, swapUsed: 0}
	c := New(Config{Source: src})

	data := collectData(t, c)

	if data.SwapPct != 0 {
		t.Errorf("SwapPct = %v, want 0 with no swap configured", data.SwapPct)
	}
	if data.MemoryPct != 40.0 {
		t.Errorf("MemoryPct = %v, want 40.0", data.MemoryPct)
	}
}

// TestCollectCriticalBoundary verifies the strict > 90 comparison.
func TestCollectCriticalBoundary(t *testing.T) {
	src := &fakeSource{total: 1000, used: 900}
	c := New(Config{Source: src})

	data := collectData(t, c)
	if data.MemoryPct != 90.0 {
		t.Fatalf("MemoryPct = %v, want exactly 90.0", data.MemoryPct)
	}
	if data.Critical {
		t.Error("Critical = true at exactly 90%, want false (strict inequality)")
	}

	src.used = 901
	data = collectData(t, c)
	if !data.Critical {
		t.Error("Critical = false at 90.1%, want true")
	}
}

// TestCollectSourceFailureFallsBack verifies that a failing source reuses
// the previous reading and reports a warning instead of an error.
func TestCollectSourceFailureFallsBack(t *testing.T) {
	src := &fakeSource{total: 1000, used: 500, swapTotal: 100, swapUsed: 50}
	c := New(Config{Source: src})

	first := collectData(t, c)
	if first.MemoryPct != 50.0 {
		t.Fatalf("first MemoryPct = %v, want 50.0", first.MemoryPct)
	}

	src.refreshErr = errors.New("counters gone")
	result, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect with failing source returned error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the stale fallback")
	}

	data := result.Data.(*Data)
	if data.MemoryPct != 50.0 || data.SwapPct != 50.0 {
		t.Errorf("stale reading = %v/%v, want 50/50", data.MemoryPct, data.SwapPct)
	}
	// History still advances: each tick is independent and self-contained.
	if len(data.MemoryHistory) != 2 {
		t.Errorf("history len = %d, want 2", len(data.MemoryHistory))
	}
}

// TestCollectSourceFailureNoPrior verifies zero values are used when the
// source fails before any successful reading.
func TestCollectSourceFailureNoPrior(t *testing.T) {
	src := &fakeSource{refreshErr: errors.New("not available")}
	c := New(Config{Source: src})

	result, err := c.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	data := result.Data.(*Data)
	if data.MemoryPct != 0 || data.SwapPct != 0 {
		t.Errorf("percentages = %v/%v, want 0/0", data.MemoryPct, data.SwapPct)
	}
	if data.Critical {
		t.Error("Critical = true with zero reading, want false")
	}
}

// TestCollectHistoryAccumulates verifies the history grows by one pair per
// tick and the sequences stay parallel.
func TestCollectHistoryAccumulates(t *testing.T) {
	src := &fakeSource{total: 100, used: 10, swapTotal: 100, swapUsed: 5}
	c := New(Config{Source: src})

	for i := 1; i <= 4; i++ {
		src.used = uint64(i * 10)
		data := collectData(t, c)
		if len(data.MemoryHistory) != i {
			t.Errorf("tick %d: history len = %d, want %d", i, len(data.MemoryHistory), i)
		}
		if len(data.SwapHistory) != len(data.MemoryHistory) {
			t.Errorf("tick %d: sequences diverged (%d vs %d)", i, len(data.MemoryHistory), len(data.SwapHistory))
		}
	}

	// Chronological order, oldest first.
	data := collectData(t, c)
	hist := data.MemoryHistory
	if hist[0] != 10.0 || hist[len(hist)-1] != 40.0 {
		t.Errorf("history = %v, want 10..40 chronological", hist)
	}
}

// TestCollectRestoresPersistedHistory verifies the cache round trip: a new
// collector picks up where the previous one left off.
func TestCollectRestoresPersistedHistory(t *testing.T) {
	store, err := cache.NewStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	src := &fakeSource{total: 1000, used: 250}
	first := New(Config{Source: src, Store: store})
	for i := 0; i < 3; i++ {
		collectData(t, first)
	}

	// A fresh collector sharing the store restores the 3 samples and
	// appends its own.
	second := New(Config{Source: src, Store: store})
	data := collectData(t, second)
	if len(data.MemoryHistory) != 4 {
		t.Errorf("restored history len = %d, want 4", len(data.MemoryHistory))
	}
}

// TestCollectCancelled verifies context cancellation is respected.
func TestCollectCancelled(t *testing.T) {
	c := New(Config{Source: &fakeSource{}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Collect(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
}

// TestCollectorInterface verifies Name, Description, and Interval.
func TestCollectorInterface(t *testing.T) {
	c := New(Config{Source: &fakeSource{}})

	if c.Name() != "memory" {
		t.Errorf("Name() = %q, want %q", c.Name(), "memory")
	}
	if c.Description() == "" {
		t.Error("Description() should not be empty")
	}
	if c.Interval() != DefaultInterval {
		t.Errorf("Interval() = %v, want %v", c.Interval(), DefaultInterval)
	}

	custom := New(Config{Source: &fakeSource{}, Interval: 2 * time.Second})
	if custom.Interval() != 2*time.Second {
		t.Errorf("custom Interval() = %v, want 2s", custom.Interval())
	}
}

// TestPercentClamping verifies the percent helper's guards.
func TestPercentClamping(t *testing.T) {
	tests := []struct {
		name        string
		used, total uint64
		want        float64
	}{
		{"zero total", 100, 0, 0},
		{"zero used", 0, 100, 0},
		{"half", 50, 100, 50},
		{"full", 100, 100, 100},
		{"over total clamps", 150, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := percent(tt.used, tt.total); got != tt.want {
				t.Errorf("percent(%d, %d) = %v, want %v", tt.used, tt.total, got, tt.want)
			}
		})
	}
}
