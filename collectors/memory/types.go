// Package memory samples system memory and swap usage and maintains a
// bounded rolling history of percentage readings for chart rendering.
package memory

// MaxHistorySamples is the maximum number of samples retained in each
// history sequence. At the 500ms default interval this covers 50 seconds
// of scrolling chart.
const MaxHistorySamples = 100

// Data holds one tick's reading plus the rolling history. It is the
// payload handed to the presentation layer and the shape persisted to
// the cache between runs.
type Data struct {
	// MemoryPct is the current memory usage percentage (0-100).
	MemoryPct float64 `json:"memory_pct"`

	// SwapPct is the current swap usage percentage (0-100). Zero when
	// the system has no swap configured.
	SwapPct float64 `json:"swap_pct"`

	// Critical is true when MemoryPct exceeds the critical threshold.
	// Recomputed from the latest sample every tick.
	Critical bool `json:"critical"`

	// TotalBytes and UsedBytes are the raw memory counters behind
	// MemoryPct, for the totals footer.
	TotalBytes uint64 `json:"total_bytes"`
	UsedBytes  uint64 `json:"used_bytes"`

	// SwapTotalBytes and SwapUsedBytes are the raw swap counters.
	SwapTotalBytes uint64 `json:"swap_total_bytes"`
	SwapUsedBytes  uint64 `json:"swap_used_bytes"`

	// MemoryHistory and SwapHistory are chronological percentage
	// sequences, oldest first, at most MaxHistorySamples long and
	// always of equal length.
	MemoryHistory []float64 `json:"memory_history"`
	SwapHistory   []float64 `json:"swap_history"`
}
